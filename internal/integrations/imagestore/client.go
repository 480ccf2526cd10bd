package imagestore

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client загружает картинки домов в S3-совместимое хранилище (MinIO)
type Client struct {
	bucket        string
	publicBaseURL string
	client        *minio.Client
	log           Logger

	bucketOnce sync.Once
	bucketErr  error
}

// NewClient создает клиента. publicBaseURL используется для построения ссылок, по умолчанию endpoint
func NewClient(endpoint string, useSSL bool, accessKey, secretKey, bucket, publicBaseURL string, log Logger) (*Client, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("%w: endpoint is required", ErrInvalidInput)
	}
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return nil, fmt.Errorf("%w: bucket is required", ErrInvalidInput)
	}

	mc, err := minio.New(hostOf(endpoint), &minio.Options{
		Creds:  credentials.NewStaticV4(strings.TrimSpace(accessKey), strings.TrimSpace(secretKey), ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create client: %v", ErrInvalidInput, err)
	}

	base := strings.TrimSpace(publicBaseURL)
	if base == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		base = scheme + "://" + hostOf(endpoint)
	}

	return &Client{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
		client:        mc,
		log:           log,
	}, nil
}

// Upload сохраняет объект и возвращает публичную ссылку на него
func (c *Client) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error) {
	if reader == nil {
		return "", fmt.Errorf("%w: reader is required", ErrInvalidInput)
	}
	key = strings.Trim(strings.TrimSpace(key), "/")
	if key == "" {
		return "", fmt.Errorf("%w: object key is required", ErrInvalidInput)
	}
	if err := c.ensureBucket(ctx); err != nil {
		return "", err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := c.client.PutObject(ctx, c.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		c.log.Error("Failed to upload object bucket=%s key=%s: %v", c.bucket, key, err)
		return "", fmt.Errorf("%w: put object: %v", ErrUpload, err)
	}

	publicURL := ObjectURL(c.publicBaseURL, c.bucket, key)
	c.log.Info("Uploaded object bucket=%s key=%s url=%s", c.bucket, key, publicURL)
	return publicURL, nil
}

// ensureBucket создает бакет с публичным чтением при первой загрузке
func (c *Client) ensureBucket(ctx context.Context) error {
	c.bucketOnce.Do(func() {
		exists, err := c.client.BucketExists(ctx, c.bucket)
		if err != nil {
			c.bucketErr = fmt.Errorf("%w: check bucket: %v", ErrBucket, err)
			return
		}
		if exists {
			return
		}
		if err := c.client.MakeBucket(ctx, c.bucket, minio.MakeBucketOptions{}); err != nil {
			c.bucketErr = fmt.Errorf("%w: create bucket: %v", ErrBucket, err)
			return
		}
		policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, c.bucket)
		if err := c.client.SetBucketPolicy(ctx, c.bucket, policy); err != nil {
			c.bucketErr = fmt.Errorf("%w: set bucket policy: %v", ErrBucket, err)
		}
	})
	return c.bucketErr
}

// NoopUploader используется, когда storage.endpoint не задан
type NoopUploader struct{}

func (NoopUploader) Upload(_ context.Context, _ string, _ io.Reader, _ int64, _ string) (string, error) {
	return "", ErrNotConfigured
}

// ObjectURL строит публичную ссылку на объект
func ObjectURL(base, bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(base, "/"), bucket, strings.TrimLeft(key, "/"))
}

func hostOf(endpoint string) string {
	if parsed, err := url.Parse(endpoint); err == nil && parsed.Host != "" {
		return parsed.Host
	}
	return endpoint
}
