package houses

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ResortService/internal/domain"
	houseRepo "github.com/m04kA/SMC-ResortService/internal/infra/storage/house"
	"github.com/m04kA/SMC-ResortService/internal/integrations/imagestore"
	"github.com/m04kA/SMC-ResortService/internal/service/houses/models"
)

const maxImageSize = 10 << 20 // 10 MiB

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Service сервис для работы с домами
type Service struct {
	houseRepo         HouseRepository
	uploader          ImageUploader
	weekendMultiplier float64
	logger            Logger
}

// NewService создает новый экземпляр сервиса домов
func NewService(
	houseRepo HouseRepository,
	uploader ImageUploader,
	weekendMultiplier float64,
	logger Logger,
) *Service {
	return &Service{
		houseRepo:         houseRepo,
		uploader:          uploader,
		weekendMultiplier: weekendMultiplier,
		logger:            logger,
	}
}

// List список домов. Для публичной части onlyActive = true
func (s *Service) List(ctx context.Context, onlyActive bool) (*models.HouseListResponse, error) {
	houses, err := s.houseRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d houses (onlyActive=%t)", len(houses), onlyActive)
	return models.FromDomainHouseList(houses, s.weekendMultiplier), nil
}

// GetByID получает дом. Неактивный дом виден только при includeInactive
func (s *Service) GetByID(ctx context.Context, id int64, includeInactive bool) (*models.HouseResponse, error) {
	house, err := s.getHouse(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !house.IsActive && !includeInactive {
		s.logger.Warn("GetByID: house id=%d is inactive", id)
		return nil, ErrHouseNotFound
	}

	return models.FromDomainHouse(house, s.weekendMultiplier), nil
}

// Create создает дом (админка)
func (s *Service) Create(ctx context.Context, req *models.HouseRequest) (*models.HouseResponse, error) {
	s.logger.Info("Create: creating house name=%s, capacity=%d", req.Name, req.Capacity)

	house := &domain.House{
		Name:              strings.TrimSpace(req.Name),
		Description:       req.Description,
		Capacity:          req.Capacity,
		BaseRate:          req.BaseRate,
		WeekendMultiplier: req.WeekendMultiplier,
		Amenities:         req.Amenities,
		IsActive:          req.IsActive == nil || *req.IsActive,
	}

	if err := validateHouse(house); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.houseRepo.Create(ctx, house)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created house id=%d", created.ID)
	return models.FromDomainHouse(created, s.weekendMultiplier), nil
}

// Update частично обновляет дом (админка)
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateHouseRequest) (*models.HouseResponse, error) {
	s.logger.Info("Update: updating house id=%d", id)

	house, err := s.getHouse(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	req.Apply(house)
	house.Name = strings.TrimSpace(house.Name)

	if err := validateHouse(house); err != nil {
		s.logger.Warn("Update: validation failed for house id=%d: %v", id, err)
		return nil, err
	}

	if err := s.houseRepo.Update(ctx, house); err != nil {
		if errors.Is(err, houseRepo.ErrHouseNotFound) {
			return nil, ErrHouseNotFound
		}
		s.logger.Error("Update: repository error for house id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated house id=%d", id)
	return models.FromDomainHouse(house, s.weekendMultiplier), nil
}

// Delete удаляет дом (админка). Дом с бронированиями удалить нельзя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting house id=%d", id)

	if err := s.houseRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, houseRepo.ErrHouseNotFound):
			s.logger.Warn("Delete: house id=%d not found", id)
			return ErrHouseNotFound
		case errors.Is(err, houseRepo.ErrHouseInUse):
			s.logger.Warn("Delete: house id=%d has bookings", id)
			return ErrHouseHasBookings
		}
		s.logger.Error("Delete: repository error for house id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted house id=%d", id)
	return nil
}

// UploadImage загружает картинку дома в объектное хранилище и сохраняет ссылку
func (s *Service) UploadImage(ctx context.Context, req *models.UploadImageRequest, body io.Reader) (*models.HouseResponse, error) {
	s.logger.Info("UploadImage: house id=%d, file=%s, type=%s, size=%d",
		req.HouseID, req.FileName, req.ContentType, req.Size)

	// 1. Проверка файла
	ext, ok := imageExtensions[req.ContentType]
	if !ok {
		s.logger.Warn("UploadImage: unsupported content type %s", req.ContentType)
		return nil, ErrUnsupportedImage
	}
	if req.Size <= 0 || req.Size > maxImageSize {
		return nil, fmt.Errorf("%w: image size must be in 1..%d bytes", ErrInvalidInput, maxImageSize)
	}

	// 2. Дом должен существовать
	house, err := s.getHouse(ctx, "UploadImage", req.HouseID)
	if err != nil {
		return nil, err
	}

	// 3. Загрузка
	key := path.Join("houses", fmt.Sprint(house.ID), uuid.NewString()+ext)
	url, err := s.uploader.Upload(ctx, key, body, req.Size, req.ContentType)
	if err != nil {
		if errors.Is(err, imagestore.ErrNotConfigured) {
			s.logger.Warn("UploadImage: image storage is not configured")
			return nil, ErrStorageNotConfigured
		}
		s.logger.Error("UploadImage: upload failed for house id=%d: %v", house.ID, err)
		return nil, fmt.Errorf("%w: UploadImage - upload failed: %v", ErrInternal, err)
	}

	// 4. Сохранение ссылки
	if err := s.houseRepo.SetImage(ctx, house.ID, url); err != nil {
		s.logger.Error("UploadImage: failed to save image url for house id=%d: %v", house.ID, err)
		return nil, fmt.Errorf("%w: UploadImage - repository error: %v", ErrInternal, err)
	}

	house.ImageURL = &url
	s.logger.Info("UploadImage: house id=%d image=%s", house.ID, url)
	return models.FromDomainHouse(house, s.weekendMultiplier), nil
}

func (s *Service) getHouse(ctx context.Context, op string, id int64) (*domain.House, error) {
	house, err := s.houseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, houseRepo.ErrHouseNotFound) {
			s.logger.Warn("%s: house id=%d not found", op, id)
			return nil, ErrHouseNotFound
		}
		s.logger.Error("%s: repository error for house id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return house, nil
}

func validateHouse(h *domain.House) error {
	if h.Name == "" || len(h.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required (max %d chars)", ErrInvalidInput, domain.MaxNameLength)
	}
	if h.Capacity < domain.MinGuests || h.Capacity > domain.MaxHouseGuests {
		return fmt.Errorf("%w: capacity must be in %d..%d", ErrInvalidInput, domain.MinGuests, domain.MaxHouseGuests)
	}
	if h.BaseRate <= 0 {
		return fmt.Errorf("%w: base rate must be positive", ErrInvalidInput)
	}
	if h.WeekendMultiplier != nil && *h.WeekendMultiplier <= 0 {
		return fmt.Errorf("%w: weekend multiplier must be positive", ErrInvalidInput)
	}
	return nil
}
