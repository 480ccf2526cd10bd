package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

const (
	// EnvConfigPath переопределяет путь к файлу конфигурации
	EnvConfigPath = "CONFIG_PATH"
	// EnvDBPassword переопределяет пароль БД из файла
	EnvDBPassword = "DB_PASSWORD"

	DefaultPath = "config.toml"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config")
	ErrInvalidConfig = errors.New("config: invalid config")
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Pricing  PricingConfig  `toml:"pricing"`
	Booking  BookingConfig  `toml:"booking"`
	Dining   DiningConfig   `toml:"dining"`
	Fitness  FitnessConfig  `toml:"fitness"`
	Storage  StorageConfig  `toml:"storage"`
	Kafka    KafkaConfig    `toml:"kafka"`
	Auth     AuthConfig     `toml:"auth"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type PricingConfig struct {
	WeekendMultiplier float64 `toml:"weekend_multiplier"`
}

type BookingConfig struct {
	MaxStayNights      int `toml:"max_stay_nights"`
	AdvanceBookingDays int `toml:"advance_booking_days"`
}

type DiningConfig struct {
	SeatsPerDay int `toml:"seats_per_day"`
}

// FitnessConfig цены абонементов в зал
type FitnessConfig struct {
	MonthlyPrice   float64 `toml:"monthly_price"`
	QuarterlyPrice float64 `toml:"quarterly_price"`
	AnnualPrice    float64 `toml:"annual_price"`
}

// MembershipPrices цены по тарифам
func (f FitnessConfig) MembershipPrices() map[domain.MembershipPlan]float64 {
	return map[domain.MembershipPlan]float64{
		domain.PlanMonthly:   f.MonthlyPrice,
		domain.PlanQuarterly: f.QuarterlyPrice,
		domain.PlanAnnual:    f.AnnualPrice,
	}
}

// StorageConfig объектное хранилище для картинок домов (MinIO/S3)
// Пустой Endpoint отключает загрузку
type StorageConfig struct {
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Bucket    string `toml:"bucket"`
	UseSSL    bool   `toml:"use_ssl"`
	PublicURL string `toml:"public_url"`
}

// Enabled true, если загрузка картинок настроена
func (s StorageConfig) Enabled() bool {
	return s.Endpoint != ""
}

// KafkaConfig публикация событий бронирований
// Пустой список брокеров отключает публикацию
type KafkaConfig struct {
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

type AuthConfig struct {
	BcryptCost int `toml:"bcrypt_cost"`
}

// Load читает конфигурацию из файла. CONFIG_PATH, если задан, имеет приоритет над path
func Load(path string) (*Config, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		path = env
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if pwd := os.Getenv(EnvDBPassword); pwd != "" {
		cfg.Database.Password = pwd
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "resort-service",
		},
		Pricing: PricingConfig{
			WeekendMultiplier: domain.DefaultWeekendMultiplier,
		},
		Booking: BookingConfig{
			MaxStayNights:      domain.DefaultMaxStayNights,
			AdvanceBookingDays: domain.DefaultAdvanceBookingDays,
		},
		Dining: DiningConfig{
			SeatsPerDay: domain.DefaultTableSeatsPerDay,
		},
		Fitness: FitnessConfig{
			MonthlyPrice:   3000,
			QuarterlyPrice: 8000,
			AnnualPrice:    28000,
		},
		Storage: StorageConfig{
			Bucket: "houses",
		},
		Kafka: KafkaConfig{
			Topic: "resort.events",
		},
		Auth: AuthConfig{
			BcryptCost: 10,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, "server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Database.User == "" {
		problems = append(problems, "database.user is required")
	}
	if c.Pricing.WeekendMultiplier <= 0 {
		problems = append(problems, "pricing.weekend_multiplier must be positive")
	}
	if c.Booking.MaxStayNights <= 0 {
		problems = append(problems, "booking.max_stay_nights must be positive")
	}
	if c.Booking.AdvanceBookingDays < 0 {
		problems = append(problems, "booking.advance_booking_days must not be negative")
	}
	if c.Dining.SeatsPerDay <= 0 {
		problems = append(problems, "dining.seats_per_day must be positive")
	}
	if c.Fitness.MonthlyPrice < 0 || c.Fitness.QuarterlyPrice < 0 || c.Fitness.AnnualPrice < 0 {
		problems = append(problems, "fitness prices must not be negative")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, "metrics.path must start with /")
	}
	if c.Storage.Enabled() && c.Storage.Bucket == "" {
		problems = append(problems, "storage.bucket is required when storage.endpoint is set")
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		problems = append(problems, "kafka.topic is required when kafka.brokers is set")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		problems = append(problems, "auth.bcrypt_cost must be in 4..31")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
