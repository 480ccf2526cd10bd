package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ResortService/internal/domain"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
user = "resort"
password = "from-file"
dbname = "resort"

[pricing]
weekend_multiplier = 1.5

[kafka]
brokers = ["kafka:9092"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvDBPassword, "")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout, "default kept")
	assert.Equal(t, 1.5, cfg.Pricing.WeekendMultiplier)
	assert.Equal(t, 30, cfg.Booking.MaxStayNights)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, "resort.events", cfg.Kafka.Topic)
	assert.False(t, cfg.Storage.Enabled())
	assert.Contains(t, cfg.Database.DSN(), "password=from-file")
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvDBPassword, "secret")

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "database.dbname")
	assert.Contains(t, err.Error(), "database.user")

	cfg.Database.DBName = "resort"
	cfg.Database.User = "resort"
	assert.NoError(t, cfg.Validate())

	cfg.Pricing.WeekendMultiplier = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestFitnessConfig_MembershipPrices(t *testing.T) {
	prices := Default().Fitness.MembershipPrices()

	assert.Equal(t, 3000.0, prices[domain.PlanMonthly])
	assert.Equal(t, 28000.0, prices[domain.PlanAnnual])
	assert.Len(t, prices, 3)
}
