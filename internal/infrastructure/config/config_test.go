package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/luwang-go/internal/domain/measurement"
	"github.com/hapkiduki/luwang-go/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "luwang-go", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, float64(measurement.DefaultLuwangAreaSqm), cfg.Measurement.LuwangAreaSqm)
	assert.True(t, cfg.Measurement.UsesProvisionalLuwang())
	assert.Equal(t, 10.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LUWANG_MEASUREMENT_LUWANG_AREA_SQM", "4000")
	t.Setenv("LUWANG_LOG_LEVEL", "debug")
	t.Setenv("LUWANG_SERVER_REQUEST_TIMEOUT", "3s")
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 4000.0, cfg.Measurement.LuwangAreaSqm)
	assert.False(t, cfg.Measurement.UsesProvisionalLuwang())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoad_RejectsInvalidLuwangRatio(t *testing.T) {
	t.Setenv("LUWANG_MEASUREMENT_LUWANG_AREA_SQM", "0")

	_, err := config.Load()
	assert.ErrorIs(t, err, measurement.ErrInvalidLuwangRatio)
}

func TestValidate(t *testing.T) {
	valid := func() config.Config {
		return config.Config{
			Server:      config.ServerConfig{Port: 8080},
			Log:         config.LogConfig{Level: "info", Format: "console"},
			Measurement: config.MeasurementConfig{LuwangAreaSqm: 2500},
			RateLimit:   config.RateLimitConfig{RequestsPerSecond: 1, Burst: 1},
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Server.Port = 70000
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidPort)

	cfg = valid()
	cfg.Log.Format = "xml"
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidLogFormat)

	cfg = valid()
	cfg.RateLimit.Burst = 0
	assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidRateLimit)

	cfg = valid()
	cfg.Measurement.LuwangAreaSqm = -2500
	assert.ErrorIs(t, cfg.Validate(), measurement.ErrInvalidLuwangRatio)
}
