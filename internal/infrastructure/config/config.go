// Package config provides configuration management for the application.
// It follows the 12-Factor App methodology by loading configuration
// from environment variables and supporting external configuration files.
//
// 12-Factor App Compliance:
//   - III. Config: Store config in the environment
//   - Configuration is loaded from environment variables prefixed with LUWANG_
//   - An optional config.yaml may supply the same keys
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hapkiduki/luwang-go/internal/domain/measurement"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "LUWANG"

// Configuration errors.
var (
	ErrInvalidPort      = errors.New("server port must be between 1 and 65535")
	ErrInvalidLogFormat = errors.New("log format must be json or console")
	ErrInvalidRateLimit = errors.New("rate limit must be positive")
)

// Config holds all application configuration.
// All fields are populated from environment variables or config files.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Log contains logger configuration
	Log LogConfig `mapstructure:"log"`

	// Measurement contains area calculation configuration
	Measurement MeasurementConfig `mapstructure:"measurement"`

	// RateLimit contains per-client rate limiting configuration
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, staging, production)
	Environment string `mapstructure:"environment"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address
	Host string `mapstructure:"host"`

	// Port is the server port
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request, including the body
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// RequestTimeout bounds the handling of a single request
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// ShutdownTimeout is the maximum duration for graceful server shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// MaxRequestSize is the maximum allowed request body size
	MaxRequestSize int64 `mapstructure:"max_request_size"`

	// CORSAllowedOrigins is a list of allowed origins for CORS
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LogConfig contains logger configuration.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is json or console
	Format string `mapstructure:"format"`
}

// MeasurementConfig contains area calculation configuration.
type MeasurementConfig struct {
	// LuwangAreaSqm is the number of square meters in one LuWang
	LuwangAreaSqm float64 `mapstructure:"luwang_area_sqm"`
}

// UsesProvisionalLuwang reports whether the LuWang ratio is still the
// built-in provisional default.
func (m MeasurementConfig) UsesProvisionalLuwang() bool {
	return m.LuwangAreaSqm == measurement.DefaultLuwangAreaSqm
}

// RateLimitConfig contains per-client rate limiting configuration.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained request rate per client
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`

	// Burst is the maximum burst size per client
	Burst int `mapstructure:"burst"`
}

// Load loads the configuration from environment variables and config files.
// It follows this precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (if provided)
//  3. Default values
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading or validation
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Set config file settings
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/luwang-go")

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "luwang-go")
	v.SetDefault("app.environment", "development")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.max_request_size", 1<<20) // 1MB
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Measurement defaults
	v.SetDefault("measurement.luwang_area_sqm", float64(measurement.DefaultLuwangAreaSqm))

	// Rate limit defaults
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
}

// bindEnvVars binds specific environment variables to configuration keys.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("server.port", "LUWANG_SERVER_PORT", "PORT")
}

// Validate checks the loaded configuration for values the service cannot run with.
//
// Returns:
//   - error: the first problem found, or nil
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Server.Port)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Log.Format)
	}
	if !(c.RateLimit.RequestsPerSecond > 0) || c.RateLimit.Burst < 1 {
		return ErrInvalidRateLimit
	}
	ratio := c.Measurement.LuwangAreaSqm
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return fmt.Errorf("%w: got %v", measurement.ErrInvalidLuwangRatio, ratio)
	}
	return nil
}

// MustLoad loads the configuration and panics on error.
// Use this in application entry points where configuration is required.
//
// Returns:
//   - *Config: The loaded configuration
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
