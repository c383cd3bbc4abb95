// Package config загружает конфигурацию сервиса из TOML файла.
// Значения вида ${VAR} подставляются из окружения.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/KrisWemet/customer-connection-hub-sub001/internal/domain"
	"github.com/KrisWemet/customer-connection-hub-sub001/pkg/types"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	RateLimit  RateLimitConfig  `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки PostgreSQL
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
	RunMigrations   bool   `toml:"run_migrations"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig настройки кэша
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingConfig настройки площадки, используемые пока в БД ничего не сохранено
type SchedulingConfig struct {
	SeasonStart             types.MonthDay `toml:"season_start"`
	SeasonEnd               types.MonthDay `toml:"season_end"`
	MaxReceptionGuests      int            `toml:"max_reception_guests"`
	IncludedCampingGuests   int            `toml:"included_camping_guests"`
	IncludedRvSites         int            `toml:"included_rv_sites"`
	MinResetGapDays         int            `toml:"min_reset_gap_days"`
	LastMinuteThresholdDays int            `toml:"last_minute_threshold_days"`
	Timezone                string         `toml:"timezone"` // для вычисления "сегодня"
}

// VenueDefaults настройки площадки по умолчанию
func (s SchedulingConfig) VenueDefaults() domain.VenueSettings {
	return domain.VenueSettings{
		SeasonStart:             s.SeasonStart,
		SeasonEnd:               s.SeasonEnd,
		MaxReceptionGuests:      s.MaxReceptionGuests,
		IncludedCampingGuests:   s.IncludedCampingGuests,
		IncludedRvSites:         s.IncludedRvSites,
		MinResetGapDays:         s.MinResetGapDays,
		LastMinuteThresholdDays: s.LastMinuteThresholdDays,
	}
}

// RateLimitConfig ограничение частоты запросов к публичным маршрутам
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load читает конфигурацию из файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(string(data))
}

// Parse разбирает конфигурацию из строки TOML
func Parse(data string) (*Config, error) {
	cfg := defaults()
	if _, err := toml.Decode(os.ExpandEnv(data), cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	venue := domain.DefaultVenueSettings()
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
			RunMigrations:   true,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
			TTL:  300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "venue_booking",
		},
		Scheduling: SchedulingConfig{
			SeasonStart:             venue.SeasonStart,
			SeasonEnd:               venue.SeasonEnd,
			MaxReceptionGuests:      venue.MaxReceptionGuests,
			IncludedCampingGuests:   venue.IncludedCampingGuests,
			IncludedRvSites:         venue.IncludedRvSites,
			MinResetGapDays:         venue.MinResetGapDays,
			LastMinuteThresholdDays: venue.LastMinuteThresholdDays,
			Timezone:                "UTC",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}
	if c.Scheduling.MinResetGapDays < domain.MinResetGapDays {
		return fmt.Errorf("%w: scheduling.min_reset_gap_days must be >= %d", ErrInvalidConfig, domain.MinResetGapDays)
	}
	if c.Scheduling.LastMinuteThresholdDays < 0 {
		return fmt.Errorf("%w: scheduling.last_minute_threshold_days must be >= 0", ErrInvalidConfig)
	}
	if c.Scheduling.SeasonStart.IsZero() || c.Scheduling.SeasonEnd.IsZero() {
		return fmt.Errorf("%w: scheduling season bounds are required", ErrInvalidConfig)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}
	return nil
}
