package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Rate limiter backends
const (
	RateLimitBackendRedis  = "redis"
	RateLimitBackendMemory = "memory"
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Strapi    StrapiConfig    `toml:"strapi"`
	Booking   BookingConfig   `toml:"booking"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Redis     RedisConfig     `toml:"redis"`
	Mail      MailConfig      `toml:"mail"`
	Admin     AdminConfig     `toml:"admin"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	// CORSOrigins разрешенные источники для сайта; пусто - CORS выключен
	CORSOrigins []string `toml:"cors_origins"`
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StrapiConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"`
}

type BookingConfig struct {
	SlotIntervalMinutes int    `toml:"slot_interval_minutes"`
	LeadTimeHours       *int   `toml:"lead_time_hours"`
	BufferMinutes       int    `toml:"buffer_minutes"`
	Timezone            string `toml:"timezone"`
	MaxDaysAhead        int    `toml:"max_days_ahead"`
}

type RateLimitConfig struct {
	Enabled       bool   `toml:"enabled"`
	Requests      int    `toml:"requests"`
	WindowSeconds int    `toml:"window_seconds"`
	Backend       string `toml:"backend"`
	FailOpen      bool   `toml:"fail_open"`
}

// Window длительность окна лимитера
func (c RateLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowSeconds) * time.Second
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type MailConfig struct {
	Enabled     bool   `toml:"enabled"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Username    string `toml:"username"`
	Password    string `toml:"password"`
	From        string `toml:"from"`
	ShopAddress string `toml:"shop_address"`
	ShopName    string `toml:"shop_name"`
}

type AdminConfig struct {
	Token string `toml:"token"`
}

// Load читает .env (если есть), затем TOML-файл, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	// .env необязателен: в контейнере переменные приходят из окружения
	_ = godotenv.Load()

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse разбирает конфигурацию из строки; используется в тестах и утилитах
func Parse(data string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Strapi.Token, "STRAPI_API_TOKEN")
	setString(&c.Database.Password, "DATABASE_PASSWORD")
	setString(&c.Mail.Password, "SMTP_PASSWORD")
	setString(&c.Admin.Token, "ADMIN_TOKEN")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Strapi.URL, "STRAPI_URL")
	if v, err := strconv.Atoi(os.Getenv("HTTP_PORT")); err == nil {
		c.Server.HTTPPort = v
	}
}

func (c *Config) applyDefaults() {
	setIntDefault(&c.Server.HTTPPort, 8080)
	setIntDefault(&c.Server.ReadTimeout, 10)
	setIntDefault(&c.Server.WriteTimeout, 10)
	setIntDefault(&c.Server.IdleTimeout, 60)
	setIntDefault(&c.Server.ShutdownTimeout, 10)

	setIntDefault(&c.Database.Port, 5432)
	setStringDefault(&c.Database.SSLMode, "disable")
	setIntDefault(&c.Database.MaxOpenConns, 25)
	setIntDefault(&c.Database.MaxIdleConns, 5)
	setIntDefault(&c.Database.ConnMaxLifetime, 300)

	setStringDefault(&c.Logs.Level, "info")
	setStringDefault(&c.Metrics.Path, "/metrics")
	setStringDefault(&c.Metrics.ServiceName, "barber-booking")

	setIntDefault(&c.Strapi.Timeout, 5)

	setIntDefault(&c.Booking.SlotIntervalMinutes, domain.DefaultSlotIntervalMinutes)
	if c.Booking.LeadTimeHours == nil {
		lead := domain.DefaultLeadTimeHours
		c.Booking.LeadTimeHours = &lead
	}
	setStringDefault(&c.Booking.Timezone, domain.DefaultTimezone)
	setIntDefault(&c.Booking.MaxDaysAhead, domain.DefaultMaxDaysAhead)

	setIntDefault(&c.RateLimit.Requests, 5)
	setIntDefault(&c.RateLimit.WindowSeconds, 60)
	setStringDefault(&c.RateLimit.Backend, RateLimitBackendMemory)

	setStringDefault(&c.Redis.Addr, "localhost:6379")

	setIntDefault(&c.Mail.Port, 587)
	setStringDefault(&c.Mail.ShopName, "Barbershop")
}

// Validate проверяет значения, от которых зависит расчет слотов
func (c *Config) Validate() error {
	if c.Booking.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("%w: booking.slot_interval_minutes must be positive", ErrInvalidConfig)
	}
	if c.Booking.LeadTimeHours != nil && *c.Booking.LeadTimeHours < 0 {
		return fmt.Errorf("%w: booking.lead_time_hours must not be negative", ErrInvalidConfig)
	}
	if c.Booking.BufferMinutes < 0 {
		return fmt.Errorf("%w: booking.buffer_minutes must not be negative", ErrInvalidConfig)
	}
	if c.Booking.MaxDaysAhead <= 0 {
		return fmt.Errorf("%w: booking.max_days_ahead must be positive", ErrInvalidConfig)
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("%w: booking.timezone %q: %v", ErrInvalidConfig, c.Booking.Timezone, err)
	}
	switch c.RateLimit.Backend {
	case RateLimitBackendRedis, RateLimitBackendMemory:
	default:
		return fmt.Errorf("%w: rate_limit.backend must be %q or %q", ErrInvalidConfig,
			RateLimitBackendRedis, RateLimitBackendMemory)
	}
	if c.Mail.Enabled && (c.Mail.Host == "" || c.Mail.From == "") {
		return fmt.Errorf("%w: mail.host and mail.from are required when mail is enabled", ErrInvalidConfig)
	}
	return nil
}

// BookingRules собирает правила расчета слотов; вызывать после Validate
func (c *Config) BookingRules() (domain.BookingRules, error) {
	loc, err := time.LoadLocation(c.Booking.Timezone)
	if err != nil {
		return domain.BookingRules{}, fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	lead := domain.DefaultLeadTimeHours
	if c.Booking.LeadTimeHours != nil {
		lead = *c.Booking.LeadTimeHours
	}
	return domain.BookingRules{
		SlotIntervalMinutes: c.Booking.SlotIntervalMinutes,
		LeadTimeHours:       lead,
		BufferMinutes:       c.Booking.BufferMinutes,
		MaxDaysAhead:        c.Booking.MaxDaysAhead,
		Location:            loc,
	}, nil
}

func setString(dst *string, env string) {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		*dst = v
	}
}

func setStringDefault(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func setIntDefault(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}
