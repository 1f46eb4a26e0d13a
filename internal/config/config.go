package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	Twilio   TwilioConfig   `json:"twilio"`
	Weather  WeatherConfig  `json:"weather"`
	Tracking TrackingConfig `json:"tracking"`
	APIKey   string         `json:"api_key,omitempty"`

	// RefDataPath points to a JSON file of points of interest; empty means
	// the built-in dataset.
	RefDataPath string `json:"refdata_path"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// PublicBaseURL is used to build tracking/stream links in notification
	// texts.
	PublicBaseURL string `json:"public_base_url"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type TwilioConfig struct {
	AccountSID string `json:"account_sid,omitempty"`
	AuthToken  string `json:"auth_token,omitempty"`
	// WhatsApp sandbox sender.
	FromNumber string `json:"from_number"`
	// AdminPhone receives panic escalations and one-off emergency alerts.
	AdminPhone string `json:"admin_phone"`
	Disabled   bool   `json:"disabled"`
}

type WeatherConfig struct {
	APIKey   string        `json:"api_key,omitempty"`
	BaseURL  string        `json:"base_url"`
	Timeout  time.Duration `json:"timeout"`
	CacheTTL time.Duration `json:"cache_ttl"`
}

type TrackingConfig struct {
	// DeviationThresholdMeters is how far from every planned waypoint a
	// location must be before it counts as a deviation.
	DeviationThresholdMeters float64 `json:"deviation_threshold_meters"`
	// NotifyInterval rate-limits plain location-update notifications.
	NotifyInterval time.Duration `json:"notify_interval"`
	// CheckInDelay is the one-shot timer scheduled at journey start.
	CheckInDelay time.Duration `json:"check_in_delay"`
}

func Load() (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			PublicBaseURL:   getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "safewalk_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Twilio: TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_FROM", "whatsapp:+14155238886"),
			AdminPhone: getEnv("ADMIN_PHONE", "+919902480636"),
			Disabled:   getEnvBool("TWILIO_DISABLED", false),
		},
		Weather: WeatherConfig{
			APIKey:   getEnv("WEATHER_API_KEY", ""),
			BaseURL:  getEnv("WEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather"),
			Timeout:  getEnvDuration("WEATHER_TIMEOUT", 5*time.Second),
			CacheTTL: getEnvDuration("WEATHER_CACHE_TTL", 10*time.Minute),
		},
		Tracking: TrackingConfig{
			DeviationThresholdMeters: getEnvFloat("TRACKING_DEVIATION_METERS", 200),
			NotifyInterval:           getEnvDuration("TRACKING_NOTIFY_INTERVAL", 5*time.Minute),
			CheckInDelay:             getEnvDuration("TRACKING_CHECKIN_DELAY", 10*time.Minute),
		},
		APIKey:      getEnv("API_KEY", ""),
		RefDataPath: getEnv("REFDATA_PATH", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Bool("twilio_disabled", cfg.Twilio.Disabled),
	)

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}
	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}
	if c.Tracking.DeviationThresholdMeters <= 0 {
		return errors.New("TRACKING_DEVIATION_METERS must be positive")
	}
	if c.Twilio.AdminPhone == "" {
		return errors.New("ADMIN_PHONE required")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
