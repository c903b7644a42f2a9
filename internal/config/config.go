package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	SessionTTL string `yaml:"session_ttl"`
}

type MailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	// StoreAddress receives order-confirmation copies.
	StoreAddress string `yaml:"store_address"`
	SendTimeout  string `yaml:"send_timeout"`
}

type AMQPConfig struct {
	URL      string `yaml:"url"`
	Queue    string `yaml:"queue"`
	PoolSize int    `yaml:"pool_size"`
}

type ResetConfig struct {
	TokenTTL string `yaml:"token_ttl"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Mail     MailConfig     `yaml:"mail"`
	AMQP     AMQPConfig     `yaml:"amqp"`
	Reset    ResetConfig    `yaml:"reset"`
	Frontend struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"frontend"`
}

type Config struct {
	Port    string
	GinMode string

	DSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret  string
	JWTIssuer  string
	AccessTTL  time.Duration
	SessionTTL time.Duration

	MailHost         string
	MailPort         int
	MailUsername     string
	MailPassword     string
	MailFrom         string
	MailStoreAddress string
	MailSendTimeout  time.Duration

	AMQPURL      string
	AMQPQueue    string
	AMQPPoolSize int

	ResetTokenTTL time.Duration

	FrontendBaseURL string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load builds the configuration from an optional config/config.yml overlaid
// by environment variables. A .env file in the working directory is read
// first when present; environment variables always win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	file := &ConfigFile{}
	if raw, err := os.ReadFile(env("CONFIG_FILE", "config/config.yml")); err == nil {
		if err := yaml.Unmarshal(raw, file); err != nil {
			return nil, fmt.Errorf("could not parse config yaml: %w", err)
		}
	}

	cfg := &Config{
		Port:    env("PORT", defStr(intStr(file.App.Port), "5000")),
		GinMode: env("GIN_MODE", defStr(file.App.GinMode, "release")),

		DSN: env("DATABASE_DSN", file.Database.DSN),

		RedisAddr:     env("REDIS_ADDR", defStr(file.Redis.Addr, "localhost:6379")),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       envInt("REDIS_DB", file.Redis.DB),

		JWTSecret: env("JWT_SECRET", file.JWT.Secret),
		JWTIssuer: env("JWT_ISSUER", defStr(file.JWT.Issuer, "zefood")),

		MailHost:         env("MAIL_HOST", defStr(file.Mail.Host, "smtp.gmail.com")),
		MailPort:         envInt("MAIL_PORT", defInt(file.Mail.Port, 587)),
		MailUsername:     env("EMAIL_USER", file.Mail.Username),
		MailPassword:     env("EMAIL_PASS", file.Mail.Password),
		MailFrom:         env("MAIL_FROM", file.Mail.From),
		MailStoreAddress: env("MAIL_STORE_ADDRESS", file.Mail.StoreAddress),

		AMQPURL:      env("AMQP_URL", file.AMQP.URL),
		AMQPQueue:    env("AMQP_QUEUE", defStr(file.AMQP.Queue, "kitchen_orders")),
		AMQPPoolSize: envInt("AMQP_POOL_SIZE", defInt(file.AMQP.PoolSize, 10)),

		FrontendBaseURL: env("FRONTEND_URL", defStr(file.Frontend.BaseURL, "http://localhost:5000")),
	}

	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.MailUsername
	}
	if cfg.MailStoreAddress == "" {
		cfg.MailStoreAddress = cfg.MailUsername
	}
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database DSN not configured (set DATABASE_DSN)")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret not configured (set JWT_SECRET)")
	}

	var err error
	if cfg.AccessTTL, err = parseTTL(env("JWT_ACCESS_TTL", defStr(file.JWT.AccessTTL, "15m"))); err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}
	if cfg.SessionTTL, err = parseTTL(env("SESSION_TTL", defStr(file.JWT.SessionTTL, "168h"))); err != nil {
		return nil, fmt.Errorf("invalid session TTL: %w", err)
	}
	if cfg.ResetTokenTTL, err = parseTTL(env("RESET_TOKEN_TTL", defStr(file.Reset.TokenTTL, "1h"))); err != nil {
		return nil, fmt.Errorf("invalid reset token TTL: %w", err)
	}
	if cfg.MailSendTimeout, err = parseTTL(env("MAIL_SEND_TIMEOUT", defStr(file.Mail.SendTimeout, "10s"))); err != nil {
		return nil, fmt.Errorf("invalid mail send timeout: %w", err)
	}

	return cfg, nil
}

func parseTTL(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

func defStr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func defInt(v, def int) int {
	if v != 0 {
		return v
	}
	return def
}

func intStr(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
