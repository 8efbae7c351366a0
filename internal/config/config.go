package config

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Mongo     MongoConfig
	Log       LogConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Env        string `env:"APP_ENV" env-default:"production"`
	CORSOrigin string `env:"CORS_ORIGIN" env-default:"*"`
	Storage    string `env:"STORAGE_DRIVER" env-default:"mongo"`
}

type HTTPConfig struct {
	Port            string        `env:"PORT" env-default:"3000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	// Proxies whose X-Forwarded-For is honoured; empty trusts none.
	TrustedProxies []string `env:"TRUSTED_PROXIES" env-separator:","`
}

type MongoConfig struct {
	URI              string        `env:"MONGODB_URI" env-default:"mongodb://localhost:27017/todoapp"`
	Database         string        `env:"MONGODB_DATABASE" env-default:""`
	ConnectTimeout   time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"10s"`
	OperationTimeout time.Duration `env:"DB_OPERATION_TIMEOUT" env-default:"10s"`
	MaxPool          uint64        `env:"DB_MAX_POOL" env-default:"100"`
	MinPool          uint64        `env:"DB_MIN_POOL" env-default:"0"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS" env-default:"0"`
	Burst int     `env:"RATE_LIMIT_BURST" env-default:"20"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	return FromEnv()
}

// FromEnv parses the process environment without touching .env.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.App.Storage {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", DriverMongo, DriverMemory, c.App.Storage)
	}
	if c.Mongo.OperationTimeout < 0 {
		return fmt.Errorf("DB_OPERATION_TIMEOUT must not be negative")
	}
	for _, p := range c.HTTP.TrustedProxies {
		if net.ParseIP(p) == nil {
			if _, _, err := net.ParseCIDR(p); err != nil {
				return fmt.Errorf("TRUSTED_PROXIES: %q is not an IP or CIDR", p)
			}
		}
	}
	return nil
}

// IsDevelopment controls whether internal error messages reach clients.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == EnvDevelopment
}
