package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Backend    Backend    `yaml:"backend"`
	Session    Session    `yaml:"session"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"space_booker"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

// Backend describes the upstream space travel API.
type Backend struct {
	BaseURL     string        `yaml:"base_url" env:"BACKEND_URL" env-default:"http://localhost:8000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"3s"`
	RPS         float64       `yaml:"rps" env-default:"20"`
	OfflineMode bool          `yaml:"offline_mode" env:"OFFLINE_MODE" env-default:"false"`
}

type Session struct {
	TTL time.Duration `yaml:"ttl" env-default:"30m"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, err
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	// Upstream calls run inside a request and must end before its write deadline.
	if cfg.HTTPServer.Timeout > 0 && cfg.Backend.Timeout >= cfg.HTTPServer.Timeout {
		return nil, fmt.Errorf("backend.timeout %s must be shorter than http_server.timeout %s",
			cfg.Backend.Timeout, cfg.HTTPServer.Timeout)
	}

	return &cfg, nil
}
