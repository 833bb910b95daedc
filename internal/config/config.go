package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"local" validate:"oneof=local dev prod"`
	HTTPServer `yaml:"http_server"`
	EventsAPI  `yaml:"events_api"`
	Booking    `yaml:"booking"`
	Cache      `yaml:"cache"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080" validate:"required"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s" validate:"gt=0"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s" validate:"gt=0"`
}

// EventsAPI points at the service answering GET {base_url}/events/{slug}.
type EventsAPI struct {
	BaseURL    string        `yaml:"base_url" env:"BASE_URL" validate:"required,url"`
	Timeout    time.Duration `yaml:"timeout" env-default:"5s" validate:"gt=0"`
	Revalidate time.Duration `yaml:"revalidate" env-default:"60s" validate:"gt=0"`
	// When false a failed fetch is shown to visitors as a missing event.
	DistinguishFetchErrors bool `yaml:"distinguish_fetch_errors" env-default:"false"`
}

type Booking struct {
	SubmitDelay      time.Duration `yaml:"submit_delay" env-default:"1s" validate:"gt=0"`
	PlaceholderCount int           `yaml:"placeholder_count" env-default:"10" validate:"gte=0"`
}

type Cache struct {
	Driver string `yaml:"driver" env:"CACHE_DRIVER" env-default:"memory" validate:"oneof=memory redis"`
	Redis  Redis  `yaml:"redis"`
}

type Redis struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
