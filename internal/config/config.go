package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string     `yaml:"env" env:"ENV" env-default:"local"`
	StoragePath string     `yaml:"storage_path" env-default:"./data"`
	HTTPServer  HTTPServer `yaml:"http_server"`
	Instagram   Instagram  `yaml:"instagram"`
	Cameras     []string   `yaml:"cameras"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:3000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Instagram struct {
	VerifyToken string `yaml:"verify_token" env:"VERIFY_TOKEN" env-default:"3bd_barber_verify_token"`
	AccessToken string `yaml:"access_token" env:"PAGE_ACCESS_TOKEN"`
	GraphAPIURL string `yaml:"graph_api_url" env-default:"https://graph.facebook.com/v19.0"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
