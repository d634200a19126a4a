package config

import (
	"errors"
	"os"
)

var ConfigGlobal = DefaultConfig()

type Config struct {
	// server
	Port string

	// remote inference deployment
	SdEndpoint string

	// request body cap, byte
	MaxBodySize int64
}

func DefaultConfig() *Config {
	return &Config{
		Port:        "3000",
		SdEndpoint:  DEFAULT_SD_ENDPOINT,
		MaxBodySize: DEFAULT_MAX_BODY_SIZE,
	}
}

// InitConfig read config from env, PORT required
func InitConfig() error {
	ConfigGlobal = DefaultConfig()
	ConfigGlobal.Port = os.Getenv(PORT)
	if ConfigGlobal.Port == "" {
		return errors.New("not set PORT, please check")
	}
	return nil
}
