package env

import (
	"investsim_backend/internal/config"
	"os"
)

const (
	addressEnvName = "HTTP_ADDRESS"
	defaultAddress = ":8080"
)

type httpConfig struct {
	address string
}

func NewHTTPConfig() (config.HTTPConfig, error) {
	address := os.Getenv(addressEnvName)
	if len(address) == 0 {
		address = defaultAddress
	}

	return &httpConfig{
		address: address,
	}, nil
}

func (cfg *httpConfig) Address() string {
	return cfg.address
}
