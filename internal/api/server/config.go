package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/brainfeed/pkg/utils"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
}

// LoadConfig reads PORT, USE_HTTP2 and CORS_ORIGINS from the environment.
func LoadConfig() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	var origins []string
	if corsOriginsEnv := os.Getenv("CORS_ORIGINS"); corsOriginsEnv != "" {
		origins = utils.RemoveEmptyStrings(strings.Split(corsOriginsEnv, ","))
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:        port,
		UseHttp2:    useHttp2,
		CorsOrigins: origins,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
