package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
)

var ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const defaultPort = 8080

// Config is the process configuration, loaded once at startup and
// passed explicitly to whoever needs it. There is no ambient global
// state beyond the environment itself.

type Config struct {
	// AccessToken authenticates against the payment processor.
	// Required: the service refuses to start without it.
	AccessToken string
	// AllowedOrigin restricts CORS. Empty allows any origin, which is
	// only intended for local development.
	AllowedOrigin string
	Port          int
}

// Load reads configuration from the environment. A missing access
// token is startup-fatal by contract, never a request-time error.
func Load() (Config, error) {
	cfg := Config{
		AccessToken:   strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		AllowedOrigin: strings.TrimSpace(os.Getenv("FRONTEND_URL")),
		Port:          defaultPort,
	}

	if cfg.AccessToken == "" {
		return Config{}, ErrMissingAccessToken
	}

	if cfg.AllowedOrigin == "" {
		log.Printf("[config] FRONTEND_URL not set; CORS will allow any origin")
	}

	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, errors.New("invalid PORT value: " + raw)
		}
		cfg.Port = port
	}

	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
