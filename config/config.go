package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	PagSeguro PagSeguroConfig
	Server    ServerConfig
	Session   SessionConfig
}

type PagSeguroConfig struct {
	Email       string
	Token       string
	Sandbox     bool
	ButtonImage string
}

type ServerConfig struct {
	Port string
}

type SessionConfig struct {
	Secret string
	Domain string
	MaxAge int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded, relying on environment")
	}

	cfg := &Config{
		PagSeguro: PagSeguroConfig{
			Email:       os.Getenv("PAGSEGURO_EMAIL"),
			Token:       os.Getenv("PAGSEGURO_TOKEN"),
			Sandbox:     true,
			ButtonImage: os.Getenv("PAGSEGURO_BUTTON_IMAGE"),
		},
		Server: ServerConfig{
			Port: os.Getenv("SERVER_PORT"),
		},
		Session: SessionConfig{
			Secret: os.Getenv("SESSION_SECRET"),
			Domain: os.Getenv("SESSION_DOMAIN"),
			MaxAge: 86400 * 7,
		},
	}

	// O sandbox é o padrão; produção precisa ser pedida explicitamente.
	if v := os.Getenv("PAGSEGURO_SANDBOX"); v != "" {
		if sandbox, err := strconv.ParseBool(v); err == nil {
			cfg.PagSeguro.Sandbox = sandbox
		} else {
			log.Warn().Str("value", v).Msg("invalid PAGSEGURO_SANDBOX, keeping sandbox enabled")
		}
	}

	if v := os.Getenv("SESSION_MAX_AGE"); v != "" {
		if maxAge, err := strconv.Atoi(v); err == nil {
			cfg.Session.MaxAge = maxAge
		}
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
		log.Warn().Msg("SERVER_PORT not set, using default 8080")
	}

	return cfg
}
