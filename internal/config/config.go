package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"promoforge-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string `env:"DATABASE_DSN" required:"true"`
	EnvMode     string `env:"ENV_MODE"     required:"true"`
	HTTPPort    string `env:"HTTP_PORT"    envDefault:"4010"`

	// HS256 secret for access tokens
	JwtSecret string `env:"JWT_SECRET" required:"true"`

	// master key for provider secret encryption at rest, 32+ bytes
	EncryptionKey string `env:"ENCRYPTION_KEY" required:"true"`
}

const (
	EnvModeDevelopment = "development"
	EnvModeProduction  = "production"
)

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	// walk up to the module root so tests in nested packages
	// still find the .env file
	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.JwtSecret == "" {
		log.Error("JWT_SECRET is empty")
		os.Exit(1)
	}

	if len(env.EncryptionKey) < 32 {
		log.Error("ENCRYPTION_KEY must be at least 32 bytes")
		os.Exit(1)
	}

	if env.EnvMode != EnvModeDevelopment && env.EnvMode != EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	log.Info("Environment variables loaded successfully!", "mode", env.EnvMode)
}
