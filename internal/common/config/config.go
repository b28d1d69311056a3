package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/AlibekovAA/notes-api/internal/common/constants"
	commonerrors "github.com/AlibekovAA/notes-api/internal/common/errors"
)

// Config is built once at startup and handed to constructors by value.
type Config struct {
	HTTPPort           string        `env:"HTTP_PORT"                  envDefault:"8080"`
	DatabaseURL        string        `env:"DATABASE_URL,required,notEmpty"`
	JWTSecret          string        `env:"JWT_SECRET,required,notEmpty"`
	AccessTokenTTL     time.Duration `env:"ACCESS_TOKEN_TTL"           envDefault:"1h"`
	BcryptCost         int           `env:"BCRYPT_COST"                envDefault:"10"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"            envDefault:"5s"`
	ListExcludeDeleted bool          `env:"NOTES_LIST_EXCLUDE_DELETED" envDefault:"false"`
	RunMigrations      bool          `env:"RUN_MIGRATIONS"             envDefault:"true"`
	LogDir             string        `env:"LOG_DIR"`
	LogLevel           string        `env:"LOG_LEVEL"                  envDefault:"INFO"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", commonerrors.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.JWTSecret) < constants.JWTSecretMinLength {
		return fmt.Errorf("%w: got %d bytes", commonerrors.ErrInvalidJWTSecret, len(c.JWTSecret))
	}
	if c.AccessTokenTTL <= 0 {
		return fmt.Errorf("%w: ACCESS_TOKEN_TTL must be positive", commonerrors.ErrInvalidConfig)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", commonerrors.ErrInvalidConfig)
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("%w: BCRYPT_COST must be between 4 and 31", commonerrors.ErrInvalidConfig)
	}
	return nil
}
