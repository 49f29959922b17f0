package translate

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the provider configuration: which backend is active, its
// credential, and the networked backends' endpoint/model overrides. The zero
// value selects the offline backend.
type Config struct {
	Backend    Backend `env:"TRANSLATE_BACKEND" envDefault:"offline"`
	Credential string  `env:"TRANSLATE_API_KEY"`
	BaseURL    string  `env:"TRANSLATE_BASE_URL"`
	Model      string  `env:"TRANSLATE_MODEL"`
}

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the Config struct.
var ErrParsingConfig = errors.New("failed to parse translation config from environment")

var defaultEnvLoaded sync.Once

// LoadConfig reads the provider configuration from the environment,
// loading a .env file first if one exists.
func LoadConfig() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
