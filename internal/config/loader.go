package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/game"
)

// DefaultEnvFile is read when LoadOptions.EnvFile is empty. It may be absent.
const DefaultEnvFile = ".env"

// Environment variables that override the file settings.
const (
	EnvDBDriver   = "SNAKE_DB_DRIVER"
	EnvDBPath     = "SNAKE_DB_PATH"
	EnvDBHost     = "SNAKE_DB_HOST"
	EnvDBPort     = "SNAKE_DB_PORT"
	EnvDBUser     = "SNAKE_DB_USER"
	EnvDBPassword = "SNAKE_DB_PASSWORD"
	EnvDBName     = "SNAKE_DB_NAME"
	EnvDBTimeout  = "SNAKE_DB_TIMEOUT"
	EnvLogLevel   = "SNAKE_LOG_LEVEL"
	EnvWall       = "SNAKE_WALL_BEHAVIOR"
)

// LoadOptions selects the files Load reads.
type LoadOptions struct {
	Path    string // explicit config file; must exist when set
	EnvFile string // dotenv file; must exist when set
}

// Load reads the settings.
// Search order: opts.Path -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Values from the chosen file are layered over the embedded default, then
// the dotenv file and the process environment are applied.
func Load(opts LoadOptions) (Settings, error) {
	cfg := DefaultSettings()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		cfg = DefaultSettings() // Fallback to hardcoded if embed fails
	}
	cfg.Source = "embedded"

	// Try custom path first
	if opts.Path != "" {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", opts.Path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", opts.Path, err)
		}
		cfg.Source = opts.Path
	} else {
		for _, candidate := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "snake.yaml")} {
			if candidate == "" {
				continue
			}
			data, err := os.ReadFile(candidate)
			if err != nil {
				continue
			}
			next := cfg
			if err := yaml.Unmarshal(data, &next); err != nil {
				continue
			}
			cfg = next
			cfg.Source = candidate
			break
		}
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadEnvFile loads dotenv variables without overriding the environment.
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}
	err := godotenv.Load(path)
	switch {
	case err == nil:
		return nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
}

// ApplyEnv overrides settings from environment variables looked up with lookup.
func ApplyEnv(cfg *Settings, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str(EnvDBDriver, &cfg.Storage.Driver)
	str(EnvDBPath, &cfg.Storage.Path)
	str(EnvDBHost, &cfg.Storage.Host)
	str(EnvDBUser, &cfg.Storage.User)
	str(EnvDBName, &cfg.Storage.Database)
	str(EnvLogLevel, &cfg.Log.Level)

	// An empty password is a valid override
	if v, ok := lookup(EnvDBPassword); ok {
		cfg.Storage.Password = v
	}

	if v, ok := lookup(EnvDBPort); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvDBPort, err)
		}
		cfg.Storage.Port = port
	}
	if v, ok := lookup(EnvDBTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, EnvDBTimeout, err)
		}
		cfg.Storage.Timeout = d
	}
	if v, ok := lookup(EnvWall); ok && v != "" {
		cfg.Rules.WallBehavior = game.WallBehavior(v)
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Marshal renders settings as YAML with the database password masked.
func Marshal(cfg Settings) ([]byte, error) {
	cfg.Storage = cfg.Storage.Masked()
	return yaml.Marshal(cfg)
}
