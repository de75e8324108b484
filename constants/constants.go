package constants

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultAddr = ":8080"

func GetConfigPath() string {
	path := os.Getenv("CHORDPARSER_CONFIG")
	if path != "" {
		return path
	}
	return "./chordparser.yaml"
}

// Config is read from a YAML file. Environment variables override the file
// and the file overrides the defaults.
type Config struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	UseFlats       bool     `yaml:"use_flats"`
	LogLevel       string   `yaml:"log_level"`
}

func Defaults() Config {
	return Config{
		Addr:           DefaultAddr,
		AllowedOrigins: []string{"*"},
		LogLevel:       "info",
	}
}

// LoadConfig reads the file at path. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := Defaults()
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if addr := os.Getenv("CHORDPARSER_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if origins := os.Getenv("CHORDPARSER_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	if flats, err := strconv.ParseBool(os.Getenv("CHORDPARSER_USE_FLATS")); err == nil {
		cfg.UseFlats = flats
	}
	if level := os.Getenv("CHORDPARSER_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
}
