package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	rostererrors "github.com/alexisbeaulieu97/roster/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// DefaultPath returns ~/.roster/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".roster", "config.yaml"), nil
}

// Load resolves the configuration. An empty path reads the default location
// and falls back to defaults when no file exists there; an explicit path
// must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		return ParseConfig(path)
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		return nil, rostererrors.NewParseError("~/.roster/config.yaml", 0, err)
	}

	cfg, err := ParseConfig(defaultPath)
	if err != nil {
		var parseErr *rostererrors.ParseError
		if errors.As(err, &parseErr) && errors.Is(parseErr.Err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// ParseConfig loads a configuration file from disk, applies defaults,
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rostererrors.NewParseError(path, 0, err)
	}

	return Parse(path, data)
}

// Parse decodes YAML bytes. path is only used for error reporting.
func Parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, rostererrors.NewParseError(path, extractLine(err), err)
	}

	cfg.ApplyDefaults()

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
