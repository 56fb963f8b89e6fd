package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no explicit
// config path is given.
const EnvConfigPath = "YATABL_CONFIG"

// ErrNoConfigPath indicates neither a path nor YATABL_CONFIG was provided.
var ErrNoConfigPath = errors.New(EnvConfigPath + " environment variable not set; pass --config or set " + EnvConfigPath)

// ResolvePath returns explicit when non-empty, otherwise the value of
// YATABL_CONFIG. The library never assumes a default location.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	return "", ErrNoConfigPath
}

// Load reads and parses a yatabl scheme file.
func Load(path string) (FileConfig, error) {
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath) // #nosec G304 - scheme file path is provided by the operator
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to parse config file %s: %w", cleanPath, err)
	}
	return cfg, nil
}

// Parse decodes a scheme file. Unknown keys are rejected so that a typo such
// as "requried" does not silently disable a check.
func Parse(data []byte) (FileConfig, error) {
	var cfg FileConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, errors.New("config is empty")
		}
		return cfg, err
	}
	return cfg, nil
}
