package form

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file-friendly subset of form options.
//
//	typing_window: 1500ms
//	typing_scope: field
type Config struct {
	TypingWindow time.Duration `yaml:"typing_window"`
	TypingScope  TypingScope   `yaml:"typing_scope"`
}

// DefaultConfig returns the settings used when no options are supplied.
func DefaultConfig() Config {
	return Config{
		TypingWindow: DefaultTypingWindow,
		TypingScope:  TypingPerField,
	}
}

// LoadConfig decodes a YAML document on top of DefaultConfig. Unknown keys
// are rejected; an empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("form: decode config: %w", err)
	}
	if cfg.TypingWindow <= 0 {
		return Config{}, fmt.Errorf("form: typing_window must be positive, got %s", cfg.TypingWindow)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("form: open config: %w", err)
	}
	defer file.Close()
	return LoadConfig(file)
}

// Options converts the config into constructor options.
func (c Config) Options() []Option {
	return []Option{
		WithTypingWindow(c.TypingWindow),
		WithTypingScope(c.TypingScope),
	}
}
