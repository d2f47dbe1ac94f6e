// Package config loads the bindump YAML configuration. Command-line flags
// are applied on top of the loaded values by the CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/binkit/pkg/hashes"
	"github.com/joshuapare/binkit/pkg/types"
)

// Config is the on-disk configuration.
type Config struct {
	// HashDir holds dictionaries under their conventional names; absent
	// files are skipped.
	HashDir string `yaml:"hash_dir"`
	// Hashes names individual dictionary files, loaded after HashDir. These
	// must exist.
	Hashes hashes.Files `yaml:"hashes"`

	MaxDepth    int    `yaml:"max_depth" validate:"gte=0,lte=128"`
	LenientText bool   `yaml:"lenient_text"`
	Workers     int    `yaml:"workers" validate:"gte=0,lte=1024"`
	Format      string `yaml:"format" validate:"omitempty,oneof=text json"`
	Color       string `yaml:"color" validate:"omitempty,oneof=auto always never"`

	Log LogConfig `yaml:"log"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
	Dir   string `yaml:"dir"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MaxDepth: types.DepthLimit,
		Format:   "text",
		Color:    "auto",
		Log:      LogConfig{Level: "info"},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report yaml keys rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads the YAML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s (got %v)", fieldPath(fe), constraint(fe), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, rest, ok := strings.Cut(fe.Namespace(), ".")
	if !ok {
		return fe.Field()
	}
	return rest
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// DecodeOptions returns the decode settings.
func (c *Config) DecodeOptions() types.DecodeOptions {
	opts := types.DefaultDecodeOptions()
	if c.MaxDepth > 0 {
		opts.MaxDepth = c.MaxDepth
	}
	opts.LenientText = c.LenientText
	return opts
}

// HasDictionaries reports whether any dictionary source is configured.
func (c *Config) HasDictionaries() bool {
	return c.HashDir != "" || c.Hashes != hashes.Files{}
}

// LoadResolver loads the configured dictionaries. It returns nil when none
// are configured.
func (c *Config) LoadResolver() (*hashes.Resolver, error) {
	if !c.HasDictionaries() {
		return nil, nil
	}
	r := hashes.NewResolver()
	if c.HashDir != "" {
		if err := r.Load(hashes.DirFiles(c.HashDir), true); err != nil {
			return nil, err
		}
	}
	if err := r.Load(c.Hashes, false); err != nil {
		return nil, err
	}
	return r, nil
}

// LogLevel maps Log.Level to a slog level, defaulting to Info.
func (c *Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
