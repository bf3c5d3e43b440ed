package config

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/yosupo06/fmtbuf/truncbuf"
)

type Config struct {
	Capacity int    `toml:"capacity" validate:"gte=0,lte=1048576"`
	Marker   string `toml:"marker" validate:"utf8"`
}

var DEFAULT_CONFIG = Config{
	Capacity: 30,
	Marker:   truncbuf.STRIPPED_MESSAGE,
}

var validate = validator.New()

func init() {
	validate.RegisterValidation("utf8", utf8Validator)
}

func utf8Validator(fl validator.FieldLevel) bool {
	return utf8.ValidString(fl.Field().String())
}

// Load reads the config file at path (if not empty) over DEFAULT_CONFIG and
// then applies FMTBUF_CAPACITY and FMTBUF_MARKER.
func Load(path string) (Config, error) {
	config := DEFAULT_CONFIG
	if path != "" {
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return Config{}, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}
	if err := applyEnv(&config); err != nil {
		return Config{}, err
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func applyEnv(config *Config) error {
	if capacity := os.Getenv("FMTBUF_CAPACITY"); capacity != "" {
		n, err := strconv.Atoi(capacity)
		if err != nil {
			return fmt.Errorf("invalid FMTBUF_CAPACITY: %w", err)
		}
		config.Capacity = n
	}
	if marker, ok := os.LookupEnv("FMTBUF_MARKER"); ok {
		config.Marker = marker
	}
	return nil
}

func (c Config) Validate() error {
	return validate.Struct(&c)
}
