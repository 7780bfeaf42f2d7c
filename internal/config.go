package internal

import (
	"fmt"
	"pqdate/intl"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

type Config struct {
	LogLevel  string `env:"PQDATE_LOG_LEVEL,default=INFO"`
	Locale    string `env:"PQDATE_LOCALE,default=en-US" validate:"oneof=en-US es-ES"`
	DateStyle string `env:"PQDATE_DATE_STYLE,default=medium" validate:"oneof=short medium long"`
	TimeStyle string `env:"PQDATE_TIME_STYLE" validate:"omitempty,oneof=short medium long"`
	Colours   bool   `env:"PQDATE_COLOURS,default=true"`
}

// LoadConfig reads an optional .env file, then the environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return config, nil
}

// FormatOptions turns the display settings into intl options.
func (c Config) FormatOptions() intl.Options {
	return intl.Options{
		Locale:    intl.Locale(c.Locale),
		DateStyle: intl.Style(c.DateStyle),
		TimeStyle: intl.Style(c.TimeStyle),
	}
}
