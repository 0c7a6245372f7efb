package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// Validate checks the configuration and reports every invalid key at once
func Validate(cfg *Config) error {
	err := newValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("failed to validate configuration: %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		key := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("%s: failed %s=%s (got %q)", key, fe.Tag(), fe.Param(), fmt.Sprint(fe.Value())))
		} else {
			messages = append(messages, fmt.Sprintf("%s: failed %s", key, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
