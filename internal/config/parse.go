package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dsh2dsh/actionlog"
	"github.com/dsh2dsh/actionlog/internal/env"
)

var configFileDefaultLocations = [...]string{
	".actionlog.yml",
	"/etc/actionlog/actionlog.yml",
}

// Parse loads the config from path, or from the first default location when
// path is empty. Without any config file every field keeps its default, a
// workflow step must not fail just because nobody wrote a config.
func Parse(path string) (*Config, error) {
	if path == "" {
		for _, l := range configFileDefaultLocations {
			stat, statErr := os.Stat(l)
			if statErr != nil {
				continue
			}
			if !stat.Mode().IsRegular() {
				return nil, fmt.Errorf(
					"file at default location is not a regular file: %s", l)
			}
			path = l
			break
		}
		if path == "" {
			return ParseBytes("", nil)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return ParseBytes(path, b)
}

func ParseBytes(path string, b []byte) (*Config, error) {
	c := New()
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("init config with defaults: %w", err)
	} else if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	if err := c.lateInit(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	} else if err := Validator().Struct(c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	} else if err := env.Parse(); err != nil {
		return nil, err
	}
	c.path = path
	return c, nil
}

func Validator() *validator.Validate {
	if validate == nil {
		validate = newValidator()
	}
	return validate
}

var validate *validator.Validate

func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		// skip if tag key says it should be ignored
		if name == "-" {
			return ""
		}
		return name
	})

	err := validate.RegisterValidation("loglevel",
		func(fl validator.FieldLevel) bool {
			_, err := actionlog.ParseLevel(fl.Field().String())
			return err == nil
		})
	if err != nil {
		panic(err)
	}
	return validate
}
