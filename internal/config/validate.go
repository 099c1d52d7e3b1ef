package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	yamlcheck "github.com/ariel-frischer/chlog/internal/yaml"
)

// FieldError reports one configuration key holding an unusable value.
type FieldError struct {
	// Key is the configuration key as written in files, e.g. "host_url".
	Key     string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Key, e.Message)
}

// checkFileSyntax rejects a config file that is not a single YAML document.
// Empty files are accepted and leave the lower layers in effect.
func checkFileSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	stats, err := yamlcheck.ValidateBytes(data, path)
	if err != nil {
		return err
	}
	if stats.Documents > 1 {
		return &yamlcheck.ValidationError{
			File:    path,
			Message: fmt.Sprintf("expected one YAML document, found %d", stats.Documents),
		}
	}
	return nil
}

var validate = newValidator()

// newValidator reports fields by their koanf key rather than the Go field name.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// ValidateConfigValues checks the merged configuration against its struct tags.
// Every bad key is reported, joined into one error.
func ValidateConfigValues(cfg *Configuration) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, &FieldError{Key: fe.Field(), Message: describe(fe)})
	}
	return stderrors.Join(errs...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return fmt.Sprintf("must be an absolute URL, got %q", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of %s, got %q", strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	default:
		return "fails " + fe.Tag()
	}
}
