package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Aman-s12345/go-routegen/internal/synth"
	"github.com/go-playground/validator/v10"
)

const namespaceSeparators = `\/.`

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("toml"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	if err := v.RegisterValidation("root_namespace", validateRootNamespace); err != nil {
		panic(fmt.Sprintf("failed to register root_namespace validator: %v", err))
	}
	return v
}

// validateRootNamespace rejects roots that are blank once separators are
// trimmed, or that contain whitespace.
func validateRootNamespace(fl validator.FieldLevel) bool {
	root := fl.Field().String()
	if strings.ContainsAny(root, " \t\r\n") {
		return false
	}
	return strings.Trim(root, namespaceSeparators) != ""
}

func (c *Config) validate() error {
	var problems []string

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %v", synth.ErrConfiguration, err)
		}
		for _, fe := range fieldErrs {
			problems = append(problems, formatFieldError(fe))
		}
	}
	if c.Appends() && c.OutputPath == DefaultOutputPath {
		problems = append(problems, "append requires an output_path file")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", synth.ErrConfiguration, strings.Join(problems, "; "))
	}
	return nil
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "unique":
		return fmt.Sprintf("%s must not contain duplicates", fe.Field())
	case "root_namespace":
		return fmt.Sprintf("%s %q is malformed", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
