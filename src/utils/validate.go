package utils

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// emailPattern is deliberately loose: local part, @, domain with a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a field name (json tag) to a user-facing message.
type FieldErrors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("leademail", func(fl validator.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	return v
}

// IsEmail applies the site-wide email pattern.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateStruct runs the struct's validate tags and reports every failing
// field at once. It returns nil when the struct is valid.
func ValidateStruct(s interface{}) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return FieldErrors{"_": err.Error()}
	}
	out := make(FieldErrors, len(ve))
	for _, fe := range ve {
		key := fe.Field()
		if _, seen := out[key]; seen {
			continue
		}
		out[key] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "leademail":
		return "Enter a valid email address"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}
