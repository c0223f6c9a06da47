package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/piresc/docshare/internal/utils"
)

var alphanumUnderscore = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// Validator adapts go-playground/validator to echo.Validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator registers the custom tags used by request payloads
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("alphanumunderscore", func(fl validator.FieldLevel) bool {
		return alphanumUnderscore.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("drivelink", func(fl validator.FieldLevel) bool {
		return utils.IsDriveLink(strings.TrimSpace(fl.Field().String()))
	})
	return &Validator{validate: v}
}

// Validate implements echo.Validator
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// ValidationDetails turns a validation error into per-field messages
func ValidationDetails(err error) []utils.FieldError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []utils.FieldError{{Message: err.Error()}}
	}

	details := make([]utils.FieldError, 0, len(errs))
	for _, fe := range errs {
		details = append(details, utils.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only numbers", fe.Field())
	case "alphanumunderscore":
		return fmt.Sprintf("%s can only contain letters, numbers, and underscores", fe.Field())
	case "drivelink":
		return "Must be a valid Google Drive or Google Docs URL"
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
