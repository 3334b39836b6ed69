package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v *validator.Validate

func init() {
	v = validator.New()

	v.RegisterValidation("email_shape", validateEmailShape)
}

// EmailShape reports whether s has a non-empty local part, a single "@" and a
// non-empty domain containing at least one ".".
func EmailShape(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.Contains(domain, "@") {
		return false
	}
	return strings.Contains(domain, ".")
}

func validateEmailShape(fl validator.FieldLevel) bool {
	return EmailShape(fl.Field().String())
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// Struct validates s against its `validate` tags. A nil result means s is valid.
func Struct(s any) []FieldError {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: err.Error()}}
	}

	var errs []FieldError
	for _, err := range verrs {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email_shape":
			message = fmt.Sprintf("%s must look like local@domain.tld", field)
		case "oneof":
			message = fmt.Sprintf("%s must be one of [%s]", field, param)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, param)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		errs = append(errs, FieldError{
			Field:   strings.ToLower(field[:1]) + field[1:],
			Message: message,
		})
	}
	return errs
}

// Join folds field errors into a single error, or nil when there are none.
func Join(errs []FieldError) error {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
