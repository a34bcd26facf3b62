package http

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// iataPattern accepts a 3-letter airport code in any case.
var iataPattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// RequestValidator checks request DTOs against their `validate` tags and
// reports failures with English messages keyed by JSON field path.
// It satisfies echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// NewRequestValidator builds a validator with English translations and the custom "iata" rule.
func NewRequestValidator() (*RequestValidator, error) {
	v := validator.New()

	uni := ut.New(en.New(), en.New())
	trans, _ := uni.GetTranslator("en")

	if err := enTranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, err
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	err := v.RegisterValidation("iata", func(fl validator.FieldLevel) bool {
		return iataPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	if err != nil {
		return nil, err
	}

	err = v.RegisterTranslation("iata", trans,
		func(t ut.Translator) error {
			return t.Add("iata", "{0} must be a 3-letter IATA airport code", true)
		},
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T("iata", fe.Field())
			return msg
		})
	if err != nil {
		return nil, err
	}

	return &RequestValidator{validate: v, trans: trans}, nil
}

// MustNewRequestValidator is NewRequestValidator that panics on error.
func MustNewRequestValidator() *RequestValidator {
	v, err := NewRequestValidator()
	if err != nil {
		panic("http: building request validator: " + err.Error())
	}
	return v
}

// Validate implements echo.Validator. Field failures are returned as *ValidationErrors.
func (v *RequestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := &ValidationErrors{}
	for _, fe := range fieldErrs {
		errs.Add(fieldPath(fe.Namespace()), fe.Translate(v.trans))
	}
	return errs
}

// fieldPath drops the root struct name from a validator namespace,
// e.g. "SearchMeetingRequest.meeting.startDate" becomes "meeting.startDate".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
