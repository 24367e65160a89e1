package http

import (
	"errors"
	"reflect"
	"strings"

	"wastepickup/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return &RequestValidator{validate: v}
}

// Validate reports every failing field at once: required fields as
// ValueIsRequiredError, anything else as ValueIsInvalidError.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	out := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			out = append(out, errs.NewValueIsRequiredError(fe.Field()))
			continue
		}
		out = append(out, errs.NewValueIsInvalidError(fe.Field()))
	}
	return errors.Join(out...)
}
