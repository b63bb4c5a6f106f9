package utils

import (
	"errors"
	"reflect"
	"strings"

	"github.com/alimikegami/e-bazaar/pkg/errs"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateStruct runs the `validate` tags of s. Rule violations come back as
// *errs.ValidationError; a malformed target is reported as a server fault.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	fields := make([]errs.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, errs.FieldError{
			Field: fe.Field(),
			Tag:   fe.Tag(),
		})
	}

	return &errs.ValidationError{Fields: fields}
}

// CustomValidator plugs ValidateStruct into echo.Context.Validate.
type CustomValidator struct{}

func (cv *CustomValidator) Validate(i interface{}) error {
	return ValidateStruct(i)
}
