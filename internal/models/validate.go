package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so error messages match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a payload against its struct tags.
func Validate(payload any) error {
	return validate.Struct(payload)
}

// Describe flattens validator errors into a single "field: rule" list.
func Describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fe.Field()+": "+fe.Tag()+"="+fe.Param())
			continue
		}
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	return strings.Join(parts, ", ")
}
