package secadvisor

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// paramTag holds the caller-facing parameter name reported in
// MissingParametersError.
const paramTag = "param"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get(paramTag); name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	return v
}

// ValidateRequired checks the fields of an options struct tagged
// `validate:"required"`. A field is missing only when it is nil, so "", 0 and
// false count as supplied. A nil pointer is validated as an empty struct.
//
// The returned *MissingParametersError lists the missing names in field
// declaration order.
func ValidateRequired(params any) error {
	if params == nil {
		return nil
	}

	rv := reflect.ValueOf(params)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		params = reflect.New(rv.Type().Elem()).Interface()
	}

	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return &MissingParametersError{Params: missing}
}
