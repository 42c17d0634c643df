package req

import (
	"errors"
	"reflect"
	"strings"

	v10 "github.com/go-playground/validator/v10"

	"github.com/urbanfix/urbanfix"
)

type validator struct {
	valid *v10.Validate
}

// newValidator constructs a validator wired with the "enum" rule
// and field names sourced from "json" or "schema" struct tags,
// so a ValidationError reports the name the client actually sent.
func newValidator() validator {
	v := v10.New()
	v.RegisterValidation("enum", validateEnumerable)
	v.RegisterTagNameFunc(tagName)

	return validator{v}
}

// validate checks the fields on structPtr against their "validate" struct tags,
// translating every failure into a ValidationError and
// returning the whole set as ValidationErrors.
func (v validator) validate(structPtr any) error {
	err := v.valid.Struct(structPtr)
	if err == nil {
		return nil
	}

	var errs v10.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	var out ValidationErrors
	for _, ve := range errs {
		out = append(out, ValidationError{
			Field: fieldName(ve),
			Got:   ve.Value(),
			Rule:  ruleName(ve),
		})
	}

	return out
}

// tagName picks the client-facing name of a struct field,
// preferring the "json" tag and falling back to "schema".
func tagName(field reflect.StructField) string {
	for _, tag := range []string{"json", "schema"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	return ""
}

// fieldName strips the parent struct from the failed field's namespace.
func fieldName(ve v10.FieldError) string {
	field := ve.Namespace()
	if _, rest, found := strings.Cut(field, "."); found {
		return rest
	}

	return field
}

// ruleName renders the failed rule, its parameter and the field's Go type.
func ruleName(ve v10.FieldError) string {
	rule := ve.Tag()
	if ve.Param() != "" {
		rule += "=" + ve.Param()
	}

	return rule + "; " + ve.Type().String()
}

// validateEnumerable asserts the field - or every element of a slice field -
// is an [urbanfix.Enumerable] holding one of its closed set of values.
func validateEnumerable(fl v10.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return validEnum(field)
	}

	if field.Len() == 0 {
		return false
	}

	for i := 0; i < field.Len(); i++ {
		if !validEnum(field.Index(i)) {
			return false
		}
	}

	return true
}

func validEnum(item reflect.Value) bool {
	enum, ok := item.Interface().(urbanfix.Enumerable)
	return ok && enum.Valid() == nil
}
