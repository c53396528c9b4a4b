// Package validate wraps go-playground/validator with the field naming and
// messages used by the admin API and the frontmatter checks.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	slugPattern     = regexp.MustCompile(`^[a-z0-9-]+$`)
	markdownPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+\.md$`)
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	// report fields by their json name, which is what clients send
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	_ = val.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
	_ = val.RegisterValidation("mdfile", func(fl validator.FieldLevel) bool {
		return markdownPattern.MatchString(fl.Field().String())
	})

	return val
}

// FieldErrors maps a field name to its human readable problems.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Merge copies every message of other into fe.
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, msgs := range other {
		fe[field] = append(fe[field], msgs...)
	}
}

// Struct validates s and returns nil when it is valid.
func Struct(s any) FieldErrors {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"_": {err.Error()}}
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		out.Add(fe.Field(), message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "url":
		return field + " must be a valid URL"
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "slug":
		return field + " must be lowercase alphanumeric or hyphens"
	case "mdfile":
		return field + " must be a valid MD filename"
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
