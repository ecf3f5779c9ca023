// Package validate checks form payloads before they reach the API.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates a payload against its struct tags. The returned error is
// phrased for display in a form.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fieldLabel(fe.Field()))
	case "email":
		return fmt.Errorf("%s must be a valid email address", fieldLabel(fe.Field()))
	case "url":
		return fmt.Errorf("%s must be a valid URL", fieldLabel(fe.Field()))
	case "min":
		return fmt.Errorf("%s must be at least %s characters", fieldLabel(fe.Field()), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fieldLabel(fe.Field()))
	}
}

// fieldLabel turns a Go field name into a form label.
func fieldLabel(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			sb.WriteByte(' ')
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		if i == 0 {
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
