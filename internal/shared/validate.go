package shared

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ISODate is the wire layout of calendar dates.
const ISODate = "2006-01-02"

// Validate is the validator shared by every form draft.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(ISODate, strings.TrimSpace(fl.Field().String()))
		return err == nil
	})
	return v
}

// FieldError names the first rule a struct broke.
type FieldError struct {
	Field string
	Tag   string
}

// FirstInvalid validates v and returns its first failing field in
// declaration order, or nil when v is valid.
func FirstInvalid(v any) (*FieldError, error) {
	err := Validate.Struct(v)
	if err == nil {
		return nil, nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, err
	}
	if len(fieldErrs) == 0 {
		return nil, nil
	}
	return &FieldError{Field: fieldErrs[0].StructField(), Tag: fieldErrs[0].Tag()}, nil
}

// DecimalText normalises a typed amount: surrounding blanks are dropped and a
// decimal comma becomes a point.
func DecimalText(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.Count(raw, ",") == 1 && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	return raw
}
