package dto

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the request validator. Field errors are reported with their JSON names
// and the "percent" tag accepts decimal text between 0 and 100.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = validate.RegisterValidation("percent", validatePercent)
	return validate
}

func validatePercent(fl validator.FieldLevel) bool {
	value, err := strconv.ParseFloat(strings.TrimSpace(fl.Field().String()), 64)
	if err != nil {
		return false
	}
	return value >= 0 && value <= 100
}
