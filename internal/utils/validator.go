package utils

import (
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"gcs-food-backend/domain"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

// NewValidator reports fields by their json names and registers the
// enumerations used by the create forms.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("difficulty", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.Difficulties, fl.Field().String())
	})
	_ = v.RegisterValidation("itemcolor", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.ItemColors, fl.Field().String())
	})
	return v
}
