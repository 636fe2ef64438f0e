package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func NewValidator(config *viper.Viper) *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("zipdigits", func(fl validator.FieldLevel) bool {
		return allDigits(fl.Field().String(), 5)
	})
	_ = validate.RegisterValidation("phonedigits", func(fl validator.FieldLevel) bool {
		return allDigits(fl.Field().String(), 10)
	})

	return validate
}

func allDigits(value string, length int) bool {
	if len(value) != length {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
