package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/streakfit/internal/error_values"
)

const pinLength = 4

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("pin", func(fl validator.FieldLevel) bool {
			return IsValidPIN(fl.Field().String())
		})
	})
}

// IsValidPIN reports whether pin is exactly 4 ASCII digits.
func IsValidPIN(pin string) bool {
	if len(pin) != pinLength {
		return false
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return false
		}
	}
	return true
}

// validateStruct turns validator failures into the domain validation errors.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.New("validation unexpected error: " + err.Error())
	}
	for _, fieldErr := range validationErrors {
		switch fieldErr.Field() {
		case "PIN":
			return errorvalues.ErrInvalidPIN
		case "Name":
			if fieldErr.Tag() == "max" {
				return errorvalues.ErrNameTooLong
			}
			return errorvalues.ErrEmptyName
		}
	}
	return errors.Join(errorvalues.ErrValidation, err)
}
