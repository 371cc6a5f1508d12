package service

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

var weekdays = map[string]struct{}{
	"monday":    {},
	"tuesday":   {},
	"wednesday": {},
	"thursday":  {},
	"friday":    {},
	"saturday":  {},
	"sunday":    {},
}

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
			_, ok := weekdays[strings.ToLower(fl.Field().String())]
			return ok
		})
		// 24h clock, always two digit hour and minute
		validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) != 5 {
				return false
			}
			_, err := time.Parse("15:04", value)
			return err == nil
		})
	})
}

// validateStruct joins every field error into one, wrapped under ErrValidation.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
