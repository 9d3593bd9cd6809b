package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			v := fl.Field().Float()
			return !math.IsNaN(v) && !math.IsInf(v, 0)
		})
	})
}

// validateStruct runs struct tags and reports failures as ErrInvalidInput
// listing every failed field.
func validateStruct(s any) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields = append(fields, fmt.Sprintf("%s failed on %s", fieldErr.Namespace(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %s", errorvalues.ErrInvalidInput, strings.Join(fields, "; "))
	}
	return fmt.Errorf("%w: %s", errorvalues.ErrInvalidInput, err.Error())
}
