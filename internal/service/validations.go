package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	"github.com/limbo/lectio/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("reading_mode", func(fl validator.FieldLevel) bool {
			switch entity.ReadingMode(fl.Field().String()) {
			case entity.ReadingModePath, entity.ReadingModeFree:
				return true
			}
			return false
		})
		validate.RegisterValidation("xp_reason", func(fl validator.FieldLevel) bool {
			switch entity.XPReason(fl.Field().String()) {
			case entity.XPReasonChapterCompleted, entity.XPReasonReadingTime, entity.XPReasonManual:
				return true
			}
			return false
		})
	})
}

// validateRequest joins every failed field into one error matching ErrValidation.
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Join(errorvalues.ErrValidation, err)
	}
	errs := make([]error, 0, len(fieldErrs)+1)
	errs = append(errs, errorvalues.ErrValidation)
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("field %s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return errors.Join(errs...)
}

func validationError(msg string) error {
	return errors.Join(errorvalues.ErrValidation, errors.New(msg))
}
