package validation

import (
	"fmt"

	"barangay-reservation/internal/domain/reservation"
	"barangay-reservation/internal/domain/resource"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var resourceCategory validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return resource.Category(s).IsValid()
}

var reservationStatus validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return reservation.Status(s).IsValid()
}

var paymentDecision validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := reservation.NewPaymentDecision(s)
	return err == nil
}

var domainTags = map[string]validator.Func{
	"resource_category":  resourceCategory,
	"reservation_status": reservationStatus,
	"payment_decision":   paymentDecision,
}

// Register adds the domain tags to gin's default validator. Safe to call more than once.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return registerTags(v, domainTags)
}

// MustRegister is Register for test setup and init paths.
func MustRegister() {
	if err := Register(); err != nil {
		panic(err)
	}
}

func registerTags(v *validator.Validate, tags map[string]validator.Func) error {
	for tag, fn := range tags {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register validation %q: %w", tag, err)
		}
	}
	return nil
}
