package handlers

import (
	"github.com/bbroker-app/bbroker_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidations hooks domain value checks into gin's binding
// validator so obviously malformed payloads are rejected at bind time. The
// onboarding service still re-validates in its fixed field order.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("businesscategory", func(fl validator.FieldLevel) bool {
		return domain.IsValidCategory(fl.Field().String())
	})
	_ = v.RegisterValidation("profiletype", func(fl validator.FieldLevel) bool {
		return domain.ProfileType(fl.Field().String()).IsValid()
	})
}
