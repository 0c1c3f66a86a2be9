package dto

import (
	"github.com/finlearnhq/finlearn_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs domain-aware binding tags on gin's
// validator engine. Call once at startup before routes are served.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("contentlevel", func(fl validator.FieldLevel) bool {
		switch domain.ContentLevel(fl.Field().String()) {
		case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced:
			return true
		}
		return false
	})
}
