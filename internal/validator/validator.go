// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateNotBlank rejects strings that are empty or whitespace only.
// The min/max length tags count raw bytes, so a name of "   " would
// otherwise pass.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Register installs the custom validations into Gin's binding engine.
// Call once at startup before handling requests.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", validateNotBlank)
	}
}
