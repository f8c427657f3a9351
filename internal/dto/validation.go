package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var accountCodeRegex = regexp.MustCompile(`^[1-9]\d{3}-\d{3}$`)

// RegisterCustomValidations installs the accountcode binding rule so request
// binding rejects malformed hierarchical codes before they reach the service.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accountcode", func(fl validator.FieldLevel) bool {
			return accountCodeRegex.MatchString(fl.Field().String())
		})
	}
}
