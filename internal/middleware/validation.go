package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/medcore/hospital-api/internal/model"
)

// RegisterValidators installs custom validators on the binding engine.
// The signuprole tag restricts self-registration to the roles that may
// do it; admin accounts are provisioned out of band.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("signuprole", func(fl validator.FieldLevel) bool {
		switch model.Role(fl.Field().String()) {
		case model.RolePatient, model.RoleDoctor:
			return true
		}
		return false
	})
}
