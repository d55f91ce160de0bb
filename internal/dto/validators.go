package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations installs request-level validation rules on gin's
// validator engine. Called once at startup.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// dateparam accepts calendar dates formatted as YYYY-MM-DD.
	_ = v.RegisterValidation("dateparam", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(dateParamLayout, fl.Field().String())
		return err == nil
	})
}
