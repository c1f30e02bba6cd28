package request

import (
	"course_enrollment/internal/domain/entities"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const TagEnrollmentStatus = "enrollment_status"

// RegisterValidations installs the custom binding tags on gin's validator.
// It is safe to call more than once.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation(TagEnrollmentStatus, validateEnrollmentStatus)
}

func validateEnrollmentStatus(fl validator.FieldLevel) bool {
	_, err := entities.ParseEnrollmentStatus(fl.Field().String())
	return err == nil
}
