package utils

import (
	"regexp"

	"medibridge-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone", validatePhoneNumber)
	validate.RegisterValidation("payment_type", validatePaymentType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RolePatient, constvars.RoleDoctor, constvars.RoleDiagnostics, constvars.RoleShop:
		return true
	}
	return false
}

func validatePassword(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) >= 8
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexPhoneNumber).MatchString(fl.Field().String())
}

func validatePaymentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.PaymentTypeAppointment, constvars.PaymentTypeDiagnosticTest, constvars.PaymentTypeMedicineOrder:
		return true
	}
	return false
}
