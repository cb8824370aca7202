// internal/utils/validator.go
package utils

import (
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
)

// DateLayout is the calendar date format used by leave forms.
const DateLayout = "2006-01-02"

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("strong_password", validateStrongPassword)
	validate.RegisterValidation("leave_type", validateLeaveType)
	validate.RegisterValidation("iso_date", validateISODate)
	validate.RegisterValidation("role", validateRole)
	validate.RegisterStructValidation(validateLeaveDateOrder, models.LeaveForm{})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonFieldName reports fields under their JSON names so clients can map
// violations back onto form inputs.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasNumber && hasSpecial
}

func validateLeaveType(fl validator.FieldLevel) bool {
	return models.LeaveType(fl.Field().String()).Valid()
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

func validateRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).Valid()
}

// validateLeaveDateOrder attaches ordering violations to endDate. Unparseable
// dates are already reported by iso_date.
func validateLeaveDateOrder(sl validator.StructLevel) {
	form := sl.Current().Interface().(models.LeaveForm)

	start, err := time.Parse(DateLayout, form.StartDate)
	if err != nil {
		return
	}
	end, err := time.Parse(DateLayout, form.EndDate)
	if err != nil {
		return
	}
	if end.Before(start) {
		sl.ReportError(form.EndDate, "endDate", "EndDate", "date_order", "")
	}
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   e.Field(),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		if e.Field() == "startDate" || e.Field() == "endDate" {
			return "date is required"
		}
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "strong_password":
		return "Password must contain at least 8 characters with uppercase, lowercase, number, and special character"
	case "leave_type":
		return "leave type required"
	case "iso_date":
		return "date must be in YYYY-MM-DD format"
	case "date_order":
		return "end date cannot be before start date"
	case "role":
		return "role must be one of student, faculty, admin"
	default:
		return e.Field() + " is invalid"
	}
}
