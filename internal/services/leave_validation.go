// internal/services/leave_validation.go
package services

import (
	"strings"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

// ValidationErrors lists every field violation of a submission.
type ValidationErrors []utils.ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Field+": "+e.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Field returns the first violation reported against field.
func (v ValidationErrors) Field(field string) (utils.ValidationError, bool) {
	for _, e := range v {
		if e.Field == field {
			return e, true
		}
	}
	return utils.ValidationError{}, false
}

// ValidateLeaveForm normalizes the raw form and checks every rule, collecting
// all violations. The returned form is only meaningful when err is nil.
func ValidateLeaveForm(raw models.LeaveForm) (models.LeaveForm, error) {
	form := models.LeaveForm{
		LeaveType: models.LeaveType(strings.TrimSpace(string(raw.LeaveType))),
		StartDate: strings.TrimSpace(raw.StartDate),
		EndDate:   strings.TrimSpace(raw.EndDate),
		Reason:    strings.TrimSpace(raw.Reason),
	}

	if err := utils.ValidateStruct(form); err != nil {
		violations := utils.GetValidationErrors(err)
		if len(violations) == 0 {
			return form, err
		}
		return form, ValidationErrors(violations)
	}
	return form, nil
}
