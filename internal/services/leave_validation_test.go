package services

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

func validationErrorsOf(t *testing.T, err error) ValidationErrors {
	t.Helper()
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
	return verrs
}

func TestValidateLeaveForm_Valid(t *testing.T) {
	raw := sickLeaveForm()
	raw.Reason = "  " + raw.Reason + "  "
	raw.LeaveType = " Sick Leave "

	form, err := ValidateLeaveForm(raw)
	require.NoError(t, err)
	assert.Equal(t, models.LeaveTypeSick, form.LeaveType)
	assert.Equal(t, "Flu, need rest for three days.", form.Reason)
}

func TestValidateLeaveForm_SameDayIsAllowed(t *testing.T) {
	form := sickLeaveForm()
	form.EndDate = form.StartDate
	_, err := ValidateLeaveForm(form)
	assert.NoError(t, err)
}

func TestValidateLeaveForm_CollectsAllViolations(t *testing.T) {
	_, err := ValidateLeaveForm(models.LeaveForm{})
	got := validationErrorsOf(t, err)

	want := ValidationErrors{
		{Field: "leaveType", Tag: "leave_type", Message: "leave type required"},
		{Field: "startDate", Tag: "required", Message: "date is required"},
		{Field: "endDate", Tag: "required", Message: "date is required"},
		{Field: "reason", Tag: "required", Message: "reason is required"},
	}
	byField := cmpopts.SortSlices(func(a, b utils.ValidationError) bool { return a.Field < b.Field })
	if diff := cmp.Diff(want, got, byField); diff != "" {
		t.Errorf("violations mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateLeaveForm_Rules(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(f *models.LeaveForm)
		field string
		want  utils.ValidationError
	}{
		{
			name:  "unknown leave type",
			edit:  func(f *models.LeaveForm) { f.LeaveType = "Vacation" },
			field: "leaveType",
			want:  utils.ValidationError{Field: "leaveType", Tag: "leave_type", Message: "leave type required"},
		},
		{
			name:  "unparseable start date",
			edit:  func(f *models.LeaveForm) { f.StartDate = "03/01/2025" },
			field: "startDate",
			want:  utils.ValidationError{Field: "startDate", Tag: "iso_date", Message: "date must be in YYYY-MM-DD format"},
		},
		{
			name:  "impossible calendar date",
			edit:  func(f *models.LeaveForm) { f.EndDate = "2025-02-30" },
			field: "endDate",
			want:  utils.ValidationError{Field: "endDate", Tag: "iso_date", Message: "date must be in YYYY-MM-DD format"},
		},
		{
			name:  "end before start",
			edit:  func(f *models.LeaveForm) { f.EndDate = "2025-02-28" },
			field: "endDate",
			want:  utils.ValidationError{Field: "endDate", Tag: "date_order", Message: "end date cannot be before start date"},
		},
		{
			name:  "reason too short",
			edit:  func(f *models.LeaveForm) { f.Reason = "sick" },
			field: "reason",
			want:  utils.ValidationError{Field: "reason", Tag: "min", Message: "reason must be at least 10 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := sickLeaveForm()
			tt.edit(&form)

			_, err := ValidateLeaveForm(form)
			verrs := validationErrorsOf(t, err)
			require.Len(t, verrs, 1)
			got, ok := verrs.Field(tt.field)
			require.True(t, ok)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("violation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateLeaveForm_ReasonCountsCharactersNotBytes(t *testing.T) {
	form := sickLeaveForm()
	form.Reason = "बुखार है आज" // 11 runes, many more bytes
	_, err := ValidateLeaveForm(form)
	assert.NoError(t, err)
}

func TestValidationErrors_Error(t *testing.T) {
	verrs := ValidationErrors{{Field: "endDate", Message: "end date cannot be before start date"}}
	assert.Equal(t, "validation failed: endDate: end date cannot be before start date", verrs.Error())
}
