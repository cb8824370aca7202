// internal/models/leave.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeaveApplication is a student's request for approved absence.
// StudentName and ParentEmail are snapshots of the profile taken at
// submission time and are never re-synced.
type LeaveApplication struct {
	ID           string      `json:"id" gorm:"type:varchar(36);primaryKey" firestore:"-"`
	StudentID    string      `json:"studentId" gorm:"size:128;not null;index:idx_leave_student_applied,priority:1" firestore:"studentId"`
	StudentName  string      `json:"studentName" gorm:"size:255;not null" firestore:"studentName"`
	ParentEmail  string      `json:"parentEmail" gorm:"size:255" firestore:"parentEmail"`
	LeaveType    LeaveType   `json:"leaveType" gorm:"type:varchar(30);not null" firestore:"leaveType"`
	StartDate    string      `json:"startDate" gorm:"size:10;not null" firestore:"startDate"` // YYYY-MM-DD
	EndDate      string      `json:"endDate" gorm:"size:10;not null" firestore:"endDate"`     // YYYY-MM-DD
	Reason       string      `json:"reason" gorm:"type:text;not null" firestore:"reason"`
	Status       LeaveStatus `json:"status" gorm:"type:varchar(20);not null;default:'Pending';index" firestore:"status"`
	AppliedAt    time.Time   `json:"appliedAt" gorm:"not null;index:idx_leave_student_applied,priority:2,sort:desc" firestore:"appliedAt,serverTimestamp"`
	ReviewedBy   string      `json:"reviewedBy,omitempty" gorm:"size:128" firestore:"reviewedBy,omitempty"`
	ReviewedAt   *time.Time  `json:"reviewedAt,omitempty" firestore:"reviewedAt,omitempty"`
	AdminRemarks string      `json:"adminRemarks,omitempty" gorm:"type:text" firestore:"adminRemarks,omitempty"`
}

func (a *LeaveApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// LeaveReview is the only mutation a stored application ever receives.
type LeaveReview struct {
	Status     LeaveStatus
	ReviewedBy string
	ReviewedAt time.Time
	Remarks    string
}

// LeaveFilter narrows administrative listings. Zero value means everything.
type LeaveFilter struct {
	Status LeaveStatus
	Limit  int
}

// LeaveForm is the raw submission from the dashboard. Dates are YYYY-MM-DD.
type LeaveForm struct {
	LeaveType LeaveType `json:"leaveType" validate:"leave_type"`
	StartDate string    `json:"startDate" validate:"required,iso_date"`
	EndDate   string    `json:"endDate" validate:"required,iso_date"`
	Reason    string    `json:"reason" validate:"required,min=10,max=500"`
}
