// internal/models/common.go
package models

// Enums
type LeaveType string

const (
	LeaveTypeSick      LeaveType = "Sick Leave"
	LeaveTypeCasual    LeaveType = "Casual Leave"
	LeaveTypeEmergency LeaveType = "Emergency Leave"
	LeaveTypeOther     LeaveType = "Other"
)

var LeaveTypes = []LeaveType{LeaveTypeSick, LeaveTypeCasual, LeaveTypeEmergency, LeaveTypeOther}

func (t LeaveType) Valid() bool {
	for _, lt := range LeaveTypes {
		if t == lt {
			return true
		}
	}
	return false
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

func (s LeaveStatus) Valid() bool {
	return s == LeaveStatusPending || s == LeaveStatusApproved || s == LeaveStatusRejected
}

type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleFaculty || r == RoleAdmin
}
