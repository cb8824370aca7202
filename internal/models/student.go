// internal/models/student.go
package models

import "time"

type StudentProfile struct {
	ID          string    `json:"id" gorm:"type:varchar(128);primaryKey" firestore:"-"`
	Name        string    `json:"name" gorm:"size:255;not null" firestore:"name"`
	Email       string    `json:"email" gorm:"size:255" firestore:"email"`
	RollNumber  string    `json:"rollNumber,omitempty" gorm:"size:50" firestore:"rollNumber,omitempty"`
	Department  string    `json:"department,omitempty" gorm:"size:100" firestore:"department,omitempty"`
	ParentEmail string    `json:"parentEmail" gorm:"size:255" firestore:"parentEmail"`
	UpdatedAt   time.Time `json:"updatedAt" firestore:"updatedAt"`
}
