// internal/models/account.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Account is a locally authenticated dashboard user.
type Account struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey" firestore:"id"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null" firestore:"email"`
	PasswordHash string    `json:"-" gorm:"size:255;not null" firestore:"passwordHash"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'student'" firestore:"role"`
	StudentID    string    `json:"studentId,omitempty" gorm:"size:128" firestore:"studentId,omitempty"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a *Account) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = string(hashedPassword)
	return nil
}

func (a *Account) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
