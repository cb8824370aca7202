// Package store is the persistence boundary for student profiles, accounts
// and leave applications. Two backends implement Store: a gorm-backed SQL
// store and a Firestore store using privileged Admin credentials. The backend
// is chosen once at startup by configuration.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrPermissionDenied = errors.New("permission denied by the data store")
	ErrIndexMissing     = errors.New("the data store is missing an index required by this query")
)

// IndexMissingError keeps the backend message, which usually carries the
// link needed to create the index.
type IndexMissingError struct {
	Query  string
	Detail string
}

func (e *IndexMissingError) Error() string {
	return fmt.Sprintf("query %q requires a composite index that does not exist: %s", e.Query, e.Detail)
}

func (e *IndexMissingError) Unwrap() error { return ErrIndexMissing }

type Store interface {
	GetStudentProfile(ctx context.Context, studentID string) (*models.StudentProfile, error)
	SaveStudentProfile(ctx context.Context, profile *models.StudentProfile) error

	// CreateLeaveApplication assigns the id and appliedAt and returns the id.
	CreateLeaveApplication(ctx context.Context, app *models.LeaveApplication) (string, error)
	GetLeaveApplication(ctx context.Context, id string) (*models.LeaveApplication, error)
	// ListLeaveApplicationsByStudent returns newest first.
	ListLeaveApplicationsByStudent(ctx context.Context, studentID string) ([]models.LeaveApplication, error)
	ListLeaveApplications(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveApplication, error)
	ReviewLeaveApplication(ctx context.Context, id string, review models.LeaveReview) error

	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	CreateAccount(ctx context.Context, account *models.Account) error

	Close() error
}

const defaultListLimit = 200

func listLimit(filter models.LeaveFilter) int {
	if filter.Limit <= 0 || filter.Limit > defaultListLimit {
		return defaultListLimit
	}
	return filter.Limit
}
