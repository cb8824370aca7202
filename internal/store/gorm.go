package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
)

// SQLSTATE insufficient_privilege
const pgInsufficientPrivilege = "42501"

type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

type GormOption func(*GormStore)

// WithClock overrides the time source used for appliedAt.
func WithClock(now func() time.Time) GormOption {
	return func(s *GormStore) { s.now = now }
}

func NewGormStore(db *gorm.DB, opts ...GormOption) *GormStore {
	s := &GormStore{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GormStore) DB() *gorm.DB { return s.db }

func (s *GormStore) GetStudentProfile(ctx context.Context, studentID string) (*models.StudentProfile, error) {
	var profile models.StudentProfile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", studentID).Error; err != nil {
		return nil, translateGormError("get student profile", err)
	}
	return &profile, nil
}

func (s *GormStore) SaveStudentProfile(ctx context.Context, profile *models.StudentProfile) error {
	profile.UpdatedAt = s.now()
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(profile).Error
	if err != nil {
		return translateGormError("save student profile", err)
	}
	return nil
}

func (s *GormStore) CreateLeaveApplication(ctx context.Context, app *models.LeaveApplication) (string, error) {
	app.ID = ""
	app.AppliedAt = s.now()
	if err := s.db.WithContext(ctx).Create(app).Error; err != nil {
		return "", translateGormError("create leave application", err)
	}
	return app.ID, nil
}

func (s *GormStore) GetLeaveApplication(ctx context.Context, id string) (*models.LeaveApplication, error) {
	var app models.LeaveApplication
	if err := s.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		return nil, translateGormError("get leave application", err)
	}
	return &app, nil
}

func (s *GormStore) ListLeaveApplicationsByStudent(ctx context.Context, studentID string) ([]models.LeaveApplication, error) {
	apps := make([]models.LeaveApplication, 0)
	err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, translateGormError("list leave applications", err)
	}
	return apps, nil
}

func (s *GormStore) ListLeaveApplications(ctx context.Context, filter models.LeaveFilter) ([]models.LeaveApplication, error) {
	tx := s.db.WithContext(ctx).Model(&models.LeaveApplication{})
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}

	apps := make([]models.LeaveApplication, 0)
	if err := tx.Order("applied_at DESC").Limit(listLimit(filter)).Find(&apps).Error; err != nil {
		return nil, translateGormError("list leave applications", err)
	}
	return apps, nil
}

func (s *GormStore) ReviewLeaveApplication(ctx context.Context, id string, review models.LeaveReview) error {
	reviewedAt := review.ReviewedAt
	res := s.db.WithContext(ctx).Model(&models.LeaveApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        review.Status,
			"reviewed_by":   review.ReviewedBy,
			"reviewed_at":   &reviewedAt,
			"admin_remarks": review.Remarks,
		})
	if res.Error != nil {
		return translateGormError("review leave application", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("review leave application: %w", ErrNotFound)
	}
	return nil
}

func (s *GormStore) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).First(&account, "email = ?", models.NormalizeEmail(email)).Error; err != nil {
		return nil, translateGormError("get account", err)
	}
	return &account, nil
}

func (s *GormStore) CreateAccount(ctx context.Context, account *models.Account) error {
	account.Email = models.NormalizeEmail(account.Email)
	account.CreatedAt = s.now()
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		return translateGormError("create account", err)
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translateGormError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInsufficientPrivilege {
		return fmt.Errorf("%s: %w: %s", op, ErrPermissionDenied, pgErr.Message)
	}

	return fmt.Errorf("%s: %w", op, err)
}
