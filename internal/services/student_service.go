// internal/services/student_service.go
package services

import (
	"context"
	"fmt"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/store"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

type StudentService struct {
	store store.Store
}

type SaveStudentRequest struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
	RollNumber  string `json:"rollNumber" validate:"max=50"`
	Department  string `json:"department" validate:"max=100"`
	ParentEmail string `json:"parentEmail" validate:"omitempty,email"`
}

func NewStudentService(st store.Store) *StudentService {
	return &StudentService{store: st}
}

func (s *StudentService) GetProfile(ctx context.Context, studentID string) (*models.StudentProfile, error) {
	if studentID == "" {
		return nil, ErrStudentIDMissing
	}
	return s.store.GetStudentProfile(ctx, studentID)
}

// SaveProfile creates or replaces a profile. Leave applications already on
// file keep the name and parent email they were submitted with.
func (s *StudentService) SaveProfile(ctx context.Context, req *SaveStudentRequest) (*models.StudentProfile, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	profile := &models.StudentProfile{
		ID:          req.ID,
		Name:        req.Name,
		Email:       models.NormalizeEmail(req.Email),
		RollNumber:  req.RollNumber,
		Department:  req.Department,
		ParentEmail: models.NormalizeEmail(req.ParentEmail),
	}
	if err := s.store.SaveStudentProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save student profile: %w", err)
	}
	return profile, nil
}
