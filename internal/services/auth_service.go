// internal/services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/store"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountExists      = errors.New("account with this email already exists")
)

type AuthService struct {
	store store.Store
	cfg   *config.Config
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateAccountRequest struct {
	Email     string      `json:"email" validate:"required,email"`
	Password  string      `json:"password" validate:"required,strong_password"`
	Role      models.Role `json:"role" validate:"required,role"`
	StudentID string      `json:"studentId" validate:"required_if=Role student"`
}

type AuthResponse struct {
	Account     *models.Account `json:"account"`
	AccessToken string          `json:"accessToken"`
	TokenType   string          `json:"tokenType"`
	ExpiresIn   int             `json:"expiresIn"` // in seconds
}

func NewAuthService(st store.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		store: st,
		cfg:   cfg,
	}
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	account, err := s.store.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := account.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateJWT(
		account.ID,
		account.Email,
		string(account.Role),
		account.StudentID,
		s.cfg.JWT.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &AuthResponse{
		Account:     account,
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}

// CreateAccount registers a dashboard login. Student accounts must point at a
// student profile.
func (s *AuthService) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*models.Account, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.store.GetAccountByEmail(ctx, req.Email); err == nil {
		return nil, ErrAccountExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	if req.Role == models.RoleStudent {
		if _, err := s.store.GetStudentProfile(ctx, req.StudentID); err != nil {
			return nil, fmt.Errorf("student profile %s: %w", req.StudentID, err)
		}
	}

	account := &models.Account{
		Email:     req.Email,
		Role:      req.Role,
		StudentID: req.StudentID,
	}
	if err := account.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return account, nil
}
