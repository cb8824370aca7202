// internal/services/token_verifier.go
package services

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

// Identity is the authenticated caller.
type Identity struct {
	UserID    string      `json:"userId"`
	Email     string      `json:"email,omitempty"`
	Role      models.Role `json:"role"`
	StudentID string      `json:"studentId,omitempty"`
}

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

// JWTVerifier accepts tokens issued by AuthService.Login.
type JWTVerifier struct{}

func (JWTVerifier) VerifyToken(_ context.Context, token string) (*Identity, error) {
	claims, err := utils.ValidateJWT(token)
	if err != nil {
		return nil, err
	}
	return &Identity{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Role:      models.Role(claims.Role),
		StudentID: claims.StudentID,
	}, nil
}

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseVerifier accepts Firebase ID tokens. The uid doubles as the student
// id and the "role" custom claim selects the role.
type FirebaseVerifier struct {
	client idTokenVerifier
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	t, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to verify firebase id token: %w", err)
	}
	return identityFromFirebase(t), nil
}

func identityFromFirebase(t *auth.Token) *Identity {
	id := &Identity{UserID: t.UID, Role: models.RoleStudent}
	if email, ok := t.Claims["email"].(string); ok {
		id.Email = email
	}
	if role, ok := t.Claims["role"].(string); ok && models.Role(role).Valid() {
		id.Role = models.Role(role)
	}
	if id.Role == models.RoleStudent {
		id.StudentID = t.UID
	}
	return id
}
