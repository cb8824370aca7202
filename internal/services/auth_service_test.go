package services

import (
	"context"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/models"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/store"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

func newAuthService(t *testing.T) (*AuthService, store.Store) {
	t.Helper()
	st := newTestStore(t)
	utils.SetJWTSecret("test-secret")
	return NewAuthService(st, &config.Config{JWT: config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1}}), st
}

func TestAuthService_CreateAccountAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	account, err := svc.CreateAccount(ctx, &CreateAccountRequest{
		Email:     "Asha@College.edu",
		Password:  "Str0ng!pass",
		Role:      models.RoleStudent,
		StudentID: testStudentID,
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@college.edu", account.Email)

	resp, err := svc.Login(ctx, &LoginRequest{Email: "asha@college.edu", Password: "Str0ng!pass"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)

	identity, err := JWTVerifier{}.VerifyToken(ctx, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, identity.UserID)
	assert.Equal(t, models.RoleStudent, identity.Role)
	assert.Equal(t, testStudentID, identity.StudentID)

	_, err = svc.Login(ctx, &LoginRequest{Email: "asha@college.edu", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, &LoginRequest{Email: "nobody@college.edu", Password: "Str0ng!pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "asha@college.edu", Password: "Str0ng!pass", Role: models.RoleStudent, StudentID: testStudentID,
	})
	assert.ErrorIs(t, err, ErrAccountExists)
}

func TestAuthService_CreateAccountValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAuthService(t)

	_, err := svc.CreateAccount(ctx, &CreateAccountRequest{Email: "a@college.edu", Password: "weak", Role: models.RoleAdmin})
	require.Error(t, err)
	assert.NotEmpty(t, utils.GetValidationErrors(err))

	_, err = svc.CreateAccount(ctx, &CreateAccountRequest{Email: "b@college.edu", Password: "Str0ng!pass", Role: models.RoleStudent})
	require.Error(t, err)
	assert.NotEmpty(t, utils.GetValidationErrors(err))

	_, err = svc.CreateAccount(ctx, &CreateAccountRequest{
		Email: "c@college.edu", Password: "Str0ng!pass", Role: models.RoleStudent, StudentID: "ghost",
	})
	assert.ErrorIs(t, err, store.ErrNotFound)

	admin, err := svc.CreateAccount(ctx, &CreateAccountRequest{Email: "d@college.edu", Password: "Str0ng!pass", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Empty(t, admin.StudentID)
}

func TestIdentityFromFirebase(t *testing.T) {
	student := identityFromFirebase(&auth.Token{UID: "uid-1", Claims: map[string]interface{}{"email": "s@college.edu"}})
	assert.Equal(t, &Identity{UserID: "uid-1", Email: "s@college.edu", Role: models.RoleStudent, StudentID: "uid-1"}, student)

	admin := identityFromFirebase(&auth.Token{UID: "uid-2", Claims: map[string]interface{}{"role": "admin"}})
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Empty(t, admin.StudentID)

	bogus := identityFromFirebase(&auth.Token{UID: "uid-3", Claims: map[string]interface{}{"role": "root"}})
	assert.Equal(t, models.RoleStudent, bogus.Role)
}

type stubIDTokenVerifier struct {
	token *auth.Token
	err   error
}

func (s stubIDTokenVerifier) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier(t *testing.T) {
	v := &FirebaseVerifier{client: stubIDTokenVerifier{token: &auth.Token{UID: "uid-9"}}}
	id, err := v.VerifyToken(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "uid-9", id.StudentID)

	v = &FirebaseVerifier{client: stubIDTokenVerifier{err: assert.AnError}}
	_, err = v.VerifyToken(context.Background(), "token")
	assert.ErrorIs(t, err, assert.AnError)
}
