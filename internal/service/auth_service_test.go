package service

import (
	"context"
	"testing"

	"stockroom/internal/apierror"
	"stockroom/internal/dto"
	"stockroom/internal/identity"
	"stockroom/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier maps tokens to claims; unknown tokens fail verification.
type stubVerifier struct {
	tokens map[string]*identity.Claims
}

func (v *stubVerifier) Verify(_ context.Context, token string) (*identity.Claims, error) {
	claims, ok := v.tokens[token]
	if !ok {
		return nil, identity.ErrInvalidToken
	}
	return claims, nil
}

func newAuthFixture() (*memUsers, *stubVerifier, AuthService) {
	users := newMemUsers()
	verifier := &stubVerifier{tokens: map[string]*identity.Claims{
		"good-token": {SubjectID: "uid-1", Email: "ana@example.com", Name: "Ana"},
	}}
	return users, verifier, NewAuthService(verifier, users)
}

func TestRegisterDefaultsUnknownRoleToStaff(t *testing.T) {
	_, _, svc := newAuthFixture()

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		IDToken:  "good-token",
		Username: "ana",
		FullName: "Ana Torres",
		Role:     "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleStaff, user.Role)
	assert.Equal(t, "uid-1", user.IdentityUID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.True(t, user.IsActive)
}

func TestRegisterInvalidToken(t *testing.T) {
	_, _, svc := newAuthFixture()

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		IDToken:  "forged",
		Username: "ana",
		FullName: "Ana Torres",
	})
	require.ErrorIs(t, err, identity.ErrInvalidToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users, _, svc := newAuthFixture()
	users.add(model.User{IdentityUID: "other", Username: "first", Email: "ana@example.com", IsActive: true})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		IDToken:  "good-token",
		Username: "ana",
		FullName: "Ana Torres",
	})
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users, _, svc := newAuthFixture()
	users.add(model.User{IdentityUID: "other", Username: "ana", Email: "someone@example.com", IsActive: true})

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		IDToken:  "good-token",
		Username: "ana",
		FullName: "Ana Torres",
	})
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestLoginUnknownSubject(t *testing.T) {
	_, _, svc := newAuthFixture()

	// Token verifies but no local row exists.
	user, err := svc.Login(context.Background(), dto.LoginRequest{IDToken: "good-token"})
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	users, _, svc := newAuthFixture()
	users.add(model.User{IdentityUID: "uid-1", Username: "ana", Email: "ana@example.com", Role: model.RoleStaff, IsActive: false})

	_, err := svc.Login(context.Background(), dto.LoginRequest{IDToken: "good-token"})
	require.ErrorIs(t, err, apierror.ErrAccountDeactivated)
}

func TestLoginActiveAccount(t *testing.T) {
	users, _, svc := newAuthFixture()
	users.add(model.User{IdentityUID: "uid-1", Username: "ana", Email: "ana@example.com", Role: model.RoleManager, IsActive: true})

	user, err := svc.Login(context.Background(), dto.LoginRequest{IDToken: "good-token"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleManager, user.Role)
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	users, _, svc := newAuthFixture()
	u := users.add(model.User{IdentityUID: "uid-9", Username: "bo", Email: "bo@example.com", Role: model.RoleStaff, IsActive: true})

	_, err := svc.UpdateRole(context.Background(), u.ID, "root")
	var verr *apierror.ValidationError
	require.ErrorAs(t, err, &verr)

	updated, err := svc.UpdateRole(context.Background(), u.ID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, updated.Role)
}

func TestDeactivateAndActivate(t *testing.T) {
	users, _, svc := newAuthFixture()
	u := users.add(model.User{IdentityUID: "uid-9", Username: "bo", Email: "bo@example.com", Role: model.RoleStaff, IsActive: true})

	off, err := svc.SetActive(context.Background(), u.ID, false)
	require.NoError(t, err)
	assert.False(t, off.IsActive)

	on, err := svc.SetActive(context.Background(), u.ID, true)
	require.NoError(t, err)
	assert.True(t, on.IsActive)
}
