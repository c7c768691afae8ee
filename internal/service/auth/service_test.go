package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/auth"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/user"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/jwt"
	"github.com/studiopaghe/comporto-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T) auth.AuthService {
	t.Helper()
	store := memory.NewStore()
	jwtService := jwt.NewJWTService("test-secret-key", "15m", "168h")
	return NewAuthService(store.Users(), jwtService)
}

func registerReq() auth.RegisterRequest {
	return auth.RegisterRequest{
		FirstName:       "Mario",
		LastName:        "Rossi",
		Email:           "mario.rossi@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	assert.NotEmpty(t, registered.ID)
	assert.Equal(t, "mario.rossi@example.com", registered.Email)

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "mario.rossi@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerReq())
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc := newTestService(t)

	req := registerReq()
	req.ConfirmPassword = "different123"
	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	_, err = svc.Login(ctx, auth.LoginRequest{
		Email:    "mario.rossi@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "mario.rossi@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// the old refresh token is revoked once rotated
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "mario.rossi@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, tokens.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, auth.LoginRequest{
		Email:    "mario.rossi@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMe(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)

	me, err := svc.Me(ctx, registered.ID)
	require.NoError(t, err)
	assert.Equal(t, registered, me)

	_, err = svc.Me(ctx, "missing-id")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
