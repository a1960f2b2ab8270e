package services

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"localpro_backend/internal/services/dto"
	"localpro_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingEmailProvider captures outgoing mail for assertions.
type recordingEmailProvider struct {
	mu     sync.Mutex
	resets []string // tokens handed out
}

func (p *recordingEmailProvider) Send(to, subject, body string) error { return nil }

func (p *recordingEmailProvider) SendPasswordReset(to, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resets = append(p.resets, token)
	return nil
}

func (p *recordingEmailProvider) lastReset() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.resets) == 0 {
		return ""
	}
	return p.resets[len(p.resets)-1]
}

func newAuthService(e *testEnv) (AuthService, *recordingEmailProvider) {
	emails := &recordingEmailProvider{}
	return NewAuthService(e.userRepo, e.profileRepo, e.refreshTokenRepo, emails), emails
}

func TestAuthRegister_CreatesUserAndProfile(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	resp, err := svc.Register(&dto.RegisterRequest{
		Email:    "jane@test.com",
		Password: "super_password123",
		FullName: "Jane Doe",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "jane@test.com", resp.User.Email)
	require.NotNil(t, resp.User.Profile)
	assert.Equal(t, "Jane Doe", resp.User.Profile.FullName)
	// profile and user share an ID
	assert.Equal(t, resp.User.ID, resp.User.Profile.ID)
}

func TestAuthRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	req := &dto.RegisterRequest{Email: "dup@test.com", Password: "super_password123"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)
}

func TestAuthRegister_WeakPassword(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	_, err := svc.Register(&dto.RegisterRequest{Email: "weak@test.com", Password: "short"})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestAuthLogin(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	_, err := svc.Register(&dto.RegisterRequest{Email: "jane@test.com", Password: "super_password123"})
	require.NoError(t, err)

	resp, err := svc.Login(&dto.LoginRequest{Email: "jane@test.com", Password: "super_password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = svc.Login(&dto.LoginRequest{Email: "jane@test.com", Password: "wrong_password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// unknown account reads the same as a bad password
	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthRefresh_RotatesToken(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	registered, err := svc.Register(&dto.RegisterRequest{Email: "jane@test.com", Password: "super_password123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(registered.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, registered.RefreshToken, refreshed.RefreshToken)

	// the old token is spent
	_, err = svc.Refresh(registered.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)

	// the new one works
	_, err = svc.Refresh(refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestAuthLogout_RevokesToken(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	resp, err := svc.Register(&dto.RegisterRequest{Email: "jane@test.com", Password: "super_password123"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(resp.RefreshToken))

	_, err = svc.Refresh(resp.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestAuthForgotPassword_UnknownEmailSilent(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, emails := newAuthService(e)

	assert.NoError(t, svc.ForgotPassword("nobody@test.com"))
	assert.Empty(t, emails.lastReset())
}

func TestAuthResetPassword_FullFlow(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, emails := newAuthService(e)

	registered, err := svc.Register(&dto.RegisterRequest{Email: "jane@test.com", Password: "super_password123"})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword("jane@test.com"))

	// the reset mail goes out on a background goroutine
	var token string
	require.Eventually(t, func() bool {
		token = emails.lastReset()
		return token != ""
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, svc.ResetPassword(token, "brand_new_password"))

	// old password no longer works, new one does
	_, err = svc.Login(&dto.LoginRequest{Email: "jane@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = svc.Login(&dto.LoginRequest{Email: "jane@test.com", Password: "brand_new_password"})
	assert.NoError(t, err)

	// every pre-reset session is revoked
	_, err = svc.Refresh(registered.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)

	// the token is single-use
	err = svc.ResetPassword(token, "another_password1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestAuthResetPassword_ExpiredToken(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	_, err := svc.Register(&dto.RegisterRequest{Email: "jane@test.com", Password: "super_password123"})
	require.NoError(t, err)

	user, err := e.userRepo.FindByEmail("jane@test.com")
	require.NoError(t, err)
	expired := time.Now().Add(-time.Minute)
	user.ResetToken = "stale-token"
	user.ResetTokenExpiry = &expired
	require.NoError(t, e.userRepo.Update(user))

	err = svc.ResetPassword("stale-token", "brand_new_password")
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestAuthMe(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t)
	svc, _ := newAuthService(e)

	registered, err := svc.Register(&dto.RegisterRequest{Email: "jane@test.com", Password: "super_password123", FullName: "Jane Doe"})
	require.NoError(t, err)

	me, err := svc.Me(registered.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@test.com", me.Email)
	require.NotNil(t, me.Profile)
	assert.Equal(t, "Jane Doe", me.Profile.FullName)
}
