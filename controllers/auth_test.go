package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")

	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "arun@slotifyme.com",
		"password": "admin123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		User    struct {
			Email string `json:"email"`
			Name  string `json:"name"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	decodeBody(t, w, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "arun@slotifyme.com", body.User.Email)
	assert.Equal(t, "admin", body.User.Role)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Value)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, "/", session.Path)
	assert.Equal(t, http.SameSiteLaxMode, session.SameSite)
	assert.Equal(t, 168*3600, session.MaxAge)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")

	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "arun@slotifyme.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies(), "failed login must not touch the cookie jar")
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodPost, "/logout", nil, session)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	cleared := cookies[len(cookies)-1]
	assert.Equal(t, testCookieName, cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)
}

func TestProtectedPageRedirectsToLogin(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")

	w := doJSON(r, http.MethodGet, "/admin/tenants", nil, nil)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestProtectedPageRendersWithSession(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodGet, "/admin/tenants", nil, session)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Slotifyme Admin")
}

func TestProtectedAPIRequiresSession(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")

	w := doJSON(r, http.MethodGet, "/api/admin/plans", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsUserSummary(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodGet, "/api/auth/me", nil, session)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		User struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	decodeBody(t, w, &body)
	assert.Equal(t, "Arun", body.User.Name)
}

func TestPasswordRecoveryFlow(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")

	// Step 1: forgot password returns the questions without leaking
	// account existence.
	w := doJSON(r, http.MethodPost, "/api/auth/forgot-password", map[string]string{
		"email": "arun@slotifyme.com",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Step 2: wrong answers are rejected.
	w = doJSON(r, http.MethodPost, "/api/auth/verify-security-questions", map[string]interface{}{
		"email": "arun@slotifyme.com",
		"answers": map[string]string{
			"question1": "wrong answer",
			"question2": "johnson",
			"question3": "2015",
		},
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct answers are case-insensitive.
	w = doJSON(r, http.MethodPost, "/api/auth/verify-security-questions", map[string]interface{}{
		"email": "arun@slotifyme.com",
		"answers": map[string]string{
			"question1": "Downtown Barbershop",
			"question2": "  Johnson ",
			"question3": "2015",
		},
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var verified struct {
		ResetToken string `json:"reset_token"`
	}
	decodeBody(t, w, &verified)
	require.NotEmpty(t, verified.ResetToken)

	// Step 3: reset with the token.
	w = doJSON(r, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"reset_token":  verified.ResetToken,
		"new_password": "brand-new-pass",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Old password no longer works, the new one does.
	w = doJSON(r, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "arun@slotifyme.com", "password": "admin123",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "arun@slotifyme.com", "password": "brand-new-pass",
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResetPasswordRejectsSessionToken(t *testing.T) {
	r := newRouter(t, "http://bff.invalid")
	session := login(t, r)

	w := doJSON(r, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"reset_token":  session.Value,
		"new_password": "brand-new-pass",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
