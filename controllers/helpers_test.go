package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"slotifyme-admin/config"
	"slotifyme-admin/routes"
	"slotifyme-admin/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testCookieName = "slotifyme_admin_jwt"

func testConfig(bffURL string) config.Config {
	return config.Config{
		Port:             "8080",
		AppName:          "Slotifyme Admin",
		BFFBaseURL:       bffURL,
		JWTCookieName:    testCookieName,
		JWTExpiryHours:   168,
		PublicHostDomain: "slotifyme.com",
	}
}

func newRouter(t *testing.T, bffURL string) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	st := store.NewCachedStore(store.NewMemoryStore(), store.DefaultCacheTTL)
	return routes.SetupRouter(testConfig(bffURL), st, nil)
}

func doJSON(r *gin.Engine, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// login performs the seeded-admin login and returns the session cookie.
func login(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()

	w := doJSON(r, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "arun@slotifyme.com",
		"password": "admin123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("login did not set a session cookie")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
