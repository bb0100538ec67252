package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp() *App {
	cfg := Config{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
		CORSOrigin: "http://localhost",
	}
	return newApp(cfg, newMemoryStore())
}

// doJSON runs one request against the router and decodes the JSON body.
// The token goes into the Authorization header bare, the way clients send it.
func doJSON(t *testing.T, h http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), "non-JSON body: %s", rec.Body.String())
	}
	return rec, payload
}

func signup(t *testing.T, h http.Handler, email, password, fullName string) (string, map[string]any) {
	t.Helper()
	rec, payload := doJSON(t, h, http.MethodPost, "/auth/signup", "",
		fmt.Sprintf(`{"email":%q,"password":%q,"fullName":%q}`, email, password, fullName))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	token, _ := payload["token"].(string)
	require.NotEmpty(t, token)
	user, _ := payload["user"].(map[string]any)
	require.NotNil(t, user)
	return token, user
}

func createPost(t *testing.T, h http.Handler, token, title, body string) map[string]any {
	t.Helper()
	rec, payload := doJSON(t, h, http.MethodPost, "/post", token,
		fmt.Sprintf(`{"title":%q,"body":%q}`, title, body))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	post, _ := payload["post"].(map[string]any)
	require.NotNil(t, post)
	return post
}

func TestWelcomeRoute(t *testing.T) {
	rec, payload := doJSON(t, newTestApp().router(), http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Welcome to the Social Blog App!", payload["message"])
}

func TestUnknownRouteIsJSON400(t *testing.T) {
	h := newTestApp().router()

	rec, payload := doJSON(t, h, http.MethodGet, "/no/such/page", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Page Not Found!", payload["message"])
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	// wrong method on a known path gets the same body
	rec, payload = doJSON(t, h, http.MethodPut, "/auth/signup", "", "{}")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Page Not Found!", payload["message"])
}
