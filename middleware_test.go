package main

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRequireAuth_MissingToken(t *testing.T) {
	h := newTestApp().router()

	rec, payload := doJSON(t, h, http.MethodGet, "/post", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Token Missing. Please Sign In Again To Access This Page.", payload["message"])
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	h := newTestApp().router()

	rec, payload := doJSON(t, h, http.MethodGet, "/post", "garbage.token.here", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid Token. Please Sign In Again To Access This Page.", payload["message"])
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	app := newTestApp()
	h := app.router()

	// sign with the same secret but an expiry already in the past
	expired := newTokenAuth(app.cfg.JWTSecret, -time.Minute)
	stale, err := expired.Issue("whoever")
	require.NoError(t, err)

	rec, payload := doJSON(t, h, http.MethodGet, "/post", stale, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Token Expired. Please Sign In Again To Access This Page.", payload["message"])
}

func TestRequireAuth_StaleIdentity(t *testing.T) {
	h := newTestApp().router()

	token, _ := signup(t, h, "ada@example.com", "hunter22", "Ada")

	// delete the account, then reuse the still-valid token
	rec, _ := doJSON(t, h, http.MethodDelete, "/user", token, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, payload := doJSON(t, h, http.MethodGet, "/post", token, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Unauthorized!", payload["message"])
}

func TestRequireAuth_BearerPrefixTolerated(t *testing.T) {
	h := newTestApp().router()

	token, _ := signup(t, h, "ada@example.com", "hunter22", "Ada")

	rec, _ := doJSON(t, h, http.MethodGet, "/post", "Bearer "+token, "")
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestRequireAuth_InjectsCallerIdentity(t *testing.T) {
	h := newTestApp().router()

	token, user := signup(t, h, "ada@example.com", "hunter22", "Ada")
	post := createPost(t, h, token, "First", "Hello")

	require.Equal(t, user["id"], post["userId"], "ownerId must come from the verified token")
}
