package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignUp_NeverLeaksPasswordHash(t *testing.T) {
	h := newTestApp().router()

	_, user := signup(t, h, "ada@example.com", "hunter22", "Ada Lovelace")

	require.Equal(t, "ada@example.com", user["email"])
	require.Equal(t, "Ada Lovelace", user["fullName"])
	require.NotEmpty(t, user["id"])
	for _, k := range []string{"password", "passwordHash", "PasswordHash"} {
		_, present := user[k]
		require.False(t, present, "user body must not contain %q", k)
	}
}

func TestSignUp_TokenResolvesToSameUser(t *testing.T) {
	h := newTestApp().router()

	token, user := signup(t, h, "ada@example.com", "hunter22", "Ada")

	rec, payload := doJSON(t, h, http.MethodGet, "/user", token, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	profile := payload["user"].(map[string]any)
	require.Equal(t, user["id"], profile["id"])
}

func TestSignUp_DuplicateEmailConflicts(t *testing.T) {
	h := newTestApp().router()

	signup(t, h, "ada@example.com", "hunter22", "Ada")

	rec, _ := doJSON(t, h, http.MethodPost, "/auth/signup", "",
		`{"email":"ada@example.com","password":"other","fullName":"Imposter"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignUp_RequiresEmailAndPassword(t *testing.T) {
	h := newTestApp().router()

	rec, _ := doJSON(t, h, http.MethodPost, "/auth/signup", "", `{"email":"","password":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignIn_Succeeds(t *testing.T) {
	h := newTestApp().router()
	_, user := signup(t, h, "ada@example.com", "hunter22", "Ada")

	rec, payload := doJSON(t, h, http.MethodPost, "/auth/signin", "",
		`{"email":"ada@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotEmpty(t, payload["token"])

	signedIn := payload["user"].(map[string]any)
	require.Equal(t, user["id"], signedIn["id"])
	_, present := signedIn["passwordHash"]
	require.False(t, present)
}

func TestSignIn_WrongPasswordAndUnknownEmailAreIdentical(t *testing.T) {
	h := newTestApp().router()
	signup(t, h, "ada@example.com", "hunter22", "Ada")

	recWrong, bodyWrong := doJSON(t, h, http.MethodPost, "/auth/signin", "",
		`{"email":"ada@example.com","password":"nope"}`)
	recUnknown, bodyUnknown := doJSON(t, h, http.MethodPost, "/auth/signin", "",
		`{"email":"nobody@example.com","password":"nope"}`)

	require.Equal(t, http.StatusBadRequest, recWrong.Code)
	require.Equal(t, recWrong.Code, recUnknown.Code)
	require.Equal(t, bodyWrong, bodyUnknown, "the two failure modes must be indistinguishable")
}
