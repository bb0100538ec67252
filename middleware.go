package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
)

type ctxKey int

const userIDKey ctxKey = iota

// bearerToken pulls the raw token from the Authorization header. Clients send
// the bare token; an optional "Bearer " prefix is tolerated since a JWT can
// never start with the scheme word.
func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(raw) > 7 && strings.EqualFold(raw[:7], "Bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}

// requireAuth gates protected routes: verify the token, resolve it to a live
// user, then hand the request on with the user id in its context. One store
// lookup per request, no caching of verification results.
func (a *App) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearerToken(r)
		if raw == "" {
			errorJSON(w, http.StatusBadRequest, "Token Missing. Please Sign In Again To Access This Page.")
			return
		}

		userID, err := a.tokens.Verify(raw)
		if err != nil {
			if errors.Is(err, errTokenExpired) {
				errorJSON(w, http.StatusBadRequest, "Token Expired. Please Sign In Again To Access This Page.")
				return
			}
			errorJSON(w, http.StatusBadRequest, "Invalid Token. Please Sign In Again To Access This Page.")
			return
		}

		// a verified token is only as good as the user behind it
		u, err := a.store.UserByID(r.Context(), userID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				errorJSON(w, http.StatusBadRequest, "Unauthorized!")
				return
			}
			log.Printf("[auth] user lookup: %v", err)
			errorJSON(w, http.StatusInternalServerError, msgInternal)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, u.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFrom returns the authenticated user id placed by requireAuth.
func userIDFrom(r *http.Request) string {
	id, _ := r.Context().Value(userIDKey).(string)
	return id
}
