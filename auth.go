package main

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// --------- DTOs ---------

type signupReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type signinReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userDTO is the outward user shape. No password hash, ever.
type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserDTO(u *User) userDTO {
	return userDTO{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// --------- Handlers ---------

// POST /auth/signup
func (a *App) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var in signupReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.Password == "" {
		errorJSON(w, http.StatusBadRequest, "email and password required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), a.cfg.BcryptCost)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}

	u := &User{
		Email:        in.Email,
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: string(hash),
	}
	if err := a.store.CreateUser(r.Context(), u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			errorJSON(w, http.StatusConflict, "email already in use")
			return
		}
		log.Printf("[auth] create user: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}

	token, err := a.tokens.Issue(u.ID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User Created Successfully!",
		"token":   token,
		"user":    toUserDTO(u),
	})
}

// POST /auth/signin
func (a *App) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var in signinReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	// The missing-user check must come before any password comparison, and a
	// wrong password must be indistinguishable from an unknown email.
	u, err := a.store.UserByEmail(r.Context(), in.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			errorJSON(w, http.StatusBadRequest, "Invalid Email Or Password")
			return
		}
		log.Printf("[auth] user lookup: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid Email Or Password")
		return
	}

	token, err := a.tokens.Issue(u.ID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "User Logged In Successfully!",
		"token":   token,
		"user":    toUserDTO(u),
	})
}
