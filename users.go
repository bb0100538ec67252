package main

import (
	"errors"
	"log"
	"net/http"
	"strings"
)

type profileReq struct {
	FullName string `json:"fullName"`
}

// GET /user
func (a *App) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := a.store.UserByID(r.Context(), userIDFrom(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			errorJSON(w, http.StatusBadRequest, "Invalid User ID")
			return
		}
		log.Printf("[users] get: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Here is your profile information",
		"user":    toUserDTO(u),
	})
}

// PATCH /user — fullName is the only mutable field; empty or absent keeps
// the previous value.
func (a *App) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in profileReq
	if err := decodeJSON(r, &in); err != nil {
		errorJSON(w, http.StatusBadRequest, "invalid json")
		return
	}

	u, err := a.store.UserByID(r.Context(), userIDFrom(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			errorJSON(w, http.StatusBadRequest, "Invalid User ID")
			return
		}
		log.Printf("[users] update fetch: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}

	if name := strings.TrimSpace(in.FullName); name != "" {
		u.FullName = name
	}
	if err := a.store.UpdateUser(r.Context(), u); err != nil {
		log.Printf("[users] update: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "User Updated Successfully!",
		"updatedUser": toUserDTO(u),
	})
}

// DELETE /user — hard delete; owned posts go with the account. Responds with
// the account's prior state.
func (a *App) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	u, err := a.store.UserByID(r.Context(), userIDFrom(r))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			errorJSON(w, http.StatusBadRequest, "Invalid User ID")
			return
		}
		log.Printf("[users] delete fetch: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	if err := a.store.DeleteUser(r.Context(), u.ID); err != nil && !errors.Is(err, ErrNotFound) {
		log.Printf("[users] delete: %v", err)
		errorJSON(w, http.StatusInternalServerError, msgInternal)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":     "User Deleted Successfully!",
		"deletedUser": toUserDTO(u),
	})
}
