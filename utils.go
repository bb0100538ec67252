package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// msgInternal is the generic failure body. The exact wording (typo included)
// is part of the public contract and must not change.
const msgInternal = "Some Error Occured. Please Try Again Later!"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func errorJSON(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// decodeJSON decodes the request body into v. An absent body decodes as the
// zero value, so PATCH with no payload means "change nothing".
func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
