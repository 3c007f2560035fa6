package common

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// WriteJSON writes v as a JSON response body.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// WriteErrorList writes the structured {"errors": [...]} failure body.
func WriteErrorList(w http.ResponseWriter, status int, msgs ...string) {
	WriteJSON(w, status, map[string][]string{"errors": msgs})
}

// WriteError maps a service error to its HTTP representation. Validation,
// ownership and duplicate-like failures are user rejections (422), missing
// entities are 404, everything else is a 500.
func WriteError(w http.ResponseWriter, err error) {
	if ve, ok := AsValidationError(err); ok {
		WriteErrorList(w, http.StatusUnprocessableEntity, ve.Errors...)
		return
	}

	switch {
	case errors.Is(err, ErrNotFound):
		WriteErrorList(w, http.StatusNotFound, "not found")
	case errors.Is(err, ErrForbidden):
		WriteErrorList(w, http.StatusUnprocessableEntity, "permission denied, please try again later")
	case errors.Is(err, ErrAlreadyLiked):
		WriteErrorList(w, http.StatusUnprocessableEntity, "you already liked this photo")
	default:
		log.Printf("internal error: %v", err)
		WriteErrorList(w, http.StatusInternalServerError, "an error occurred, please try again later")
	}
}
