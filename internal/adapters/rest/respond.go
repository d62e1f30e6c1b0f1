package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/goodudetheboy/Floowy-backend/internal/core/domain"
)

const genericErrorMessage = "An unexpected error occurred"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("WARN rest: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// respondError maps service errors onto the HTTP error taxonomy.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	id := RequestIDFrom(r.Context())

	var valErr *domain.ValidationError
	var extErr *domain.ExternalServiceError
	switch {
	case errors.As(err, &valErr):
		writeError(w, http.StatusBadRequest, valErr.Error())
	case errors.As(err, &extErr):
		log.Printf("WARN rest: %s %s id=%s: %v", r.Method, r.URL.Path, id, err)
		writeError(w, http.StatusInternalServerError, extErr.Error())
	default:
		log.Printf("ERROR rest: %s %s id=%s: %v", r.Method, r.URL.Path, id, err)
		writeError(w, http.StatusInternalServerError, genericErrorMessage)
	}
}

// decodeJSON reads exactly one JSON value from the (size limited) body.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return &domain.ValidationError{Reason: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit)}
		case errors.Is(err, io.EOF):
			return &domain.ValidationError{Reason: "request body is empty"}
		default:
			return &domain.ValidationError{Reason: "request body must be valid JSON"}
		}
	}
	if dec.More() {
		return &domain.ValidationError{Reason: "request body must hold a single JSON value"}
	}
	return nil
}
