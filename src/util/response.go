package util

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type Message struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode response body: %v", err)
	}
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Message: msg})
}

// WriteError maps ValidationError to 400 and NotFoundError to 404. Anything
// else is an unexpected failure and is reported as a bare 500.
func WriteError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	switch {
	case errors.As(err, &validationErr):
		WriteMessage(w, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		WriteMessage(w, http.StatusNotFound, notFoundErr.Message)
	default:
		WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
