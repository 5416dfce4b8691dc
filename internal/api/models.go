package api

import (
	"encoding/json"
	"log"
	"net/http"

	"rentacar/internal/errors"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps a service error to its transport status. Store
// failures are logged with their cause but never leak it to the client.
func writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		writeJSON(w, status, MessageResponse{Message: "internal server error"})
		return
	}
	writeJSON(w, status, MessageResponse{Message: err.Error()})
}
