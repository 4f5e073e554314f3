package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteMessage writes a JSON response carrying only a message field
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

// WriteServerError logs the underlying error and answers with a generic 500.
// Internal error detail is never sent to the client.
func WriteServerError(w http.ResponseWriter, err error) {
	log.Printf("Internal server error: %v", err)
	WriteMessage(w, http.StatusInternalServerError, "Internal server error")
}
