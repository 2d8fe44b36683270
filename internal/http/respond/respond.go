package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// JSON writes payload as the response body.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}

// Message writes the standard {"message": ...} body.
func Message(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"message": message})
}

// Error writes an error response. Errors share the {"message": ...} shape;
// internal detail never reaches the client.
func Error(w http.ResponseWriter, status int, message string) {
	Message(w, status, message)
}
