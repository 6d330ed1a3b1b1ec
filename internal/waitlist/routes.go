package waitlist

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type submitRequest struct {
	Email        string `json:"email"`
	ToolInterest string `json:"toolInterest"`
}

type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RegisterRoutes mounts the waitlist endpoint on the given router. A nil
// client means the backend is unconfigured; submissions then fail fast
// without disabling the rest of the system.
func RegisterRoutes(r chi.Router, client *Client) {
	r.Post("/api/waitlist", handleSubmit(client))
}

func handleSubmit(client *Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, submitResponse{Error: "invalid request body"})
			return
		}

		if req.Email == "" || req.ToolInterest == "" || req.ToolInterest == ToolInterestNone {
			writeJSON(w, http.StatusBadRequest, submitResponse{Error: "Please enter your email and select a tool."})
			return
		}

		if client == nil {
			writeJSON(w, http.StatusServiceUnavailable, submitResponse{Error: "Waitlist signup is currently unavailable."})
			return
		}

		err := client.Submit(r.Context(), req.Email, req.ToolInterest)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, submitResponse{Success: true, Message: "You're on the waitlist!"})
		case errors.Is(err, ErrDuplicate):
			// Duplicate signups read as success to the user.
			writeJSON(w, http.StatusOK, submitResponse{Success: true, Message: "Already on the waitlist!"})
		default:
			// Backend detail stays in the logs.
			log.Printf("waitlist: submit failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, submitResponse{Error: "There was an error joining the waitlist. Please try again."})
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
