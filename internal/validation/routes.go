package validation

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tricreta/promptparse/internal/schemas"
)

type validateRequest struct {
	JSON     string `json:"json"`
	SchemaID string `json:"schemaId"`
}

// RegisterRoutes mounts the validation endpoints on the given router.
func RegisterRoutes(r chi.Router) {
	r.Post("/api/validate", handleValidate)
	r.Get("/api/schemas", handleListSchemas)
}

func handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	def := schemas.ByID(req.SchemaID)
	if def == nil {
		http.Error(w, "unknown schema", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, Validate(req.JSON, def.JSONSchema))
}

func handleListSchemas(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, schemas.Catalog)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
