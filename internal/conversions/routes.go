package conversions

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the conversion history endpoint on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/api/conversions", handleRecent(store))
}

func handleRecent(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 5
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				limit = n
			}
		}

		records, err := store.Recent(r.Context(), limit)
		if err != nil {
			http.Error(w, "could not load conversions", http.StatusInternalServerError)
			return
		}
		if records == nil {
			records = []Record{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(records)
	}
}
