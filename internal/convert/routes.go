package convert

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/tricreta/promptparse/internal/conversions"
	"github.com/tricreta/promptparse/internal/schemas"
)

// maxInputLength caps user-supplied text, in characters, before any
// model call.
const maxInputLength = 10000

type convertRequest struct {
	// Type is decoded loosely so a missing or non-string value can be
	// reported with a precise message instead of a generic decode error.
	Type                any      `json:"type"`
	InputText           string   `json:"inputText"`
	Message             string   `json:"message"`
	InvalidJSON         string   `json:"invalidJSON"`
	ValidationErrors    []string `json:"validationErrors"`
	ConversationHistory []Turn   `json:"conversationHistory"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RegisterRoutes mounts the conversion endpoint on the given router. The
// history store may be nil, in which case conversions are not recorded.
func RegisterRoutes(r chi.Router, conv *Converter, history *conversions.Store) {
	r.Post("/api/convert", handleConvert(conv, history))
}

func handleConvert(conv *Converter, history *conversions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Failures are carried in the body; the HTTP status stays 200.
		defer func() {
			if rec := recover(); rec != nil {
				msg := "Server error"
				if err, ok := rec.(error); ok {
					msg = err.Error()
				}
				writeJSON(w, http.StatusOK, errorResponse{Success: false, Error: msg})
			}
		}()

		var req convertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusOK, errorResponse{Success: false, Error: err.Error()})
			return
		}

		typ, ok := req.Type.(string)
		if !ok || typ == "" {
			writeJSON(w, http.StatusOK, errorResponse{Success: false, Error: "Invalid or missing request type"})
			return
		}

		if utf8.RuneCountInString(req.InputText) > maxInputLength || utf8.RuneCountInString(req.Message) > maxInputLength {
			writeJSON(w, http.StatusOK, errorResponse{Success: false, Error: "Input text too long"})
			return
		}

		start := time.Now()

		switch typ {
		case "convert", "conversation":
			text := req.Message
			if text == "" {
				text = req.InputText
			}
			result := conv.ConvertBasic(r.Context(), text)
			recordConversion(r, history, typ, text, result, start)
			writeJSON(w, http.StatusOK, result)

		case "advanced":
			text := req.Message
			if text == "" {
				text = req.InputText
			}
			result := conv.ConvertAdvanced(r.Context(), text, req.ConversationHistory)
			recordConversion(r, history, typ, text, result, start)
			writeJSON(w, http.StatusOK, result)

		case "repair":
			result := conv.Repair(r.Context(), req.InvalidJSON, req.ValidationErrors)
			if history != nil && result.Success {
				saveRecord(r, history, conversions.Record{
					Kind:       "repair",
					InputText:  req.InvalidJSON,
					OutputJSON: result.JSON,
					TokensUsed: result.TokensUsed,
					CostMs:     time.Since(start).Milliseconds(),
				})
			}
			writeJSON(w, http.StatusOK, result)

		case "detectSchema":
			writeJSON(w, http.StatusOK, DetectSchema(req.InputText, schemas.Catalog))

		default:
			writeJSON(w, http.StatusOK, errorResponse{Success: false, Error: "Invalid request type"})
		}
	}
}

// recordConversion stores a ready conversion; history writes are best effort
// and never affect the response.
func recordConversion(r *http.Request, history *conversions.Store, kind, input string, result ConversationResult, start time.Time) {
	if history == nil || result.Status != StatusReady || result.JSON == "" {
		return
	}
	saveRecord(r, history, conversions.Record{
		Kind:       kind,
		InputText:  input,
		OutputJSON: result.JSON,
		TokensUsed: result.TokensUsed,
		CostMs:     time.Since(start).Milliseconds(),
	})
}

func saveRecord(r *http.Request, history *conversions.Store, rec conversions.Record) {
	if err := history.Save(r.Context(), rec); err != nil {
		log.Printf("convert: saving conversion history: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
