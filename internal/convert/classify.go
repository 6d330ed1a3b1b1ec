package convert

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Classify interprets raw model output. Valid JSON becomes a ready result
// with canonical 2-space indentation; anything else is treated verbatim as a
// single clarification question. The re-indentation preserves token order and
// fully normalizes whitespace, so classifying an already-canonical result
// again is a byte-identical no-op.
func Classify(raw string, tokensUsed int) ConversationResult {
	trimmed := strings.TrimSpace(raw)

	if json.Valid([]byte(trimmed)) {
		return ConversationResult{
			Status:     StatusReady,
			JSON:       prettyJSON(trimmed),
			TokensUsed: tokensUsed,
		}
	}

	return ConversationResult{
		Status:     StatusNeedInfo,
		Questions:  []string{trimmed},
		TokensUsed: tokensUsed,
	}
}

// prettyJSON reformats valid JSON text with 2-space indentation.
func prettyJSON(valid string) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(valid), "", "  "); err != nil {
		// Unreachable for input that passed json.Valid.
		return valid
	}
	return buf.String()
}
