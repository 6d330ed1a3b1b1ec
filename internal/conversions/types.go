package conversions

import "time"

// Record is one stored conversion: the input text that was converted and the
// JSON the model produced for it.
type Record struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	Kind       string    `json:"kind"`
	InputText  string    `json:"inputText"`
	OutputJSON string    `json:"outputJson"`
	TokensUsed int       `json:"tokensUsed,omitempty"`
	CostMs     int64     `json:"costMs,omitempty"`
}
