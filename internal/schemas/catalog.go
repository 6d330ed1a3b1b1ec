package schemas

// Definition describes one built-in output schema: a short field-label
// structure shown to users plus the JSON-Schema document used for validation.
type Definition struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Structure  map[string]string `json:"structure"`
	JSONSchema map[string]any    `json:"jsonSchema"`
}

// Catalog is the fixed set of built-in schema definitions. It is never
// modified at runtime.
var Catalog = []Definition{
	{
		ID:   "blog-post",
		Name: "Blog Post",
		Structure: map[string]string{
			"title":       "string",
			"content":     "string",
			"author":      "string",
			"publishDate": "date",
			"tags":        "array<string>",
			"featured":    "boolean",
		},
		JSONSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":       map[string]any{"type": "string", "minLength": 1},
				"content":     map[string]any{"type": "string", "minLength": 10},
				"author":      map[string]any{"type": "string", "minLength": 1},
				"publishDate": map[string]any{"type": "string", "format": "date-time"},
				"tags":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				"featured":    map[string]any{"type": "boolean"},
			},
			"required":             []any{"title", "content", "author", "publishDate"},
			"additionalProperties": false,
		},
	},
	{
		ID:   "ad-copy",
		Name: "Ad Copy",
		Structure: map[string]string{
			"headline":       "string",
			"description":    "string",
			"callToAction":   "string",
			"targetAudience": "string",
			"platform":       "string",
		},
		JSONSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"headline":       map[string]any{"type": "string", "minLength": 1, "maxLength": 100},
				"description":    map[string]any{"type": "string", "minLength": 10, "maxLength": 500},
				"callToAction":   map[string]any{"type": "string", "minLength": 1, "maxLength": 50},
				"targetAudience": map[string]any{"type": "string", "minLength": 1},
				"platform":       map[string]any{"type": "string", "enum": []any{"facebook", "google", "instagram", "linkedin", "twitter"}},
			},
			"required":             []any{"headline", "description", "callToAction", "targetAudience", "platform"},
			"additionalProperties": false,
		},
	},
	{
		ID:   "support-ticket",
		Name: "Support Ticket",
		Structure: map[string]string{
			"subject":       "string",
			"description":   "string",
			"priority":      "enum[low,medium,high,urgent]",
			"category":      "string",
			"customerEmail": "email",
			"status":        "enum[open,in-progress,resolved,closed]",
		},
		JSONSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"subject":       map[string]any{"type": "string", "minLength": 1, "maxLength": 200},
				"description":   map[string]any{"type": "string", "minLength": 10},
				"priority":      map[string]any{"type": "string", "enum": []any{"low", "medium", "high", "urgent"}},
				"category":      map[string]any{"type": "string", "minLength": 1},
				"customerEmail": map[string]any{"type": "string", "format": "email"},
				"status":        map[string]any{"type": "string", "enum": []any{"open", "in-progress", "resolved", "closed"}},
			},
			"required":             []any{"subject", "description", "priority", "category", "customerEmail"},
			"additionalProperties": false,
		},
	},
}

// ByID returns the definition with the given id, or nil if none matches.
func ByID(id string) *Definition {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}
