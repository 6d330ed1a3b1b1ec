package validation

import (
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Result reports the outcome of validating a JSON document against a schema.
// Errors is empty exactly when IsValid is true.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

var printer = message.NewPrinter(language.English)

// Validate checks jsonText against the given JSON-Schema document. All
// violations are collected, each rendered as "<instance-path>: <message>"
// with "root" standing in for the document root. The function is pure: it
// performs no I/O and does not mutate its inputs.
func Validate(jsonText string, schema map[string]any) Result {
	instance, err := jsonschema.UnmarshalJSON(strings.NewReader(jsonText))
	if err != nil {
		return Result{IsValid: false, Errors: []string{"Invalid JSON format"}}
	}

	compiled, err := compile(schema)
	if err != nil {
		return Result{IsValid: false, Errors: []string{"Invalid schema definition"}}
	}

	if err := compiled.Validate(instance); err != nil {
		verr, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return Result{IsValid: false, Errors: []string{"root: " + err.Error()}}
		}
		return Result{IsValid: false, Errors: renderLeaves(verr)}
	}

	return Result{IsValid: true, Errors: []string{}}
}

// IsValidJSON reports whether s parses as JSON.
func IsValidJSON(s string) bool {
	return json.Valid([]byte(s))
}

func compile(schema map[string]any) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schema); err != nil {
		return nil, err
	}
	return c.Compile("schema.json")
}

// renderLeaves flattens the validation error tree into one message per
// violation, preserving the validator's traversal order.
func renderLeaves(verr *jsonschema.ValidationError) []string {
	var out []string
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			out = append(out, renderError(e))
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(verr)

	if len(out) == 0 {
		out = []string{"Unknown validation error"}
	}
	return out
}

func renderError(e *jsonschema.ValidationError) string {
	path := "root"
	if len(e.InstanceLocation) > 0 {
		path = "/" + strings.Join(e.InstanceLocation, "/")
	}
	return path + ": " + e.ErrorKind.LocalizedString(printer)
}
