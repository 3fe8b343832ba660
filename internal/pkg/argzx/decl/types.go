package decl

import "encoding/json"

// Declaration is one entry of a declaration file. Default keeps its raw JSON
// so the value's type can pick the flag kind.
type Declaration struct {
	Name        string          `json:"name"`
	Default     json.RawMessage `json:"default"`
	Alias       []string        `json:"alias,omitempty"`
	Description string          `json:"description,omitempty"`
}
