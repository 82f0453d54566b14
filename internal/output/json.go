// internal/output/json.go
package output

import (
	"encoding/json"

	"github.com/julianshen/wikiplan/internal/structure"
)

// JSONFormatter outputs the wiki structure as canonical JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format marshals the wiki structure as indented JSON.
func (f *JSONFormatter) Format(ws *structure.WikiStructure) ([]byte, error) {
	return json.MarshalIndent(ws, "", "  ")
}
