// internal/output/yaml.go
package output

import (
	"gopkg.in/yaml.v3"

	"github.com/julianshen/wikiplan/internal/structure"
)

// YAMLFormatter outputs the wiki structure as YAML, for operators who want
// a human-scannable plan dump.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAMLFormatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format marshals the wiki structure as YAML.
func (f *YAMLFormatter) Format(ws *structure.WikiStructure) ([]byte, error) {
	return yaml.Marshal(ws)
}
