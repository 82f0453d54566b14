// internal/output/formatter.go
package output

import (
	"fmt"

	"github.com/julianshen/wikiplan/internal/structure"
)

// Formatter renders a parsed wiki structure into output bytes.
type Formatter interface {
	Format(ws *structure.WikiStructure) ([]byte, error)
}

// New returns the formatter for the given format name.
// Supported formats: json, xml, yaml, markdown.
func New(format string) (Formatter, error) {
	switch format {
	case "json":
		return NewJSONFormatter(), nil
	case "xml":
		return NewXMLFormatter(), nil
	case "yaml":
		return NewYAMLFormatter(), nil
	case "markdown":
		return NewMarkdownFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}
