// internal/output/xml.go
package output

import "github.com/julianshen/wikiplan/internal/structure"

// XMLFormatter outputs the wiki structure in the canonical XML wire format.
type XMLFormatter struct{}

// NewXMLFormatter creates a new XMLFormatter.
func NewXMLFormatter() *XMLFormatter {
	return &XMLFormatter{}
}

// Format renders the wiki structure as canonical XML.
func (f *XMLFormatter) Format(ws *structure.WikiStructure) ([]byte, error) {
	return []byte(structure.ToXML(ws) + "\n"), nil
}
