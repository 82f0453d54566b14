package diagram

import (
	"encoding/json"
	"log"
	"regexp"
)

// Markers the model uses to wrap structured diagram JSON inside page
// content.
const (
	StartMarker = "<!-- DIAGRAM_DATA_START -->"
	EndMarker   = "<!-- DIAGRAM_DATA_END -->"
)

var blockRe = regexp.MustCompile(
	`(?s)` + regexp.QuoteMeta(StartMarker) + `\s*(.*?)\s*` + regexp.QuoteMeta(EndMarker),
)

// Extract returns every validated diagram descriptor found in the given
// page content, in source order. It never fails: blocks with malformed
// JSON or schema violations are logged and skipped, and a descriptor whose
// simplified Mermaid source is inconsistent with the full source keeps the
// descriptor but loses the simplified field. A single bad diagram must not
// block the rest of a page.
func Extract(content string) []Data {
	var results []Data
	for _, m := range blockRe.FindAllStringSubmatch(content, -1) {
		var d Data
		if err := json.Unmarshal([]byte(m[1]), &d); err != nil {
			log.Printf("WARNING: skipping diagram data block with invalid JSON: %v", err)
			continue
		}
		d.applyDefaults()
		if err := d.Validate(); err != nil {
			log.Printf("WARNING: skipping diagram data block that failed validation: %v", err)
			continue
		}
		if d.SimplifiedMermaidSource != nil && !ValidateSimplified(*d.SimplifiedMermaidSource, d.MermaidSource) {
			log.Printf("WARNING: discarding simplified diagram source with more nodes than the full source")
			d.SimplifiedMermaidSource = nil
		}
		results = append(results, d)
	}
	return results
}
