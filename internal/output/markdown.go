// internal/output/markdown.go
package output

import (
	"fmt"
	"strings"

	"github.com/julianshen/wikiplan/internal/structure"
)

// MarkdownFormatter outputs the wiki structure as a human-readable
// Markdown outline.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format renders the wiki structure as Markdown: title, description, the
// section tree, and a page table.
func (f *MarkdownFormatter) Format(ws *structure.WikiStructure) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", ws.Title)
	if ws.Description != "" {
		b.WriteString("\n")
		b.WriteString(ws.Description)
		b.WriteString("\n")
	}

	if len(ws.Sections) > 0 {
		b.WriteString("\n## Sections\n\n")
		for _, section := range ws.Sections {
			fmt.Fprintf(&b, "- **%s** (`%s`)", section.Title, section.ID)
			var details []string
			if len(section.Pages) > 0 {
				details = append(details, "pages: "+strings.Join(section.Pages, ", "))
			}
			if len(section.Subsections) > 0 {
				details = append(details, "subsections: "+strings.Join(section.Subsections, ", "))
			}
			if len(details) > 0 {
				fmt.Fprintf(&b, " — %s", strings.Join(details, "; "))
			}
			b.WriteString("\n")
		}
	}

	if len(ws.Pages) > 0 {
		b.WriteString("\n## Pages\n\n")
		b.WriteString("| ID | Title | Importance | Files |\n")
		b.WriteString("|----|-------|------------|-------|\n")
		for _, page := range ws.Pages {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				page.ID, page.Title, page.Importance, strings.Join(page.FilePaths, ", "))
		}
	}

	return []byte(b.String()), nil
}
