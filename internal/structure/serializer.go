package structure

import (
	"fmt"
	"strings"
)

// ToXML renders a WikiStructure into the canonical XML wire format consumed
// by the XML parsing strategy. It is total: every text field is escaped and
// importance values outside the known levels are coerced to medium at
// render time as a second defensive check. For a structure with canonical
// field values ToXML round-trips through the XML strategy.
func ToXML(ws *WikiStructure) string {
	var b strings.Builder
	b.WriteString("<wiki_structure>\n")
	fmt.Fprintf(&b, "  <title>%s</title>\n", xmlEscape(ws.Title))
	fmt.Fprintf(&b, "  <description>%s</description>\n", xmlEscape(ws.Description))

	if len(ws.Sections) > 0 {
		b.WriteString("  <sections>\n")
		for _, section := range ws.Sections {
			fmt.Fprintf(&b, "    <section id=\"%s\">\n", xmlEscape(section.ID))
			fmt.Fprintf(&b, "      <title>%s</title>\n", xmlEscape(section.Title))
			if len(section.Pages) > 0 {
				b.WriteString("      <pages>\n")
				for _, ref := range section.Pages {
					fmt.Fprintf(&b, "        <page_ref>%s</page_ref>\n", xmlEscape(ref))
				}
				b.WriteString("      </pages>\n")
			}
			if len(section.Subsections) > 0 {
				b.WriteString("      <subsections>\n")
				for _, ref := range section.Subsections {
					fmt.Fprintf(&b, "        <section_ref>%s</section_ref>\n", xmlEscape(ref))
				}
				b.WriteString("      </subsections>\n")
			}
			b.WriteString("    </section>\n")
		}
		b.WriteString("  </sections>\n")
	}

	b.WriteString("  <pages>\n")
	for _, page := range ws.Pages {
		fmt.Fprintf(&b, "    <page id=\"%s\">\n", xmlEscape(page.ID))
		fmt.Fprintf(&b, "      <title>%s</title>\n", xmlEscape(page.Title))
		fmt.Fprintf(&b, "      <description>%s</description>\n", xmlEscape(page.Description))
		fmt.Fprintf(&b, "      <importance>%s</importance>\n", coerceImportance(page.Importance))
		if len(page.FilePaths) > 0 {
			b.WriteString("      <relevant_files>\n")
			for _, fp := range page.FilePaths {
				fmt.Fprintf(&b, "        <file_path>%s</file_path>\n", xmlEscape(fp))
			}
			b.WriteString("      </relevant_files>\n")
		}
		if len(page.RelatedPages) > 0 {
			b.WriteString("      <related_pages>\n")
			for _, rp := range page.RelatedPages {
				fmt.Fprintf(&b, "        <related>%s</related>\n", xmlEscape(rp))
			}
			b.WriteString("      </related_pages>\n")
		}
		if page.ParentSection != "" {
			fmt.Fprintf(&b, "      <parent_section>%s</parent_section>\n", xmlEscape(page.ParentSection))
		}
		b.WriteString("    </page>\n")
	}
	b.WriteString("  </pages>\n")
	b.WriteString("</wiki_structure>")

	return b.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// xmlEscape escapes the five special XML characters in a text field.
func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
