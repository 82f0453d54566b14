package structure

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

var (
	xmlBlockRe = regexp.MustCompile(`(?s)<wiki_structure>.*?</wiki_structure>`)

	// ASCII control characters that are illegal in XML and common in raw
	// model output.
	controlCharRe = regexp.MustCompile("[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]")

	// Matches either a recognized entity prefix or a bare ampersand. The
	// entity alternatives are listed first so a bare "&" only matches when
	// no entity starts at that position.
	ampersandRe = regexp.MustCompile(`&(?:amp;|lt;|gt;|apos;|quot;|#)|&`)
)

// xmlStrategy parses the first <wiki_structure> block as an XML tree after
// repairing the most common LLM mistakes (control characters, unescaped
// ampersands).
type xmlStrategy struct{}

func (xmlStrategy) name() string { return "XML" }

func (xmlStrategy) attempt(text string) (*WikiStructure, error) {
	block := xmlBlockRe.FindString(text)
	if block == "" {
		return nil, fmt.Errorf("no <wiki_structure> XML block found in response")
	}

	block = controlCharRe.ReplaceAllString(block, "")
	block = repairAmpersands(block)

	var root xmlNode
	if err := xml.Unmarshal([]byte(block), &root); err != nil {
		return nil, fmt.Errorf("parsing XML block: %w", err)
	}

	ws := &WikiStructure{
		Title:       root.childText("title"),
		Description: root.childText("description"),
	}

	root.walk(func(n *xmlNode) {
		switch n.XMLName.Local {
		case "page":
			page := PageSpec{
				ID:            n.attr("id"),
				Title:         n.childText("title"),
				Description:   n.childText("description"),
				Importance:    coerceImportance(n.childText("importance")),
				FilePaths:     n.collectText("file_path"),
				RelatedPages:  n.collectText("related"),
				ParentSection: n.childText("parent_section"),
			}
			if page.ID == "" {
				page.ID = fmt.Sprintf("page-%d", len(ws.Pages)+1)
			}
			ws.Pages = append(ws.Pages, page)
		case "section":
			section := SectionSpec{
				ID:          n.attr("id"),
				Title:       n.childText("title"),
				Pages:       n.collectText("page_ref"),
				Subsections: n.collectText("section_ref"),
			}
			if section.ID == "" {
				section.ID = fmt.Sprintf("section-%d", len(ws.Sections)+1)
			}
			ws.Sections = append(ws.Sections, section)
		}
	})

	ws.RootSections = computeRootSections(ws.Sections)
	return ws, nil
}

// repairAmpersands escapes bare "&" characters that are not already part of
// a recognized entity. Unescaped ampersands are the single most common LLM
// XML error.
func repairAmpersands(s string) string {
	return ampersandRe.ReplaceAllStringFunc(s, func(m string) string {
		if m == "&" {
			return "&amp;"
		}
		return m
	})
}

// xmlNode is a generic element tree: any well-formed XML decodes into it,
// so pages and sections can be collected at any depth without a fixed
// document schema.
type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []xmlNode  `xml:",any"`
}

// walk visits the node and all descendants in document order.
func (n *xmlNode) walk(fn func(*xmlNode)) {
	fn(n)
	for i := range n.Nodes {
		n.Nodes[i].walk(fn)
	}
}

// attr returns the named attribute value, or "" if absent.
func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// childText returns the trimmed text of the first direct child with the
// given element name, or "" if there is none.
func (n *xmlNode) childText(name string) string {
	for i := range n.Nodes {
		if n.Nodes[i].XMLName.Local == name {
			return strings.TrimSpace(n.Nodes[i].Text)
		}
	}
	return ""
}

// collectText returns the trimmed non-empty text of every descendant with
// the given element name, in document order.
func (n *xmlNode) collectText(name string) []string {
	var out []string
	n.walk(func(c *xmlNode) {
		if c.XMLName.Local != name {
			return
		}
		if text := strings.TrimSpace(c.Text); text != "" {
			out = append(out, text)
		}
	})
	return out
}
