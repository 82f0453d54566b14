// Package structure recovers a canonical wiki structure from raw LLM output.
// Models frequently emit malformed XML, alternate JSON shapes, or
// markdown-fenced mixes of both, so parsing tries three independent
// strategies in a fixed order (XML, JSON, regex) and normalizes whatever
// succeeds into one schema. The package also serializes that schema back
// into the canonical XML wire format.
package structure

// Importance levels for a wiki page. Any other value collapses to
// ImportanceMedium during normalization.
const (
	ImportanceHigh   = "high"
	ImportanceMedium = "medium"
	ImportanceLow    = "low"
)

// WikiStructure is the canonical output of parsing: the plan an LLM
// produces before any page content is written.
type WikiStructure struct {
	Title        string        `json:"title" yaml:"title"`
	Description  string        `json:"description" yaml:"description"`
	Pages        []PageSpec    `json:"pages" yaml:"pages"`
	Sections     []SectionSpec `json:"sections" yaml:"sections"`
	RootSections []string      `json:"rootSections" yaml:"rootSections"`
}

// PageSpec describes a single planned wiki page. Content is always empty
// after parsing; a generation step outside this package fills it in later.
type PageSpec struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	FilePaths     []string `json:"filePaths" yaml:"filePaths"`
	Importance    string   `json:"importance" yaml:"importance"`
	RelatedPages  []string `json:"relatedPages" yaml:"relatedPages"`
	Content       string   `json:"content" yaml:"content"`
	ParentSection string   `json:"parent_section,omitempty" yaml:"parent_section,omitempty"`
}

// SectionSpec describes one node of the section forest. Pages and
// Subsections hold opaque id references; dangling references are legal and
// never checked here.
type SectionSpec struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Pages       []string `json:"pages" yaml:"pages"`
	Subsections []string `json:"subsections" yaml:"subsections"`
}

// coerceImportance collapses anything outside the known levels to medium.
// Importance is advisory metadata, so unknown values never fail a parse.
func coerceImportance(v string) string {
	switch v {
	case ImportanceHigh, ImportanceMedium, ImportanceLow:
		return v
	default:
		return ImportanceMedium
	}
}

// computeRootSections returns the ids of sections never referenced as a
// subsection of another section. It only inspects declared edges and never
// traverses, so it terminates even on cyclic input.
func computeRootSections(sections []SectionSpec) []string {
	referenced := make(map[string]bool)
	for _, s := range sections {
		for _, sub := range s.Subsections {
			referenced[sub] = true
		}
	}
	var roots []string
	for _, s := range sections {
		if !referenced[s.ID] {
			roots = append(roots, s.ID)
		}
	}
	return roots
}
