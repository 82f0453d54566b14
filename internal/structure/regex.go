package structure

import (
	"fmt"
	"regexp"
	"strings"
)

// Span-level patterns for the last-resort strategy. These tolerate XML that
// is not well-formed enough to parse as a tree, as long as the individual
// page/section spans are intact.
var (
	reBlock       = regexp.MustCompile(`(?s)<wiki_structure>(.*?)</wiki_structure>`)
	reTitle       = regexp.MustCompile(`(?s)<title>(.*?)</title>`)
	reDescription = regexp.MustCompile(`(?s)<description>(.*?)</description>`)
	reImportance  = regexp.MustCompile(`(?s)<importance>(.*?)</importance>`)
	rePage        = regexp.MustCompile(`(?s)<page\s+id="([^"]*)">(.*?)</page>`)
	reFilePath    = regexp.MustCompile(`(?s)<file_path>(.*?)</file_path>`)
	reRelated     = regexp.MustCompile(`(?s)<related>(.*?)</related>`)
	reParent      = regexp.MustCompile(`(?s)<parent_section>(.*?)</parent_section>`)
	reSection     = regexp.MustCompile(`(?s)<section\s+id="([^"]*)">(.*?)</section>`)
	rePageRef     = regexp.MustCompile(`(?s)<page_ref>(.*?)</page_ref>`)
	reSectionRef  = regexp.MustCompile(`(?s)<section_ref>(.*?)</section_ref>`)
)

// regexStrategy extracts the structure with plain pattern matching, with no
// structural parser at all. It is the last resort when both XML and JSON
// parsing fail on malformed output.
type regexStrategy struct{}

func (regexStrategy) name() string { return "Regex" }

func (regexStrategy) attempt(text string) (*WikiStructure, error) {
	// When no wiki_structure block is present, the whole text may be the
	// block body (e.g. a missing closing tag).
	body := text
	if m := reBlock.FindStringSubmatch(text); m != nil {
		body = m[1]
	}

	ws := &WikiStructure{
		Title:       firstCapture(reTitle, body),
		Description: firstCapture(reDescription, body),
	}

	for _, m := range rePage.FindAllStringSubmatch(body, -1) {
		inner := m[2]
		ws.Pages = append(ws.Pages, PageSpec{
			ID:            m[1],
			Title:         firstCapture(reTitle, inner),
			Description:   firstCapture(reDescription, inner),
			Importance:    coerceImportance(firstCapture(reImportance, inner)),
			FilePaths:     allCaptures(reFilePath, inner),
			RelatedPages:  allCaptures(reRelated, inner),
			ParentSection: firstCapture(reParent, inner),
		})
	}

	for _, m := range reSection.FindAllStringSubmatch(body, -1) {
		inner := m[2]
		ws.Sections = append(ws.Sections, SectionSpec{
			ID:          m[1],
			Title:       firstCapture(reTitle, inner),
			Pages:       allCaptures(rePageRef, inner),
			Subsections: allCaptures(reSectionRef, inner),
		})
	}

	if len(ws.Pages) == 0 {
		return nil, fmt.Errorf("regex extraction found no pages")
	}

	ws.RootSections = computeRootSections(ws.Sections)
	return ws, nil
}

// firstCapture returns the trimmed first capture group of the first match,
// or "" if the pattern does not match.
func firstCapture(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// allCaptures returns the trimmed first capture group of every match.
func allCaptures(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, strings.TrimSpace(m[1]))
	}
	return out
}
