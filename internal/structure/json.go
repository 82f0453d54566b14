package structure

import (
	"encoding/json"
	"fmt"
)

// Accepted field-name aliases per logical field, tried in priority order at
// the normalization boundary. Models are inconsistent about casing and
// naming, so the alias policy is declarative rather than ad hoc.
var (
	filePathAliases    = []string{"filePaths", "file_paths", "relevant_files", "relevantFiles"}
	relatedPageAliases = []string{"relatedPages", "related_pages"}
	parentAliases      = []string{"parent_section", "parentSection"}
	sectionPageAliases = []string{"pages", "page_refs"}
	subsectionAliases  = []string{"subsections", "section_refs"}
	rootSectionAliases = []string{"rootSections", "root_sections"}
)

// jsonStrategy handles models that return JSON instead of the requested
// XML: pure JSON, JSON embedded in prose, and several alternate key
// spellings.
type jsonStrategy struct{}

func (jsonStrategy) name() string { return "JSON" }

func (jsonStrategy) attempt(text string) (*WikiStructure, error) {
	obj := extractJSONObject(text)
	if obj == nil {
		return nil, fmt.Errorf("no JSON object found in response")
	}
	return normalizeStructure(obj), nil
}

// extractJSONObject tries the whole text first, then scans for balanced
// { ... } spans and returns the first candidate that parses and looks like
// a wiki structure. The scanner tracks string literals and escapes so a
// brace inside a quoted value cannot mis-close a span.
func extractJSONObject(text string) map[string]any {
	var whole map[string]any
	if err := json.Unmarshal([]byte(text), &whole); err == nil {
		return whole
	}

	depth := 0
	start := -1
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inString && ch == '\\':
			escaped = true
		case depth > 0 && ch == '"':
			// String literals are only meaningful inside a candidate span;
			// quotes in surrounding prose must not derail the scan.
			inString = !inString
		case inString:
			// ignore braces inside string literals
		case ch == '{':
			if depth == 0 {
				start = i
			}
			depth++
		case ch == '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				var candidate map[string]any
				if err := json.Unmarshal([]byte(text[start:i+1]), &candidate); err == nil && looksLikeWikiStructure(candidate) {
					return candidate
				}
				start = -1
			}
		}
	}

	return nil
}

// looksLikeWikiStructure is a cheap heuristic filter for candidate JSON
// objects found embedded in prose.
func looksLikeWikiStructure(obj map[string]any) bool {
	if _, ok := obj["pages"]; ok {
		return true
	}
	if _, ok := obj["wiki_structure"]; ok {
		return true
	}
	if _, ok := obj["title"]; ok {
		if _, ok := obj["sections"]; ok {
			return true
		}
	}
	return false
}

// normalizeStructure converts whatever JSON shape the model produced into
// the canonical structure: wrapped ({"wiki_structure": {...}}), flat, or
// minimal ({"pages": [...]}).
func normalizeStructure(obj map[string]any) *WikiStructure {
	if inner, ok := obj["wiki_structure"].(map[string]any); ok {
		obj = inner
	}

	ws := &WikiStructure{
		Title:       stringField(obj, "title"),
		Description: stringField(obj, "description"),
	}

	if rawPages, ok := obj["pages"].([]any); ok {
		for i, rp := range rawPages {
			raw, ok := rp.(map[string]any)
			if !ok {
				continue
			}
			ws.Pages = append(ws.Pages, normalizePage(raw, i))
		}
	}

	if rawSections, ok := obj["sections"].([]any); ok {
		for i, rs := range rawSections {
			raw, ok := rs.(map[string]any)
			if !ok {
				continue
			}
			ws.Sections = append(ws.Sections, normalizeSection(raw, i))
		}
	}

	// A declared root-section list is trusted verbatim; otherwise compute
	// it from the subsection edges like the XML strategy does.
	ws.RootSections = firstAliasList(obj, rootSectionAliases)
	if len(ws.RootSections) == 0 && len(ws.Sections) > 0 {
		ws.RootSections = computeRootSections(ws.Sections)
	}

	return ws
}

// normalizePage normalizes one page object, tolerating every known key
// spelling for file paths and related pages.
func normalizePage(raw map[string]any, index int) PageSpec {
	page := PageSpec{
		ID:            stringField(raw, "id"),
		Title:         stringField(raw, "title"),
		Description:   stringField(raw, "description"),
		Importance:    coerceImportance(stringField(raw, "importance")),
		ParentSection: firstAliasString(raw, parentAliases),
	}
	if page.ID == "" {
		page.ID = fmt.Sprintf("page-%d", index+1)
	}

	for _, key := range filePathAliases {
		if paths := coerceStringList(raw[key], "file_path"); len(paths) > 0 {
			page.FilePaths = paths
			break
		}
	}
	for _, key := range relatedPageAliases {
		if related := coerceStringList(raw[key], "related"); len(related) > 0 {
			page.RelatedPages = related
			break
		}
	}

	return page
}

// normalizeSection normalizes one section object.
func normalizeSection(raw map[string]any, index int) SectionSpec {
	section := SectionSpec{
		ID:          stringField(raw, "id"),
		Title:       stringField(raw, "title"),
		Pages:       firstAliasList(raw, sectionPageAliases),
		Subsections: firstAliasList(raw, subsectionAliases),
	}
	if section.ID == "" {
		section.ID = fmt.Sprintf("section-%d", index+1)
	}
	return section
}

// stringField returns the value under key as a string, or "" when the key
// is absent or not a string.
func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// firstAliasString returns the first non-empty string found under any of
// the given keys.
func firstAliasString(obj map[string]any, aliases []string) string {
	for _, key := range aliases {
		if s := stringField(obj, key); s != "" {
			return s
		}
	}
	return ""
}

// firstAliasList returns the first non-empty string list found under any
// of the given keys.
func firstAliasList(obj map[string]any, aliases []string) []string {
	for _, key := range aliases {
		if list := coerceStringList(obj[key], ""); len(list) > 0 {
			return list
		}
	}
	return nil
}

// coerceStringList accepts the shapes models actually emit for a list
// field: a list, a bare string (treated as a one-element list), or an
// object wrapping the list under nestedKey (e.g. {"file_path": [...]}).
// Non-string entries are stringified; empty entries are dropped.
func coerceStringList(v any, nestedKey string) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case []any:
		var out []string
		for _, item := range val {
			switch s := item.(type) {
			case string:
				if s != "" {
					out = append(out, s)
				}
			case nil:
				// skip
			default:
				out = append(out, fmt.Sprintf("%v", s))
			}
		}
		return out
	case map[string]any:
		if nestedKey == "" {
			return nil
		}
		return coerceStringList(val[nestedKey], "")
	default:
		return nil
	}
}
