package diagram

import "regexp"

// nodeDeclRe matches a node declaration in Mermaid syntax: an identifier
// immediately followed by a shape opener ([, (, { or <).
var nodeDeclRe = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)[\[({<]`)

// mermaidKeywords are language tokens that match the node-declaration
// pattern but never declare a node.
var mermaidKeywords = map[string]bool{
	"graph":           true,
	"flowchart":       true,
	"sequenceDiagram": true,
	"classDiagram":    true,
	"erDiagram":       true,
	"TD":              true,
	"TB":              true,
	"LR":              true,
	"RL":              true,
	"BT":              true,
	"subgraph":        true,
	"end":             true,
	"style":           true,
	"class":           true,
	"click":           true,
	"linkStyle":       true,
	"classDef":        true,
}

// CountNodes approximates the number of distinct nodes declared in a
// Mermaid source string by lexical scanning. It is a heuristic, not a
// diagram-language parser, and is only ever used for relative comparison
// between a full and a simplified rendering of the same diagram.
func CountNodes(source string) int {
	seen := make(map[string]bool)
	for _, m := range nodeDeclRe.FindAllStringSubmatch(source, -1) {
		id := m[1]
		if mermaidKeywords[id] {
			continue
		}
		seen[id] = true
	}
	return len(seen)
}

// ValidateSimplified reports whether a simplified diagram is an acceptable
// stand-in for the full one: a simplification may not declare more nodes
// than the thing it simplifies. Equal counts are accepted — renaming
// without removing nodes is still a valid simplification.
func ValidateSimplified(simplified, full string) bool {
	return CountNodes(simplified) <= CountNodes(full)
}
