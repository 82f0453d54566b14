// Package diagram extracts structured diagram descriptors embedded in
// generated wiki page content. Descriptors are marker-delimited JSON blocks
// written by the model alongside the rendered Mermaid source; extraction is
// permissive and never fails as a whole — invalid blocks are logged and
// dropped.
package diagram

import "fmt"

// Edge types describing the relationship a diagram edge represents.
const (
	EdgeDependency = "dependency"
	EdgeDataFlow   = "data_flow"
	EdgeAPICall    = "api_call"
)

// Diagram types supported by the renderer.
const (
	TypeFlowchart = "flowchart"
	TypeSequence  = "sequence"
	TypeClass     = "class"
	TypeER        = "er"
)

// Node is one component in a diagram.
type Node struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Technology  string   `json:"technology,omitempty"`
	Files       []string `json:"files,omitempty"`
	Description string   `json:"description,omitempty"`
	Depth       int      `json:"depth,omitempty"`
}

// Edge connects two diagram nodes by id.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label,omitempty"`
	Type   string `json:"type,omitempty"`
}

// Data is one validated diagram descriptor recovered from page content.
// SimplifiedMermaidSource is nil when the source block omitted it or when
// the simplified variant failed the consistency check against the full
// source.
type Data struct {
	Nodes                   []Node  `json:"nodes"`
	Edges                   []Edge  `json:"edges"`
	MermaidSource           string  `json:"mermaidSource"`
	DiagramType             string  `json:"diagramType,omitempty"`
	LayerLevel              *int    `json:"layerLevel,omitempty"`
	SimplifiedMermaidSource *string `json:"simplifiedMermaidSource,omitempty"`
}

// applyDefaults fills the schema defaults for fields the source omitted.
func (d *Data) applyDefaults() {
	if d.DiagramType == "" {
		d.DiagramType = TypeFlowchart
	}
	for i := range d.Edges {
		if d.Edges[i].Type == "" {
			d.Edges[i].Type = EdgeDependency
		}
	}
}

// Validate checks the descriptor against the diagram schema: nodes and
// edges must be present (an empty list is fine, a missing one is not),
// every node needs an id and label, every edge a source, target, and known
// type, and the Mermaid source must be non-empty.
func (d *Data) Validate() error {
	if d.Nodes == nil {
		return fmt.Errorf("nodes: field is required")
	}
	if d.Edges == nil {
		return fmt.Errorf("edges: field is required")
	}
	if d.MermaidSource == "" {
		return fmt.Errorf("mermaidSource: field is required")
	}
	switch d.DiagramType {
	case TypeFlowchart, TypeSequence, TypeClass, TypeER:
	default:
		return fmt.Errorf("diagramType: unknown value %q", d.DiagramType)
	}
	for i, n := range d.Nodes {
		if n.ID == "" {
			return fmt.Errorf("nodes[%d]: id is required", i)
		}
		if n.Label == "" {
			return fmt.Errorf("nodes[%d]: label is required", i)
		}
	}
	for i, e := range d.Edges {
		if e.Source == "" {
			return fmt.Errorf("edges[%d]: source is required", i)
		}
		if e.Target == "" {
			return fmt.Errorf("edges[%d]: target is required", i)
		}
		switch e.Type {
		case EdgeDependency, EdgeDataFlow, EdgeAPICall:
		default:
			return fmt.Errorf("edges[%d]: unknown type %q", i, e.Type)
		}
	}
	return nil
}
