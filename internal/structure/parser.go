package structure

import (
	"fmt"
	"regexp"
	"strings"
)

// strategy is one independent parsing approach. attempt returns a structure
// or an error; the orchestrator treats a structure with zero pages as a
// failure too, so strategies do not need to check that themselves.
type strategy interface {
	name() string
	attempt(text string) (*WikiStructure, error)
}

// strategies are tried in order; the first to yield at least one page wins.
// XML goes first because it is the canonical wire format — a well-formed
// XML block beats any JSON object embedded in the same text.
var strategies = []strategy{
	xmlStrategy{},
	jsonStrategy{},
	regexStrategy{},
}

// StrategyFailure records why one parsing strategy failed.
type StrategyFailure struct {
	Strategy string
	Reason   string
}

// ParseError is the only error Parse can return: all strategies exhausted
// without producing a page. It carries every strategy's failure reason so
// operators can see what was tried and why each attempt failed.
type ParseError struct {
	Failures []StrategyFailure
}

func (e *ParseError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Strategy, f.Reason))
	}
	return "all wiki structure parsing strategies failed: " + strings.Join(parts, "; ")
}

// Parse recovers a canonical WikiStructure from raw LLM output.
// A single pair of wrapping markdown code fences is stripped once, before
// any strategy runs. Strategy errors are collected, never propagated
// mid-sequence; if no strategy yields a structure with at least one page,
// Parse returns a *ParseError aggregating all recorded reasons.
func Parse(raw string) (*WikiStructure, error) {
	cleaned := stripCodeFences(raw)

	var failures []StrategyFailure
	for _, s := range strategies {
		ws, err := s.attempt(cleaned)
		if err != nil {
			failures = append(failures, StrategyFailure{Strategy: s.name(), Reason: err.Error()})
			continue
		}
		if ws == nil || len(ws.Pages) == 0 {
			failures = append(failures, StrategyFailure{Strategy: s.name(), Reason: "structure contains no pages"})
			continue
		}
		return ws, nil
	}

	return nil, &ParseError{Failures: failures}
}

var (
	openFenceRe  = regexp.MustCompile("^```(?:json|xml|javascript|typescript)?[ \t]*\n?")
	closeFenceRe = regexp.MustCompile("\n?```[ \t]*$")
)

// stripCodeFences removes a single pair of wrapping markdown code fences.
// The opening fence may carry a language tag; anything else is left alone.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	text = openFenceRe.ReplaceAllString(text, "")
	text = closeFenceRe.ReplaceAllString(text, "")
	return text
}
