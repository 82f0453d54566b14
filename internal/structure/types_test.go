package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeRootSections(t *testing.T) {
	sections := []SectionSpec{
		{ID: "A", Subsections: []string{"B"}},
		{ID: "B"},
		{ID: "C"},
	}
	assert.Equal(t, []string{"A", "C"}, computeRootSections(sections))
}

func TestComputeRootSectionsTerminatesOnCycle(t *testing.T) {
	// Cycles are not checked; the computation only inspects declared edges.
	sections := []SectionSpec{
		{ID: "A", Subsections: []string{"B"}},
		{ID: "B", Subsections: []string{"A"}},
	}
	assert.Empty(t, computeRootSections(sections))
}

func TestComputeRootSectionsDanglingReference(t *testing.T) {
	// A subsection id that names no declared section is legal.
	sections := []SectionSpec{
		{ID: "A", Subsections: []string{"ghost"}},
	}
	assert.Equal(t, []string{"A"}, computeRootSections(sections))
}

func TestCoerceImportance(t *testing.T) {
	assert.Equal(t, ImportanceHigh, coerceImportance("high"))
	assert.Equal(t, ImportanceMedium, coerceImportance("medium"))
	assert.Equal(t, ImportanceLow, coerceImportance("low"))
	assert.Equal(t, ImportanceMedium, coerceImportance(""))
	assert.Equal(t, ImportanceMedium, coerceImportance("HIGH"))
	assert.Equal(t, ImportanceMedium, coerceImportance("critical"))
}
