package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountNodes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   int
	}{
		{"empty", "", 0},
		{"single node", "graph TD\n A[X]", 1},
		{"chain of three", "graph TD\n A[X] --> B[Y] --> C[Z]", 3},
		{"duplicate declarations count once", "graph TD\n A[X]\n A[X] --> B[Y]", 2},
		{"round and curly shapes", "flowchart LR\n A(Start) --> B{Decision}", 2},
		{"keywords excluded", "graph TD\n subgraph one\n A[X]\n end\n style A fill:#fff", 1},
		{"sequence diagram header excluded", "sequenceDiagram\n participant A", 0},
		{"class keyword excluded, member block counts", "classDiagram\n class Animal{\n +name\n }", 1},
		{"plain edges without shapes", "graph LR\n A --> B", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountNodes(tt.source))
		})
	}
}

func TestValidateSimplified(t *testing.T) {
	full := "graph TD\n A[X] --> B[Y] --> C[Z]"

	assert.True(t, ValidateSimplified("graph TD\n A[X]", full), "fewer nodes is valid")
	assert.True(t, ValidateSimplified(full, full), "equal counts are valid")
	assert.False(t, ValidateSimplified(full, "graph TD\n A[X]"), "more nodes than full is invalid")
}
