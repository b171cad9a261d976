package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples(t *testing.T) {
	examples := Examples()
	require.Len(t, examples, 5)

	want := [][]string{
		{"0", "1", "2", "3", "4"},
		{"0", "1", "2", "3", "0"},
		{"0", "1", "1", "1", "4"},
		{"0", "1", "1", "1", "0"},
		{"1", "2", "3", "4", "4", "4"},
	}
	for i, example := range examples {
		assert.NotEmpty(t, example.Title)
		assert.Equal(t, want[i], example.Lines, example.Title)
	}
}
