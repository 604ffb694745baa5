package queryknot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructions_Deterministic(t *testing.T) {
	assert.Equal(t, Instructions(), Instructions())
	assert.Equal(t, InstructionsV1, Instructions())
	assert.Equal(t, "1", InstructionsVersion)
}

func TestInstructions_CoversGrammar(t *testing.T) {
	text := Instructions()

	// The prompt text must describe every construct the parser accepts.
	for _, want := range []string{
		"QueryKnot",
		"dot separated",
		"double quotes",
		"true",
		"false",
		"square brackets",
	} {
		assert.Contains(t, text, want)
	}

	// The example block must itself be valid QueryKnot once dedented.
	var lines []string
	inExample := false
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "Example QueryKnot Output:") {
			inExample = true
			continue
		}
		if inExample && strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	assert.NotEmpty(t, lines)

	_, err := ParseToMap(strings.Join(lines, "\n"))
	assert.NoError(t, err, "example block in the instructions must parse")
}
