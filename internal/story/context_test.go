package story

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextBlock_PreferencesAndFences(t *testing.T) {
	inputs := BuildInputs(&RawForm{Fields: map[string]string{
		"seed":     "a city that forgets one street every night",
		"genre":    "urban fantasy",
		"pacing":   "fast",
		"tone":     "wry, melancholy",
		"chapters": "24",
		"nogo":     "no romance subplot",
	}})

	block := inputs.ContextBlock()

	assert.Contains(t, block, "- Genre: urban fantasy")
	assert.Contains(t, block, "- Pacing: fast")
	assert.Contains(t, block, "- Tone: wry, melancholy")
	assert.Contains(t, block, "- Target chapter count: 24")
	assert.Contains(t, block, "- Hard constraints (never include): no romance subplot")

	// Seed is fenced as untrusted data
	assert.Contains(t, block, dataFenceOpen+"\na city that forgets one street every night\n"+dataFenceClose)
}

func TestContextBlock_FileSections(t *testing.T) {
	inputs := BuildInputs(&RawForm{
		Fields: map[string]string{"seed": "seed"},
		World:  []UploadedFile{{Name: "world.md", Data: []byte("the street-eater")}},
		Characters: []UploadedFile{
			{Name: "ana.txt", Data: []byte("Ana the cartographer")},
			{Name: "brix.txt", Data: []byte("Brix the archivist")},
		},
	})

	block := inputs.ContextBlock()

	assert.Contains(t, block, "## World Bible")
	assert.Contains(t, block, "the street-eater")
	assert.Contains(t, block, "### ana.txt\nAna the cartographer")
	assert.Contains(t, block, "### brix.txt\nBrix the archivist")

	// Character sheets keep upload order
	require.Less(t, strings.Index(block, "### ana.txt"), strings.Index(block, "### brix.txt"))
}

func TestContextBlock_OmitsEmptySections(t *testing.T) {
	inputs := BuildInputs(&RawForm{Fields: map[string]string{"seed": "seed"}})

	block := inputs.ContextBlock()

	assert.NotContains(t, block, "## World Bible")
	assert.NotContains(t, block, "## Character Sheets")
	assert.NotContains(t, block, "Hard constraints")
}
