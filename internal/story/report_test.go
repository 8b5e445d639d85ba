package story

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() *StoryPlan {
	return &StoryPlan{
		Inputs: &Inputs{Seed: "seed", Chapters: 30},
		Premise: &Premise{
			Logline:   "A cartographer maps a city that unmaps itself.",
			Paragraph: "Every night one street vanishes.",
			Protagonist: Protagonist{
				Name: "Ana", Want: "the perfect map", Need: "to let go", Flaw: "hoards the past",
			},
			Antagonist:      "The street-eater",
			Setting:         "Veyle",
			Stakes:          "The city itself",
			CentralConflict: "Preservation against forgetting",
			Themes:          []string{"memory", "loss"},
		},
		Outline: &Outline{
			Acts: []Act{
				{Act: 1, Title: "The First Vanishing", Purpose: "setup", Summary: "A street is gone.",
					KeyEvents: []string{"the map disagrees with the city"}, TurningPoint: "Ana notices"},
				{Act: 2, Title: "The Pattern", Purpose: "escalation", Summary: "It keeps happening.",
					TurningPoint: "Ana is seen"},
			},
			TensionCurve: []int{2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
		Chapters: &ChapterList{
			ChapterCount: 2,
			Chapters: []Chapter{
				{Number: 1, Title: "Ink and Absence", POV: "Ana", Act: 1,
					Goal: "verify the map", Conflict: "the street is gone", Outcome: "proof", Hook: "a second gap"},
				{Number: 2, Title: "The Second Gap", POV: "Ana", Act: 1,
					Goal: "find the pattern", Conflict: "no one remembers", Outcome: "a witness", Hook: "the witness vanishes"},
			},
		},
		RawPremise:  `{"logline":"raw premise"}`,
		RawOutline:  `{"acts":"raw outline"}`,
		RawChapters: `{"chapters":"raw chapters"}`,
	}
}

func TestRenderReport_Sections(t *testing.T) {
	report := RenderReport(testPlan())

	assert.Contains(t, report, "# Story Premise")
	assert.Contains(t, report, "**Logline:** A cartographer maps a city that unmaps itself.")
	assert.Contains(t, report, "- Protagonist: Ana — wants the perfect map, needs to let go, flaw: hoards the past")
	assert.Contains(t, report, "- Themes: memory, loss")

	assert.Contains(t, report, "# Nine-Act Outline")
	assert.Contains(t, report, "## Act 1: The First Vanishing")
	assert.Contains(t, report, "Turning point: Ana notices")
	assert.Contains(t, report, "Tension curve: 2 → 3 → 4 → 5 → 6 → 7 → 8 → 9 → 10")

	assert.Contains(t, report, "## Chapter 1: Ink and Absence")
	assert.Contains(t, report, "- POV: Ana")
	assert.Contains(t, report, "- Goal: verify the map")
	assert.Contains(t, report, "- Conflict: the street is gone")
	assert.Contains(t, report, "- Outcome: proof")
	assert.Contains(t, report, "- Hook: a second gap")

	// Chapters render in returned order
	require.Less(t, strings.Index(report, "## Chapter 1:"), strings.Index(report, "## Chapter 2:"))
}

func TestRenderReport_HeaderUsesReturnedCount(t *testing.T) {
	plan := testPlan()
	// The model was asked for 30 but returned 2; the header reports reality.
	plan.Inputs.Chapters = 30

	report := RenderReport(plan)

	assert.Contains(t, report, "# Chapter Outline (2 chapters)")
	assert.NotContains(t, report, "(30 chapters)")
}

func TestRenderReport_RawJSONVerbatim(t *testing.T) {
	report := RenderReport(testPlan())

	premiseIdx := strings.Index(report, "## Raw Premise JSON")
	outlineIdx := strings.Index(report, "## Raw Outline JSON")
	chaptersIdx := strings.Index(report, "## Raw Chapters JSON")

	require.GreaterOrEqual(t, premiseIdx, 0)
	require.Less(t, premiseIdx, outlineIdx)
	require.Less(t, outlineIdx, chaptersIdx)

	assert.Contains(t, report, `{"logline":"raw premise"}`)
	assert.Contains(t, report, `{"acts":"raw outline"}`)
	assert.Contains(t, report, `{"chapters":"raw chapters"}`)
}
