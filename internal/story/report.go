package story

import (
	"fmt"
	"strings"
)

// RenderReport produces the final plain-text artifact: human-readable sections
// for premise, outline, and chapters, followed by the three raw structured
// results verbatim for downstream copy-paste use. Pure function of the plan.
func RenderReport(plan *StoryPlan) string {
	var b strings.Builder

	b.WriteString("# Story Premise\n\n")
	fmt.Fprintf(&b, "**Logline:** %s\n\n", plan.Premise.Logline)
	b.WriteString(plan.Premise.Paragraph + "\n\n")
	fmt.Fprintf(&b, "- Protagonist: %s — wants %s, needs %s, flaw: %s\n",
		plan.Premise.Protagonist.Name,
		plan.Premise.Protagonist.Want,
		plan.Premise.Protagonist.Need,
		plan.Premise.Protagonist.Flaw)
	fmt.Fprintf(&b, "- Antagonist: %s\n", plan.Premise.Antagonist)
	fmt.Fprintf(&b, "- Setting: %s\n", plan.Premise.Setting)
	fmt.Fprintf(&b, "- Stakes: %s\n", plan.Premise.Stakes)
	fmt.Fprintf(&b, "- Central conflict: %s\n", plan.Premise.CentralConflict)
	if len(plan.Premise.Themes) > 0 {
		fmt.Fprintf(&b, "- Themes: %s\n", strings.Join(plan.Premise.Themes, ", "))
	}

	b.WriteString("\n# Nine-Act Outline\n\n")
	for _, act := range plan.Outline.Acts {
		fmt.Fprintf(&b, "## Act %d: %s\n", act.Act, act.Title)
		fmt.Fprintf(&b, "Purpose: %s\n\n", act.Purpose)
		b.WriteString(act.Summary + "\n\n")
		if len(act.KeyEvents) > 0 {
			b.WriteString("Key events:\n")
			for _, event := range act.KeyEvents {
				fmt.Fprintf(&b, "- %s\n", event)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Turning point: %s\n\n", act.TurningPoint)
	}

	if len(plan.Outline.TensionCurve) > 0 {
		curve := make([]string, len(plan.Outline.TensionCurve))
		for i, v := range plan.Outline.TensionCurve {
			curve[i] = fmt.Sprintf("%d", v)
		}
		fmt.Fprintf(&b, "Tension curve: %s\n", strings.Join(curve, " → "))
	}

	// Header carries the returned count, which may differ from the request.
	fmt.Fprintf(&b, "\n# Chapter Outline (%d chapters)\n\n", plan.Chapters.ChapterCount)
	for _, ch := range plan.Chapters.Chapters {
		fmt.Fprintf(&b, "## Chapter %d: %s\n", ch.Number, ch.Title)
		fmt.Fprintf(&b, "- POV: %s\n", ch.POV)
		fmt.Fprintf(&b, "- Goal: %s\n", ch.Goal)
		fmt.Fprintf(&b, "- Conflict: %s\n", ch.Conflict)
		fmt.Fprintf(&b, "- Outcome: %s\n", ch.Outcome)
		fmt.Fprintf(&b, "- Hook: %s\n\n", ch.Hook)
	}

	b.WriteString("---\n\n")
	b.WriteString("## Raw Premise JSON\n\n")
	b.WriteString(plan.RawPremise + "\n\n")
	b.WriteString("## Raw Outline JSON\n\n")
	b.WriteString(plan.RawOutline + "\n\n")
	b.WriteString("## Raw Chapters JSON\n\n")
	b.WriteString(plan.RawChapters + "\n")

	return b.String()
}
