package story

import (
	"fmt"
	"strings"
)

// Delimiters marking untrusted story data inside prompts. The system prompt
// for every stage instructs the model that fenced content is data, never
// instructions - a prompt-injection mitigation, not a guarantee.
const (
	dataFenceOpen  = "<<<STORY_DATA>>>"
	dataFenceClose = "<<<END_STORY_DATA>>>"
)

// ContextBlock renders the single shared context string consumed read-only by
// all three generation stages. Built once per request.
func (in *Inputs) ContextBlock() string {
	var b strings.Builder

	b.WriteString("## Story Preferences\n")
	fmt.Fprintf(&b, "- Genre: %s\n", in.Genre)
	fmt.Fprintf(&b, "- Pacing: %s\n", in.Pacing)
	if len(in.Tone) > 0 {
		fmt.Fprintf(&b, "- Tone: %s\n", strings.Join(in.Tone, ", "))
	}
	fmt.Fprintf(&b, "- Target chapter count: %d\n", in.Chapters)
	if in.NoGo != "" {
		fmt.Fprintf(&b, "- Hard constraints (never include): %s\n", in.NoGo)
	}

	b.WriteString("\n## Story Seed\n")
	b.WriteString(dataFenceOpen + "\n")
	b.WriteString(in.Seed)
	b.WriteString("\n" + dataFenceClose + "\n")

	if in.WorldBible != "" {
		b.WriteString("\n## World Bible\n")
		b.WriteString(dataFenceOpen + "\n")
		b.WriteString(in.WorldBible)
		b.WriteString("\n" + dataFenceClose + "\n")
	}

	if len(in.Characters) > 0 {
		b.WriteString("\n## Character Sheets\n")
		b.WriteString(dataFenceOpen + "\n")
		for _, sheet := range in.Characters {
			fmt.Fprintf(&b, "### %s\n%s\n", sheet.Filename, sheet.Text)
		}
		b.WriteString(dataFenceClose + "\n")
	}

	return b.String()
}
