package story

import (
	"strconv"
	"strings"
)

// Defaults applied by BuildInputs when a field is missing or blank.
const (
	DefaultGenre    = "TBD"
	DefaultPacing   = "balanced"
	DefaultChapters = 30
)

// UploadedFile is one file pulled out of the multipart form.
type UploadedFile struct {
	Name string
	Data []byte
}

// RawForm is the untyped result of multipart extraction: named string fields
// plus the uploaded files, in upload order.
type RawForm struct {
	Fields     map[string]string
	World      []UploadedFile
	Characters []UploadedFile
}

// CharacterSheet is one decoded character file.
type CharacterSheet struct {
	Filename string
	Text     string
}

// Inputs holds the normalized, immutable user inputs for one request.
type Inputs struct {
	Seed       string
	Genre      string
	Pacing     string
	Tone       []string
	Chapters   int
	NoGo       string
	WorldBible string
	Characters []CharacterSheet
}

// BuildInputs normalizes a RawForm into Inputs: strings are trimmed, missing
// genre/pacing/chapters fall back to defaults, tone is split on commas with
// empty segments dropped. File contents are decoded as UTF-8 with no charset
// detection. The chapter count is passed through unchecked - very large or
// negative values go straight to the model call.
func BuildInputs(raw *RawForm) *Inputs {
	field := func(name string) string {
		return strings.TrimSpace(raw.Fields[name])
	}

	inputs := &Inputs{
		Seed:     field("seed"),
		Genre:    field("genre"),
		Pacing:   field("pacing"),
		Tone:     splitTone(raw.Fields["tone"]),
		Chapters: parseChapters(field("chapters")),
		NoGo:     field("nogo"),
	}

	if inputs.Genre == "" {
		inputs.Genre = DefaultGenre
	}
	if inputs.Pacing == "" {
		inputs.Pacing = DefaultPacing
	}

	if len(raw.World) > 0 {
		inputs.WorldBible = string(raw.World[0].Data)
	}

	for _, f := range raw.Characters {
		inputs.Characters = append(inputs.Characters, CharacterSheet{
			Filename: f.Name,
			Text:     string(f.Data),
		})
	}

	return inputs
}

// splitTone splits a comma-separated tone string, trimming each element and
// dropping empty segments.
func splitTone(tone string) []string {
	var out []string
	for _, part := range strings.Split(tone, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseChapters(s string) int {
	if s == "" {
		return DefaultChapters
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return DefaultChapters
	}
	return n
}
