package story

// Premise is the first stage's structured result.
type Premise struct {
	Logline         string      `json:"logline"`
	Paragraph       string      `json:"paragraph"`
	Protagonist     Protagonist `json:"protagonist"`
	Antagonist      string      `json:"antagonist"`
	Setting         string      `json:"setting"`
	Stakes          string      `json:"stakes"`
	CentralConflict string      `json:"central_conflict"`
	Themes          []string    `json:"themes"`
}

// Protagonist describes the lead character in want/need/flaw terms.
type Protagonist struct {
	Name string `json:"name"`
	Want string `json:"want"`
	Need string `json:"need"`
	Flaw string `json:"flaw"`
}

// Outline is the second stage's structured result: exactly nine acts plus a
// nine-element tension curve. The 1-10 range on curve values is requested in
// the prompt but not schema-enforced.
type Outline struct {
	Acts         []Act `json:"acts"`
	TensionCurve []int `json:"tension_curve"`
}

// Act is one of the nine outline acts.
type Act struct {
	Act          int      `json:"act"`
	Title        string   `json:"title"`
	Purpose      string   `json:"purpose"`
	Summary      string   `json:"summary"`
	KeyEvents    []string `json:"key_events"`
	TurningPoint string   `json:"turning_point"`
}

// ChapterList is the third stage's structured result. ChapterCount is whatever
// the model returned; equality with the requested target is advisory only.
type ChapterList struct {
	ChapterCount int       `json:"chapter_count"`
	Chapters     []Chapter `json:"chapters"`
}

// Chapter is one chapter breakdown entry.
type Chapter struct {
	Number   int    `json:"number"`
	Title    string `json:"title"`
	POV      string `json:"pov"`
	Act      int    `json:"act"`
	Goal     string `json:"goal"`
	Conflict string `json:"conflict"`
	Outcome  string `json:"outcome"`
	Hook     string `json:"hook"`
}

// StoryPlan bundles the three stage results together with the raw JSON text
// each stage returned. The raw strings are fed verbatim into later stages and
// reproduced verbatim in the report.
type StoryPlan struct {
	Inputs   *Inputs
	Premise  *Premise
	Outline  *Outline
	Chapters *ChapterList

	RawPremise  string
	RawOutline  string
	RawChapters string
}
