package story

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/plotforge/plotforge-api/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProvider records every request and replays canned outputs in order.
type mockProvider struct {
	requests []*llm.GenerationRequest
	outputs  []string
	failAt   int // 1-based call index that fails; 0 means never
}

func (m *mockProvider) Generate(_ context.Context, req *llm.GenerationRequest) (*llm.GenerationResponse, error) {
	m.requests = append(m.requests, req)
	n := len(m.requests)
	if m.failAt == n {
		return nil, errors.New("provider unavailable")
	}
	return &llm.GenerationResponse{
		RawOutput: m.outputs[n-1],
		Usage:     llm.UsageTokens{InputTokens: 100, OutputTokens: 200, TotalTokens: 300},
	}, nil
}

func (m *mockProvider) Name() string { return "mock" }

func testPremiseJSON(t *testing.T) string {
	t.Helper()
	data, err := json.Marshal(Premise{
		Logline:   "A cartographer maps a city that unmaps itself.",
		Paragraph: "Every night one street vanishes from the city and from memory.",
		Protagonist: Protagonist{
			Name: "Ana",
			Want: "to finish the perfect map",
			Need: "to accept what cannot be kept",
			Flaw: "hoards the past",
		},
		Antagonist:      "The street-eater",
		Setting:         "The shifting city of Veyle",
		Stakes:          "The city itself",
		CentralConflict: "Preservation against forgetting",
		Themes:          []string{"memory", "loss"},
	})
	require.NoError(t, err)
	return string(data)
}

func testOutlineJSON(t *testing.T) string {
	t.Helper()
	outline := Outline{TensionCurve: []int{2, 3, 4, 5, 6, 7, 8, 9, 10}}
	for i := 1; i <= 9; i++ {
		outline.Acts = append(outline.Acts, Act{
			Act:          i,
			Title:        fmt.Sprintf("Act %d", i),
			Purpose:      "escalation",
			Summary:      "things get worse",
			KeyEvents:    []string{"an event"},
			TurningPoint: "no way back",
		})
	}
	data, err := json.Marshal(outline)
	require.NoError(t, err)
	return string(data)
}

func testChaptersJSON(t *testing.T, count int) string {
	t.Helper()
	list := ChapterList{ChapterCount: count}
	for i := 1; i <= count; i++ {
		list.Chapters = append(list.Chapters, Chapter{
			Number:   i,
			Title:    fmt.Sprintf("Chapter %d", i),
			POV:      "Ana",
			Act:      (i-1)/2 + 1,
			Goal:     "find the street",
			Conflict: "the map resists",
			Outcome:  "a partial truth",
			Hook:     "a door that was not there",
		})
	}
	data, err := json.Marshal(list)
	require.NoError(t, err)
	return string(data)
}

func testInputs(fields map[string]string) *Inputs {
	if fields == nil {
		fields = map[string]string{}
	}
	if _, ok := fields["seed"]; !ok {
		fields["seed"] = "a city that forgets one street every night"
	}
	return BuildInputs(&RawForm{Fields: fields})
}

func TestPlanner_ThreeCallsInOrder(t *testing.T) {
	premise := testPremiseJSON(t)
	outline := testOutlineJSON(t)
	chapters := testChaptersJSON(t, 18)

	provider := &mockProvider{outputs: []string{premise, outline, chapters}}
	planner := NewPlanner(provider, "gpt-5-mini")

	plan, err := planner.Plan(context.Background(), testInputs(map[string]string{"chapters": "18"}))
	require.NoError(t, err)
	require.Len(t, provider.requests, 3)

	// Fixed order premise -> outline -> chapters, identified by schema name
	assert.Equal(t, "story_premise", provider.requests[0].OutputSchema.Name)
	assert.Equal(t, "nine_act_outline", provider.requests[1].OutputSchema.Name)
	assert.Equal(t, "chapter_breakdown", provider.requests[2].OutputSchema.Name)

	// Each later call carries the serialized JSON of all prior results
	secondInput := provider.requests[1].InputArray[0]["content"].(string)
	assert.Contains(t, secondInput, premise)

	thirdInput := provider.requests[2].InputArray[0]["content"].(string)
	assert.Contains(t, thirdInput, premise)
	assert.Contains(t, thirdInput, outline)
	assert.Contains(t, thirdInput, "Target exactly 18 chapters")

	// Raw stage outputs are retained verbatim
	assert.Equal(t, premise, plan.RawPremise)
	assert.Equal(t, outline, plan.RawOutline)
	assert.Equal(t, chapters, plan.RawChapters)
	assert.Equal(t, 18, plan.Chapters.ChapterCount)
}

func TestPlanner_DefaultChapterTarget(t *testing.T) {
	provider := &mockProvider{outputs: []string{
		testPremiseJSON(t),
		testOutlineJSON(t),
		testChaptersJSON(t, 30),
	}}
	planner := NewPlanner(provider, "gpt-5-mini")

	_, err := planner.Plan(context.Background(), testInputs(nil))
	require.NoError(t, err)
	require.Len(t, provider.requests, 3)

	thirdInput := provider.requests[2].InputArray[0]["content"].(string)
	assert.Contains(t, thirdInput, "Target exactly 30 chapters")
}

func TestPlanner_StageParameters(t *testing.T) {
	provider := &mockProvider{outputs: []string{
		testPremiseJSON(t),
		testOutlineJSON(t),
		testChaptersJSON(t, 3),
	}}
	planner := NewPlanner(provider, "gpt-5-mini")

	_, err := planner.Plan(context.Background(), testInputs(nil))
	require.NoError(t, err)
	require.Len(t, provider.requests, 3)

	// Budgets grow per stage, temperatures fall
	assert.Equal(t, int64(premiseMaxTokens), provider.requests[0].MaxOutputTokens)
	assert.Equal(t, int64(outlineMaxTokens), provider.requests[1].MaxOutputTokens)
	assert.Equal(t, int64(chaptersMaxTokens), provider.requests[2].MaxOutputTokens)
	assert.Greater(t, provider.requests[0].Temperature, provider.requests[2].Temperature)

	// Every stage carries the untrusted-data rule
	for _, req := range provider.requests {
		assert.Contains(t, req.SystemPrompt, "untrusted story material")
		assert.Equal(t, "gpt-5-mini", req.Model)
	}
}

func TestPlanner_StageFailureAbortsPipeline(t *testing.T) {
	provider := &mockProvider{
		outputs: []string{testPremiseJSON(t), "", ""},
		failAt:  2,
	}
	planner := NewPlanner(provider, "gpt-5-mini")

	plan, err := planner.Plan(context.Background(), testInputs(nil))
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "outline generation failed")
	assert.Contains(t, err.Error(), "provider unavailable")

	// No later-stage call after a failure
	assert.Len(t, provider.requests, 2)
}

func TestPlanner_InvalidJSONAborts(t *testing.T) {
	provider := &mockProvider{outputs: []string{"this is not json", "", ""}}
	planner := NewPlanner(provider, "gpt-5-mini")

	plan, err := planner.Plan(context.Background(), testInputs(nil))
	require.Error(t, err)
	assert.Nil(t, plan)
	assert.Contains(t, err.Error(), "premise output is not valid JSON")
	assert.Len(t, provider.requests, 1)
}
