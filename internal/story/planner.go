package story

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/plotforge/plotforge-api/internal/llm"
	"github.com/plotforge/plotforge-api/internal/logger"
	"github.com/plotforge/plotforge-api/internal/observability"
)

// Per-stage generation parameters. Later stages get larger token budgets and
// slightly lower temperatures: the premise explores, the chapter breakdown
// executes.
const (
	premiseTemperature = 1.0
	premiseMaxTokens   = 2048

	outlineTemperature = 0.9
	outlineMaxTokens   = 6144

	chaptersTemperature = 0.8
	chaptersMaxTokens   = 12288
)

// Stage names, used in logs, traces, and schema names.
const (
	stagePremise  = "premise"
	stageOutline  = "outline"
	stageChapters = "chapters"
)

// Planner drives the three-stage generation pipeline:
// premise -> nine-act outline -> chapter breakdown. Stages run strictly in
// sequence because each consumes the previous stage's raw JSON; any stage
// error aborts the whole plan with no partial result.
type Planner struct {
	provider     llm.Provider
	model        string
	systemPrompt string
}

// NewPlanner creates a planner bound to one provider and model.
func NewPlanner(provider llm.Provider, model string) *Planner {
	return &Planner{
		provider:     provider,
		model:        model,
		systemPrompt: getStoryArchitectSystemPrompt(),
	}
}

// Plan runs the full pipeline for one request's inputs.
func (p *Planner) Plan(ctx context.Context, inputs *Inputs) (*StoryPlan, error) {
	startTime := time.Now()
	log.Printf("📖 STORY PLAN STARTED: model=%s, target_chapters=%d", p.model, inputs.Chapters)

	// Start Sentry transaction
	transaction := sentry.StartTransaction(ctx, "story.plan")
	defer transaction.Finish()

	transaction.SetTag("model", p.model)
	transaction.SetTag("genre", inputs.Genre)
	transaction.SetTag("target_chapters", fmt.Sprintf("%d", inputs.Chapters))

	// One Langfuse trace per request, one generation per stage
	trace := observability.GetClient().StartTrace(ctx, "story_plan", map[string]interface{}{
		"model":           p.model,
		"genre":           inputs.Genre,
		"pacing":          inputs.Pacing,
		"target_chapters": inputs.Chapters,
	})
	defer trace.Finish()

	contextBlock := inputs.ContextBlock()
	plan := &StoryPlan{Inputs: inputs}

	// Stage 1: premise
	rawPremise, err := p.runStage(ctx, trace, stagePremise, stageRequest{
		prompt:      buildPremisePrompt(contextBlock),
		schemaName:  "story_premise",
		schema:      PremiseSchema(),
		temperature: premiseTemperature,
		maxTokens:   premiseMaxTokens,
	})
	if err != nil {
		transaction.SetTag("success", "false")
		return nil, err
	}
	plan.RawPremise = rawPremise
	plan.Premise = &Premise{}
	if err := json.Unmarshal([]byte(rawPremise), plan.Premise); err != nil {
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("premise output is not valid JSON: %w", err)
	}

	// Stage 2: outline, consuming the premise JSON verbatim
	rawOutline, err := p.runStage(ctx, trace, stageOutline, stageRequest{
		prompt:      buildOutlinePrompt(contextBlock, rawPremise),
		schemaName:  "nine_act_outline",
		schema:      OutlineSchema(),
		temperature: outlineTemperature,
		maxTokens:   outlineMaxTokens,
	})
	if err != nil {
		transaction.SetTag("success", "false")
		return nil, err
	}
	plan.RawOutline = rawOutline
	plan.Outline = &Outline{}
	if err := json.Unmarshal([]byte(rawOutline), plan.Outline); err != nil {
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("outline output is not valid JSON: %w", err)
	}

	// Stage 3: chapters, consuming premise and outline JSON verbatim
	rawChapters, err := p.runStage(ctx, trace, stageChapters, stageRequest{
		prompt:      buildChaptersPrompt(contextBlock, rawPremise, rawOutline, inputs.Chapters),
		schemaName:  "chapter_breakdown",
		schema:      ChaptersSchema(),
		temperature: chaptersTemperature,
		maxTokens:   chaptersMaxTokens,
	})
	if err != nil {
		transaction.SetTag("success", "false")
		return nil, err
	}
	plan.RawChapters = rawChapters
	plan.Chapters = &ChapterList{}
	if err := json.Unmarshal([]byte(rawChapters), plan.Chapters); err != nil {
		transaction.SetTag("success", "false")
		sentry.CaptureException(err)
		return nil, fmt.Errorf("chapters output is not valid JSON: %w", err)
	}

	duration := time.Since(startTime)
	log.Printf("✅ STORY PLAN COMPLETE: %d acts, %d chapters in %v",
		len(plan.Outline.Acts), len(plan.Chapters.Chapters), duration)

	transaction.SetTag("success", "true")
	transaction.SetTag("returned_chapters", fmt.Sprintf("%d", plan.Chapters.ChapterCount))

	return plan, nil
}

// stageRequest carries the per-stage call parameters.
type stageRequest struct {
	prompt      string
	schemaName  string
	schema      map[string]any
	temperature float64
	maxTokens   int64
}

// runStage issues one structured-output call and returns the raw JSON text.
func (p *Planner) runStage(ctx context.Context, trace *observability.Trace, stage string, req stageRequest) (string, error) {
	startTime := time.Now()
	log.Printf("🚀 STAGE %s: calling %s (%s)", stage, p.provider.Name(), p.model)

	gen := trace.Generation(stage, map[string]interface{}{"stage": stage})
	defer gen.Finish()

	inputArray := []map[string]any{
		{
			"role":    "user",
			"content": req.prompt,
		},
	}

	resp, err := p.provider.Generate(ctx, &llm.GenerationRequest{
		Model:           p.model,
		SystemPrompt:    p.systemPrompt,
		InputArray:      inputArray,
		Temperature:     req.temperature,
		MaxOutputTokens: req.maxTokens,
		OutputSchema: &llm.OutputSchema{
			Name:        req.schemaName,
			Description: fmt.Sprintf("Structured %s output", stage),
			Schema:      req.schema,
		},
	})
	if err != nil {
		gen.SetLevel("ERROR")
		logger.Error("Stage generation failed", err, logger.Fields{"stage": stage, "model": p.model})
		return "", fmt.Errorf("%s generation failed: %w", stage, err)
	}

	if resp.RawOutput == "" {
		gen.SetLevel("ERROR")
		return "", fmt.Errorf("%s generation returned empty output", stage)
	}

	gen.LogGeneration(p.model, inputArray, resp.RawOutput, resp.Usage, map[string]interface{}{"stage": stage})
	logger.LogGenerationRequest(stage, p.model, time.Since(startTime), resp.Usage.Map(), nil)

	return resp.RawOutput, nil
}
