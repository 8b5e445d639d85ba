package handlers

import (
	"context"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plotforge/plotforge-api/internal/config"
	"github.com/plotforge/plotforge-api/internal/llm"
	"github.com/plotforge/plotforge-api/internal/logger"
	"github.com/plotforge/plotforge-api/internal/story"
)

// Multipart form field names
const (
	fieldSeed     = "seed"
	fieldGenre    = "genre"
	fieldPacing   = "pacing"
	fieldTone     = "tone"
	fieldChapters = "chapters"
	fieldNoGo     = "nogo"

	fileWorld      = "world"
	fileCharacters = "characters"
)

// StoryHandler serves the story planning endpoint
type StoryHandler struct {
	cfg      *config.Config
	provider llm.Provider // nil when no credential is configured for the model
}

// NewStoryHandler creates the handler, resolving the LLM provider once at
// startup. A missing credential leaves the provider nil; requests then fail
// with a misconfiguration error before any provider call.
func NewStoryHandler(cfg *config.Config) *StoryHandler {
	factory := llm.NewProviderFactory(cfg.OpenAIAPIKey, cfg.GeminiAPIKey)
	provider, err := factory.ForModel(context.Background(), cfg.Model)
	if err != nil {
		logger.Warn("LLM provider not configured", logger.Fields{
			"model":  cfg.Model,
			"reason": err.Error(),
		})
		provider = nil
	}

	return &StoryHandler{
		cfg:      cfg,
		provider: provider,
	}
}

// newStoryHandlerWithProvider injects a provider directly, for tests.
func newStoryHandlerWithProvider(cfg *config.Config, provider llm.Provider) *StoryHandler {
	return &StoryHandler{cfg: cfg, provider: provider}
}

// PlanStory handles story plan requests
// POST /api/v1/story/plan
//
// Accepts a multipart form with the seed, preference fields, an optional
// world file, and zero or more character files. On success returns the
// rendered plain-text report; on any failure returns the error text with a
// failure status. No partial report is ever returned.
func (h *StoryHandler) PlanStory(c *gin.Context) {
	if h.provider == nil {
		log.Printf("❌ PlanStory: no provider configured for model %s", h.cfg.Model)
		c.String(http.StatusInternalServerError, story.ErrMissingCredential.Error())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("❌ PlanStory: multipart parse error: %v", err)
		c.String(http.StatusBadRequest, "%s: %v", story.ErrMalformedRequest.Error(), err)
		return
	}

	raw, err := extractForm(form)
	if err != nil {
		log.Printf("❌ PlanStory: form extraction error: %v", err)
		c.String(http.StatusBadRequest, "%s: %v", story.ErrMalformedRequest.Error(), err)
		return
	}

	inputs := story.BuildInputs(raw)
	log.Printf("📖 PlanStory: genre=%s, pacing=%s, target_chapters=%d, characters=%d",
		inputs.Genre, inputs.Pacing, inputs.Chapters, len(inputs.Characters))

	planner := story.NewPlanner(h.provider, h.cfg.Model)
	plan, err := planner.Plan(c.Request.Context(), inputs)
	if err != nil {
		log.Printf("❌ PlanStory: pipeline error: %v", err)
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("✅ PlanStory: plan complete, %d chapters returned", plan.Chapters.ChapterCount)
	c.String(http.StatusOK, story.RenderReport(plan))
}

// extractForm pulls named fields and uploaded files out of the parsed
// multipart form into plain strings and byte buffers.
func extractForm(form *multipart.Form) (*story.RawForm, error) {
	raw := &story.RawForm{Fields: make(map[string]string)}

	for _, name := range []string{fieldSeed, fieldGenre, fieldPacing, fieldTone, fieldChapters, fieldNoGo} {
		if values := form.Value[name]; len(values) > 0 {
			raw.Fields[name] = values[0]
		}
	}

	world, err := readFiles(form.File[fileWorld])
	if err != nil {
		return nil, err
	}
	raw.World = world

	characters, err := readFiles(form.File[fileCharacters])
	if err != nil {
		return nil, err
	}
	raw.Characters = characters

	return raw, nil
}

// readFiles reads each uploaded file fully into memory, preserving upload order.
func readFiles(headers []*multipart.FileHeader) ([]story.UploadedFile, error) {
	var files []story.UploadedFile
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, err
		}
		files = append(files, story.UploadedFile{Name: fh.Filename, Data: data})
	}
	return files, nil
}
