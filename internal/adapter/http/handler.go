package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/assistant"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/export"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/store"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/pkg/ai"
)

type Handler struct {
	pipeline  *export.Pipeline
	assistant *assistant.Assistant
	repo      store.Repo
}

func NewHandler(p *export.Pipeline, a *assistant.Assistant, r store.Repo) *Handler {
	return &Handler{pipeline: p, assistant: a, repo: r}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type generatePDFReq struct {
	ResumeData map[string]interface{} `json:"resumeData"`
	Template   string                 `json:"template"`
}

// GeneratePDF validates the payload, renders the selected template and
// streams back the printed PDF. Validation happens before any rendering
// work; failures never return partial bytes.
func (h *Handler) GeneratePDF(c *fiber.Ctx) error {
	var req generatePDFReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if !model.KnownTemplate(req.Template) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template"})
	}
	if req.ResumeData == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "resumeData is required"})
	}
	if err := model.ValidateMap(req.ResumeData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	doc, err := decodeDocument(req.ResumeData)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resumeData"})
	}

	start := time.Now()
	pdf, filename, err := h.pipeline.Export(c.UserContext(), doc, req.Template)
	if err != nil {
		if errors.Is(err, export.ErrInvalidTemplate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid template"})
		}
		slog.Error("pdf export failed", "template", req.Template, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	slog.Info("pdf exported", "template", req.Template, "bytes", len(pdf), "duration", time.Since(start))

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// GenerateSummary relays one summary-generation request to the upstream
// model, mapping its failure taxonomy onto distinct statuses. No retries;
// the user is the retry trigger.
func (h *Handler) GenerateSummary(c *fiber.Ctx) error {
	var req assistant.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	summary, err := h.assistant.GenerateSummary(c.UserContext(), req)
	if err != nil {
		var upstream *ai.UpstreamError
		switch {
		case errors.Is(err, ai.ErrNotConfigured):
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "GOOGLE_API_KEY not configured"})
		case errors.Is(err, ai.ErrRateLimited):
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Rate limit exceeded. Please try again in a moment."})
		case errors.Is(err, ai.ErrQuotaExhausted):
			return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{"error": "Credits exhausted. Please add credits to continue."})
		case errors.As(err, &upstream):
			return c.Status(upstream.Status).JSON(fiber.Map{"error": upstream.Message})
		}
		slog.Error("summary generation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate summary"})
	}
	return c.JSON(fiber.Map{"summary": summary})
}

type createResumeReq struct {
	UserID  string                `json:"userId"`
	Title   string                `json:"title"`
	Content *model.ResumeDocument `json:"content"`
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	if h.repo == nil {
		return storeUnavailable(c)
	}
	var req createResumeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	content := req.Content
	if content == nil {
		content = model.NewResumeDocument()
	}
	content.SetTemplate(string(content.Template))

	title := req.Title
	if title == "" {
		title = "Untitled Resume"
	}

	now := time.Now().UTC()
	rec := &store.ResumeRecord{
		ID:        uuid.New(),
		UserID:    uid,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.repo.Create(c.UserContext(), rec); err != nil {
		slog.Error("create resume failed", "user_id", uid, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create resume"})
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	if h.repo == nil {
		return storeUnavailable(c)
	}
	uid, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}
	recs, err := h.repo.ListByUser(c.UserContext(), uid)
	if err != nil {
		slog.Error("list resumes failed", "user_id", uid, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list resumes"})
	}
	return c.JSON(recs)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	if h.repo == nil {
		return storeUnavailable(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume id"})
	}
	rec, err := h.repo.GetByID(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
		}
		slog.Error("get resume failed", "resume_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load resume"})
	}
	return c.JSON(rec)
}

type updateResumeReq struct {
	Title   string                `json:"title"`
	Content *model.ResumeDocument `json:"content"`
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	if h.repo == nil {
		return storeUnavailable(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume id"})
	}
	var req updateResumeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.Content == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "content is required"})
	}
	req.Content.SetTemplate(string(req.Content.Template))

	rec, err := h.repo.Update(c.UserContext(), id, req.Content, req.Title)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
		}
		slog.Error("update resume failed", "resume_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save resume"})
	}
	return c.JSON(rec)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	if h.repo == nil {
		return storeUnavailable(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid resume id"})
	}
	if err := h.repo.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
		}
		slog.Error("delete resume failed", "resume_id", id, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete resume"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func storeUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "resume store unavailable"})
}

// decodeDocument converts the schema-validated map into the typed document,
// normalizing the template selector on the way in.
func decodeDocument(m map[string]interface{}) (*model.ResumeDocument, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	doc := model.NewResumeDocument()
	if err := json.Unmarshal(b, doc); err != nil {
		return nil, err
	}
	doc.SetTemplate(string(doc.Template))
	return doc, nil
}
