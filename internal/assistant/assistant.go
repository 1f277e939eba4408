package assistant

import (
	"context"
	"fmt"
	"strings"
)

// Request is the summary-generation payload sent by the editor.
type Request struct {
	Name       string              `json:"name"`
	Experience []ExperienceContext `json:"experience"`
	Skills     []string            `json:"skills"`
}

// ExperienceContext is the slice of an experience entry the prompt uses.
type ExperienceContext struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

// Generator is the upstream text-generation call.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Assistant turns a candidate's name, experience and skills into one short
// professional summary paragraph via the upstream model. No retries, no
// caching: the user is always the retry trigger.
type Assistant struct {
	ai Generator
}

func New(ai Generator) *Assistant {
	return &Assistant{ai: ai}
}

// fallbackSummary is returned when the upstream produced an empty candidate.
const fallbackSummary = "No summary generated."

// GenerateSummary builds the prompt and performs a single upstream call.
// Upstream errors pass through unchanged for the HTTP boundary to map.
func (a *Assistant) GenerateSummary(ctx context.Context, req Request) (string, error) {
	summary, err := a.ai.GenerateContent(ctx, BuildPrompt(req))
	if err != nil {
		return "", err
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return fallbackSummary, nil
	}
	return summary, nil
}

// BuildPrompt assembles the summary prompt. The exclusion of introductory
// framing, markdown markers and numbering is a prompt-level contract with
// the model; the returned text is not validated against it.
func BuildPrompt(req Request) string {
	lines := make([]string, 0, len(req.Experience))
	for _, exp := range req.Experience {
		lines = append(lines, fmt.Sprintf("%s at %s: %s", exp.Title, exp.Company, exp.Description))
	}
	experienceText := strings.Join(lines, "\n")
	skillsText := strings.Join(req.Skills, ", ")

	return fmt.Sprintf(`You are a professional resume writer.
Write ONE concise, polished, and professional summary (2-3 sentences) for %s.
Do NOT include any introductory lines (like "Here's a summary for..."), numbers, or formatting symbols (*, -, **, etc.).
Only return the final summary text.

Experience:
%s

Skills: %s`, req.Name, experienceText, skillsText)
}
