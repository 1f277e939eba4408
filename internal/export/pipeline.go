package export

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/render"
)

// ErrInvalidTemplate rejects unknown template names before any rendering
// work starts. Non-retryable; the client sent a name we do not ship.
var ErrInvalidTemplate = errors.New("invalid template")

// Engine prints a rendered HTML document to PDF bytes.
type Engine interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Pipeline converts a ResumeDocument plus template selection into a
// downloadable PDF. The preview renderer produces the markup, so export
// content can never diverge from what the editor shows.
type Pipeline struct {
	renderer *render.Renderer
	engine   Engine
}

func NewPipeline(renderer *render.Renderer, engine Engine) *Pipeline {
	return &Pipeline{renderer: renderer, engine: engine}
}

// Export returns the PDF bytes and the download filename. On any failure no
// partial bytes are returned.
func (p *Pipeline) Export(ctx context.Context, doc *model.ResumeDocument, templateName string) ([]byte, string, error) {
	if !model.KnownTemplate(templateName) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidTemplate, templateName)
	}

	html, err := p.renderer.Render(doc, templateName)
	if err != nil {
		return nil, "", fmt.Errorf("render template %s: %w", templateName, err)
	}

	pdf, err := p.engine.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, "", fmt.Errorf("print pdf: %w", err)
	}
	return pdf, Filename(doc.PersonalInfo.FullName), nil
}

// Filename derives the download name from the candidate's full name, with a
// generic fallback when it is blank.
func Filename(fullName string) string {
	name := strings.TrimSpace(fullName)
	if name == "" {
		return "My_Resume.pdf"
	}
	name = strings.Join(strings.Fields(name), "_")
	return name + "_Resume.pdf"
}
