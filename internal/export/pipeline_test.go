package export

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/render"
)

// fakeEngine captures the HTML it was asked to print.
type fakeEngine struct {
	lastHTML string
	fail     error
}

func (f *fakeEngine) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.lastHTML = html
	return []byte("%PDF-1.4 fake"), nil
}

func testDocument() *model.ResumeDocument {
	doc := model.NewResumeDocument()
	doc.SetPersonalInfo(model.PersonalInfo{FullName: "Jane Doe"})
	doc.AddExperience(model.ExperienceEntry{Title: "Engineer", Company: "Acme", Duration: "2020"})
	doc.AddEducation(model.EducationEntry{Degree: "BSc", Institution: "MIT", Year: "2019"})
	doc.AddSkill("SQL")
	return doc
}

func TestExportUnknownTemplateFails(t *testing.T) {
	engine := &fakeEngine{}
	p := NewPipeline(render.NewRenderer(), engine)

	pdf, filename, err := p.Export(context.Background(), testDocument(), "brutalist")
	require.ErrorIs(t, err, ErrInvalidTemplate)
	assert.Nil(t, pdf)
	assert.Empty(t, filename)
	// rejected before any rendering work
	assert.Empty(t, engine.lastHTML)
}

func TestExportProducesPDFAndFilename(t *testing.T) {
	engine := &fakeEngine{}
	p := NewPipeline(render.NewRenderer(), engine)

	pdf, filename, err := p.Export(context.Background(), testDocument(), "classic")
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "Jane_Doe_Resume.pdf", filename)

	// the printed markup is the preview renderer's output, fields in
	// structural order: header, experience, education, skills
	html := engine.lastHTML
	jane := strings.Index(html, "Jane Doe")
	exp := strings.Index(html, "Engineer")
	edu := strings.Index(html, "BSc")
	skill := strings.Index(html, "SQL")
	require.GreaterOrEqual(t, jane, 0)
	assert.Less(t, jane, exp)
	assert.Less(t, exp, edu)
	assert.Less(t, edu, skill)
}

func TestExportEngineFailureReturnsNoBytes(t *testing.T) {
	engine := &fakeEngine{fail: errors.New("chrome crashed")}
	p := NewPipeline(render.NewRenderer(), engine)

	pdf, _, err := p.Export(context.Background(), testDocument(), "modern")
	require.Error(t, err)
	assert.Nil(t, pdf)
	assert.Contains(t, err.Error(), "chrome crashed")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Jane_Doe_Resume.pdf", Filename("Jane Doe"))
	assert.Equal(t, "Jane_Q_Doe_Resume.pdf", Filename("  Jane  Q  Doe "))
	assert.Equal(t, "My_Resume.pdf", Filename(""))
	assert.Equal(t, "My_Resume.pdf", Filename("   "))
}
