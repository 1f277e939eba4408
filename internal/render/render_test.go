package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
)

var allTemplates = []string{"modern", "classic", "creative"}

func sampleDocument() *model.ResumeDocument {
	doc := model.NewResumeDocument()
	doc.SetPersonalInfo(model.PersonalInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 555 0100",
		Location: "Berlin",
		LinkedIn: "https://www.linkedin.com/in/janedoe",
		GitHub:   "github.com/janedoe",
	})
	doc.SetSummary("Backend engineer with a focus on data plumbing.")
	doc.AddExperience(model.ExperienceEntry{Title: "Engineer", Company: "Acme", Duration: "2020-2024", Description: "Built pipelines."})
	doc.AddEducation(model.EducationEntry{Degree: "BSc Computer Science", Institution: "TU Berlin", Year: "2019"})
	doc.AddSkill("SQL")
	return doc
}

func TestRenderIsDeterministic(t *testing.T) {
	r := NewRenderer()
	doc := sampleDocument()
	for _, tpl := range allTemplates {
		first, err := r.Render(doc, tpl)
		require.NoError(t, err)
		second, err := r.Render(doc, tpl)
		require.NoError(t, err)
		assert.Equal(t, first, second, "template %s", tpl)
	}
}

func TestRenderEmptyDocumentShowsOnlyPlaceholder(t *testing.T) {
	r := NewRenderer()
	doc := model.NewResumeDocument()
	for _, tpl := range allTemplates {
		html, err := r.Render(doc, tpl)
		require.NoError(t, err)
		assert.Contains(t, html, "Your resume preview will appear here as you fill in the form.", "template %s", tpl)
		for _, heading := range []string{"Professional Summary", "Work Experience", "Education", "Skills"} {
			assert.NotContains(t, html, heading, "template %s", tpl)
		}
	}
}

func TestSectionsAreGatedIndependently(t *testing.T) {
	r := NewRenderer()
	doc := model.NewResumeDocument()
	doc.AddSkill("SQL")

	for _, tpl := range allTemplates {
		html, err := r.Render(doc, tpl)
		require.NoError(t, err)
		// skills-only document renders the skills section plus the
		// fallback header name, nothing else
		assert.Contains(t, html, "Skills", "template %s", tpl)
		assert.Contains(t, html, "SQL", "template %s", tpl)
		assert.Contains(t, html, "Your Name", "template %s", tpl)
		assert.NotContains(t, html, "Professional Summary", "template %s", tpl)
		assert.NotContains(t, html, "Work Experience", "template %s", tpl)
		assert.NotContains(t, html, "Education", "template %s", tpl)
		assert.NotContains(t, html, "preview will appear here", "template %s", tpl)
	}
}

func TestExperienceRendersInInsertionOrder(t *testing.T) {
	r := NewRenderer()
	doc := model.NewResumeDocument()
	// durations deliberately out of chronological order: the owner
	// controls display order, nothing re-sorts by date
	doc.AddExperience(model.ExperienceEntry{Title: "Alpha Role", Company: "A Corp", Duration: "2020"})
	doc.AddExperience(model.ExperienceEntry{Title: "Beta Role", Company: "B Corp", Duration: "2018"})

	for _, tpl := range allTemplates {
		html, err := r.Render(doc, tpl)
		require.NoError(t, err)
		alpha := strings.Index(html, "Alpha Role")
		beta := strings.Index(html, "Beta Role")
		require.GreaterOrEqual(t, alpha, 0, "template %s", tpl)
		require.GreaterOrEqual(t, beta, 0, "template %s", tpl)
		assert.Less(t, alpha, beta, "template %s", tpl)
	}
}

func TestClassicStructuralOrder(t *testing.T) {
	r := NewRenderer()
	doc := sampleDocument()
	doc.SetSummary("") // summary absent: header then experience directly

	html, err := r.Render(doc, "classic")
	require.NoError(t, err)

	name := strings.Index(html, "Jane Doe")
	exp := strings.Index(html, "Engineer")
	edu := strings.Index(html, "BSc Computer Science")
	skill := strings.Index(html, "SQL")
	require.GreaterOrEqual(t, name, 0)
	assert.Less(t, name, exp)
	assert.Less(t, exp, edu)
	assert.Less(t, edu, skill)
	assert.NotContains(t, html, "Professional Summary")
}

func TestUnknownTemplateFallsBackToModern(t *testing.T) {
	r := NewRenderer()
	doc := sampleDocument()

	fallback, err := r.Render(doc, "brutalist")
	require.NoError(t, err)
	modern, err := r.Render(doc, "modern")
	require.NoError(t, err)
	assert.Equal(t, modern, fallback)
}

func TestTemplatesDifferVisually(t *testing.T) {
	r := NewRenderer()
	doc := sampleDocument()

	modern, err := r.Render(doc, "modern")
	require.NoError(t, err)
	classic, err := r.Render(doc, "classic")
	require.NoError(t, err)
	creative, err := r.Render(doc, "creative")
	require.NoError(t, err)

	assert.NotEqual(t, modern, classic)
	assert.NotEqual(t, classic, creative)
	assert.NotEqual(t, modern, creative)
}

func TestHeaderFallbackNameOnlyWhenNonEmpty(t *testing.T) {
	r := NewRenderer()
	doc := model.NewResumeDocument()
	doc.SetSummary("Something.")

	html, err := r.Render(doc, "classic")
	require.NoError(t, err)
	assert.Contains(t, html, "Your Name")
	assert.NotContains(t, html, "preview will appear here")
}

func TestContactLabel(t *testing.T) {
	assert.Equal(t, "", ContactLabel(""))
	assert.Equal(t, "janedoe", ContactLabel("janedoe"))
	assert.Equal(t, "linkedin.com/in/janedoe", ContactLabel("https://www.linkedin.com/in/janedoe"))
	assert.Equal(t, "github.com/janedoe", ContactLabel("github.com/janedoe/"))
}

func TestDescriptionIsEscaped(t *testing.T) {
	r := NewRenderer()
	doc := model.NewResumeDocument()
	doc.AddExperience(model.ExperienceEntry{Title: "<script>alert(1)</script>", Company: "Acme"})

	html, err := r.Render(doc, "modern")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}
