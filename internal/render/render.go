package render

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/abhinavsaxena2308/AI-Resume-Builder/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer maps a ResumeDocument plus a template selector to a complete HTML
// document. Rendering is pure and deterministic: the same document and
// selector always produce byte-identical output. The same renderer serves the
// browser preview and the export pipeline, so the two can never diverge in
// content.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded layout files. The set of layouts is fixed
// at build time, so a parse failure is a programming error.
func NewRenderer() *Renderer {
	tpl := template.Must(template.ParseFS(templateFS, "templates/*.html"))
	return &Renderer{templates: tpl}
}

// viewData is the single shape handed to every layout. Section visibility is
// decided here, not in the templates, so all three variants gate content
// identically.
type viewData struct {
	Name          string
	Info          model.PersonalInfo
	LinkedInLabel string
	GitHubLabel   string
	Summary       string
	Experience    []model.ExperienceEntry
	Education     []model.EducationEntry
	Skills        []string
	Empty         bool
}

// Placeholder shown when the document has no displayable content at all.
const emptyStateMessage = "Your resume preview will appear here as you fill in the form."

// fallbackName is used in the header when fullName is blank but the document
// is otherwise non-empty.
const fallbackName = "Your Name"

// Render produces the HTML for doc under the named layout. Unknown selectors
// fall over to modern; rendering a well-typed document cannot fail.
func (r *Renderer) Render(doc *model.ResumeDocument, name string) (string, error) {
	tpl := model.NormalizeTemplate(name)

	data := viewData{
		Name:          doc.PersonalInfo.FullName,
		Info:          doc.PersonalInfo,
		LinkedInLabel: ContactLabel(doc.PersonalInfo.LinkedIn),
		GitHubLabel:   ContactLabel(doc.PersonalInfo.GitHub),
		Summary:       doc.Summary,
		Experience:    doc.Experience,
		Education:     doc.Education,
		Skills:        doc.Skills,
		Empty:         doc.IsEmpty(),
	}
	if data.Name == "" {
		data.Name = fallbackName
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, string(tpl)+".html", data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ContactLabel derives a compact display label for a contact link. URL-ish
// values collapse to their eTLD+1 plus path ("linkedin.com/in/jane"); plain
// strings pass through unchanged.
func ContactLabel(value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	candidate := v
	hadScheme := strings.HasPrefix(candidate, "http://") || strings.HasPrefix(candidate, "https://")
	if !hadScheme {
		if !strings.Contains(candidate, ".") {
			// bare handle, nothing to shorten
			return v
		}
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" {
		return v
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	if etld, err := publicsuffix.EffectiveTLDPlusOne(parsed.Hostname()); err == nil {
		host = strings.TrimPrefix(etld, "www.")
	}
	label := host + strings.TrimSuffix(parsed.Path, "/")
	return label
}
