package model

import "github.com/google/uuid"

// Go models that match resume.schema.json; this is the shape the frontend
// sends and the shape persisted in the resumes.content column.

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

type ExperienceEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type EducationEntry struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// TemplateName selects one of the three visual layouts.
type TemplateName string

const (
	TemplateModern   TemplateName = "modern"
	TemplateClassic  TemplateName = "classic"
	TemplateCreative TemplateName = "creative"
)

// KnownTemplate reports whether name is one of the three shipped layouts.
func KnownTemplate(name string) bool {
	switch TemplateName(name) {
	case TemplateModern, TemplateClassic, TemplateCreative:
		return true
	}
	return false
}

// NormalizeTemplate maps unknown or empty selectors to the modern layout.
// Selecting a template never fails.
func NormalizeTemplate(name string) TemplateName {
	if KnownTemplate(name) {
		return TemplateName(name)
	}
	return TemplateModern
}

// ResumeDocument is the in-memory representation of one resume. Experience
// and education keep insertion order; display order is input order and is
// never re-sorted. Skills keep insertion order and hold no duplicates.
type ResumeDocument struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Summary      string            `json:"summary"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []string          `json:"skills"`
	Template     TemplateName      `json:"template,omitempty"`
}

// NewResumeDocument returns an empty document with the default template.
func NewResumeDocument() *ResumeDocument {
	return &ResumeDocument{
		Experience: []ExperienceEntry{},
		Education:  []EducationEntry{},
		Skills:     []string{},
		Template:   TemplateModern,
	}
}

// IsEmpty reports whether the document has no displayable content at all:
// no full name, no summary, no experience, no education and no skills.
// The renderers use this to show the single placeholder message.
func (d *ResumeDocument) IsEmpty() bool {
	return d.PersonalInfo.FullName == "" &&
		d.Summary == "" &&
		len(d.Experience) == 0 &&
		len(d.Education) == 0 &&
		len(d.Skills) == 0
}

// SetPersonalInfo replaces the personal info block.
func (d *ResumeDocument) SetPersonalInfo(info PersonalInfo) {
	d.PersonalInfo = info
}

// SetSummary replaces the summary text.
func (d *ResumeDocument) SetSummary(summary string) {
	d.Summary = summary
}

// SetTemplate selects a layout, falling over to modern for unknown names.
func (d *ResumeDocument) SetTemplate(name string) {
	d.Template = NormalizeTemplate(name)
}

// AddExperience appends an entry with a freshly generated id and returns it.
// Ids are stable for the entry's lifetime and never reused.
func (d *ResumeDocument) AddExperience(e ExperienceEntry) ExperienceEntry {
	e.ID = uuid.NewString()
	d.Experience = append(d.Experience, e)
	return e
}

// UpdateExperience replaces the entry with the matching id, preserving its
// position. Unknown ids are a no-op.
func (d *ResumeDocument) UpdateExperience(e ExperienceEntry) {
	for i := range d.Experience {
		if d.Experience[i].ID == e.ID {
			d.Experience[i] = e
			return
		}
	}
}

// RemoveExperience deletes the entry with the given id, if present.
func (d *ResumeDocument) RemoveExperience(id string) {
	for i := range d.Experience {
		if d.Experience[i].ID == id {
			d.Experience = append(d.Experience[:i], d.Experience[i+1:]...)
			return
		}
	}
}

// AddEducation appends an entry with a freshly generated id and returns it.
func (d *ResumeDocument) AddEducation(e EducationEntry) EducationEntry {
	e.ID = uuid.NewString()
	d.Education = append(d.Education, e)
	return e
}

// UpdateEducation replaces the entry with the matching id in place.
func (d *ResumeDocument) UpdateEducation(e EducationEntry) {
	for i := range d.Education {
		if d.Education[i].ID == e.ID {
			d.Education[i] = e
			return
		}
	}
}

// RemoveEducation deletes the entry with the given id, if present.
func (d *ResumeDocument) RemoveEducation(id string) {
	for i := range d.Education {
		if d.Education[i].ID == id {
			d.Education = append(d.Education[:i], d.Education[i+1:]...)
			return
		}
	}
}

// AddSkill appends a skill unless an identical value (case-sensitive) is
// already present. Returns true when the skill was added.
func (d *ResumeDocument) AddSkill(skill string) bool {
	for _, s := range d.Skills {
		if s == skill {
			return false
		}
	}
	d.Skills = append(d.Skills, skill)
	return true
}

// RemoveSkill deletes a skill; removing an absent skill is a no-op.
func (d *ResumeDocument) RemoveSkill(skill string) {
	for i, s := range d.Skills {
		if s == skill {
			d.Skills = append(d.Skills[:i], d.Skills[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy. The auto-saver snapshots through Clone so an
// in-flight save never shares slices with the live document.
func (d *ResumeDocument) Clone() *ResumeDocument {
	out := *d
	out.Experience = append([]ExperienceEntry(nil), d.Experience...)
	out.Education = append([]EducationEntry(nil), d.Education...)
	out.Skills = append([]string(nil), d.Skills...)
	return &out
}
