// Package types provides type definitions for structured data used throughout the resume-insights system.
package types

// ContactInfo holds contact details pulled from résumé text. Empty string
// means the field was not found; a field is populated from the first match
// and never overwritten.
type ContactInfo struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Location  string `json:"location,omitempty"`
}

// BulletPoint is a single responsibility or achievement line under a work
// experience entry.
type BulletPoint struct {
	Text       string `json:"text"`
	HasMetrics bool   `json:"has_metrics"`
	ActionVerb string `json:"action_verb,omitempty"`
}

// ExperienceEntry is one position extracted from a work history section.
// Location and Description are optional; most résumés carry neither.
type ExperienceEntry struct {
	Title       string        `json:"title,omitempty"`
	Company     string        `json:"company,omitempty"`
	Location    string        `json:"location,omitempty"`
	StartDate   string        `json:"start_date,omitempty"`
	EndDate     string        `json:"end_date,omitempty"`
	IsCurrent   bool          `json:"is_current"`
	Description string        `json:"description,omitempty"`
	Bullets     []BulletPoint `json:"bullets,omitempty"`
}

// EducationEntry is one credential extracted from an education section.
// GPA is nil when absent or outside the 0.0-4.0 range.
type EducationEntry struct {
	Degree       string   `json:"degree,omitempty"`
	Institution  string   `json:"institution,omitempty"`
	FieldOfStudy string   `json:"field_of_study,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	GPA          *float64 `json:"gpa,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// ResumeProfile aggregates everything extracted from a single résumé.
// Experiences are capped at 5 entries and Education at 3, most recent first
// as they appear in the document.
type ResumeProfile struct {
	Contact     ContactInfo       `json:"contact"`
	Skills      []string          `json:"skills"`
	Experiences []ExperienceEntry `json:"experiences"`
	Education   []EducationEntry  `json:"education"`
	Summary     string            `json:"summary,omitempty"`
}
