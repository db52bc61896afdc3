package types

// WorkExperienceEntry is one role in a candidate's work history.
type WorkExperienceEntry struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	DurationText     string   `json:"duration_text"`
	Responsibilities []string `json:"responsibilities"`
}

// EducationEntry is one qualification listed on a resume. Year is zero when
// the resume does not state one.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year,omitempty"`
}

// ProjectEntry is one project listed on a resume.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// ResumeStructured is the structured form of one resume document.
//
// YearsExperience is the extraction capability's estimate of total
// non-overlapping professional experience. It is trusted as-is; this code
// never recomputes it from individual role date ranges.
type ResumeStructured struct {
	Skills          []string              `json:"skills"`
	WorkExperience  []WorkExperienceEntry `json:"work_experience"`
	Education       []EducationEntry      `json:"education"`
	YearsExperience float64               `json:"years_experience"`
	Projects        []ProjectEntry        `json:"projects"`
}

// ExtractedResume pairs a structured resume with the source-file identifier
// that joins it to its evaluation scores and final candidate score.
type ExtractedResume struct {
	SourceFile string           `json:"source_file"`
	Resume     ResumeStructured `json:"resume"`
}
