package models

// Outcome tells callers why a service produced the text it did.
type Outcome string

const (
	OutcomeOK           Outcome = "ok"
	OutcomeTooShort     Outcome = "too_short"
	OutcomeAPIError     Outcome = "api_error"
	OutcomeInvalidInput Outcome = "invalid_input"
	OutcomeFailed       Outcome = "failed"
)

func (o Outcome) Succeeded() bool {
	return o == OutcomeOK
}

const (
	DefaultCompanyName   = "Company name not specified"
	DefaultPositionTitle = "Position title not specified"
	DefaultNotFound      = "Not found"
)

// JobInfo is the structured view of a job posting. It is replaced, never
// mutated, when the user submits a new description.
type JobInfo struct {
	CompanyName   string `json:"company_name"`
	PositionTitle string `json:"position_title"`
	CompanyValues string `json:"company_values"`
	TechSkills    string `json:"tech_skills"`
	SoftSkills    string `json:"soft_skills"`
	JobDuties     string `json:"job_duties"`
}

func DefaultJobInfo() JobInfo {
	return JobInfo{
		CompanyName:   DefaultCompanyName,
		PositionTitle: DefaultPositionTitle,
		CompanyValues: DefaultNotFound,
		TechSkills:    DefaultNotFound,
		SoftSkills:    DefaultNotFound,
		JobDuties:     DefaultNotFound,
	}
}

// AnswerScores holds 0-10 ratings for a spoken or typed answer.
type AnswerScores struct {
	Clarity    int `json:"clarity"`
	Relevance  int `json:"relevance"`
	Confidence int `json:"confidence"`
}
