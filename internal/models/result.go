package models

type AnalyzeInfoRequest struct {
	JobDesc     string `json:"job_desc"`
	CompanyInfo string `json:"company_info"`
}

type AnalyzeInfoResponse struct {
	JobInfo
	Outcome Outcome `json:"outcome"`
}

type GenerateQuestionsRequest struct {
	JobDesc     string `json:"job_desc"`
	CompanyInfo string `json:"company_info"`
	Resume      string `json:"resume"`
}

type GenerateQuestionsResponse struct {
	Questions  map[string][]string `json:"questions"`
	Categories []string            `json:"categories"`
	Hints      map[string]string   `json:"hints"`
}

type RecommendQuestionsRequest struct {
	JobDesc string `json:"job_desc"`
	Limit   int    `json:"limit" validate:"omitempty,min=1,max=20"`
}

// Optional fields are pointers so handlers can tell "absent" (use the
// session value) from "sent empty".
type FollowUpRequest struct {
	Question   string  `json:"question"`
	AnswerText string  `json:"answer_text"`
	JobDesc    *string `json:"job_desc"`
	Resume     *string `json:"resume"`
}

type FollowUpResponse struct {
	FollowUpQuestions []string `json:"follow_up_questions"`
	Outcome           Outcome  `json:"outcome"`
}

type AnalyzeAnswerRequest struct {
	AnswerText    string  `json:"answer_text"`
	JobDesc       *string `json:"job_desc"`
	CompanyValues string  `json:"company_values"`
	Question      string  `json:"question"`
}

type AnalyzeAnswerResponse struct {
	Scores          AnswerScores `json:"scores"`
	Feedback        string       `json:"feedback"`
	FormattedOutput string       `json:"formatted_output"`
	Outcome         Outcome      `json:"outcome"`
}

type ModelAnswerRequest struct {
	Question    string  `json:"question"`
	CompanyInfo *string `json:"company_info"`
	JobDesc     *string `json:"job_desc"`
	Resume      *string `json:"resume"`
	AnswerText  string  `json:"answer_text"`
}

type ModelAnswerResponse struct {
	ModelAnswer string  `json:"model_answer"`
	Outcome     Outcome `json:"outcome"`
}

type SpeechToTextRequest struct {
	Audio string `json:"audio" validate:"required"`
}

type SpeechToTextResponse struct {
	Text    string  `json:"text"`
	Outcome Outcome `json:"outcome"`
}

type TextToSpeechRequest struct {
	Text        string `json:"text"`
	VoiceOption string `json:"voice_option" validate:"omitempty,max=64"`
}

type TextToSpeechResponse struct {
	Audio   *string `json:"audio"`
	Voice   string  `json:"voice"`
	Outcome Outcome `json:"outcome"`
}

type SaveHTMLRequest struct {
	JobDesc           *string       `json:"job_desc"`
	CompanyInfo       *string       `json:"company_info"`
	Resume            *string       `json:"resume"`
	CompanyName       *string       `json:"company_name"`
	PositionTitle     *string       `json:"position_title"`
	CompanyValues     string        `json:"company_values"`
	TechSkills        string        `json:"tech_skills"`
	SoftSkills        string        `json:"soft_skills"`
	JobDuties         string        `json:"job_duties"`
	SelectedQuestion  string        `json:"selected_question"`
	AnswerText        string        `json:"answer_text"`
	Feedback          string        `json:"feedback"`
	ModelAnswer       string        `json:"model_answer"`
	FollowUpQuestions []string      `json:"follow_up_questions"`
	Scores            *AnswerScores `json:"scores"`
}

type SaveHTMLResponse struct {
	FileID string `json:"file_id"`
}

type DownloadParams struct {
	FileID string `validate:"required,uuid4"`
}

type ResumeUploadResponse struct {
	Resume string `json:"resume"`
	Pages  int    `json:"pages"`
}

type HistoryResponse struct {
	Attempts []PracticeAttempt `json:"attempts"`
}

// ProcessInterviewRequest runs a whole practice round in one call.
type ProcessInterviewRequest struct {
	JobDesc       *string `json:"job_desc"`
	CompanyInfo   *string `json:"company_info"`
	Resume        *string `json:"resume"`
	CompanyValues string  `json:"company_values"`
	Question      string  `json:"question"`
	AnswerText    string  `json:"answer_text"`
}

type ProcessInterviewResponse struct {
	JobInfo     AnalyzeInfoResponse   `json:"job_info"`
	ModelAnswer ModelAnswerResponse   `json:"model_answer"`
	Evaluation  AnalyzeAnswerResponse `json:"evaluation"`
}
