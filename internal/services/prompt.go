package services

import (
	"fmt"
	"strings"

	"alfredoptarigan/interview-coach/internal/models"
)

// PromptContractVersion changes whenever a template header or a matching
// extractor pattern changes. Both live in this package and must move together.
const PromptContractVersion = "2"

// Section headers the job-info template demands and the extractor anchors on.
const (
	HeaderCompanyName   = "**Company Name:**"
	HeaderPositionTitle = "**Position Title:**"
	HeaderCompanyValues = "**Key Company Values:**"
	HeaderTechSkills    = "**Essential Technical Skills:**"
	HeaderSoftSkills    = "**Necessary Soft Skills:**"
	HeaderJobDuties     = "**Summary of Key Job Duties:**"
)

// JobInfoHeaders lists the headers in the order the reply must contain them.
var JobInfoHeaders = []string{
	HeaderCompanyName,
	HeaderPositionTitle,
	HeaderCompanyValues,
	HeaderTechSkills,
	HeaderSoftSkills,
	HeaderJobDuties,
}

// Score labels rendered as "Label: N/10".
const (
	LabelClarity    = "Clarity"
	LabelRelevance  = "Relevance"
	LabelConfidence = "Confidence"
)

// Operation selects one of the four prompt templates.
type Operation string

const (
	OpExtractJobInfo    Operation = "extract-job-info"
	OpEvaluateAnswer    Operation = "evaluate-answer"
	OpDraftAnswer       Operation = "draft-answer"
	OpGenerateFollowUps Operation = "generate-follow-ups"
)

// PromptFields is the bag of free-text inputs. Each operation reads only the
// fields it needs and any of them may be empty.
type PromptFields struct {
	JobDescription string
	CompanyValues  string
	CompanyInfo    string
	Resume         string
	Question       string
	Answer         string
}

// PromptBuilder fills the prompt templates. It holds no state.
type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build returns the prompt for op, or an error for an unknown selector.
func (pb *PromptBuilder) Build(op Operation, f PromptFields) (string, error) {
	switch op {
	case OpExtractJobInfo:
		return pb.BuildJobInfoPrompt(f.JobDescription, f.CompanyValues), nil
	case OpEvaluateAnswer:
		return pb.BuildEvaluationPrompt(f.Answer, f.JobDescription, f.CompanyValues), nil
	case OpDraftAnswer:
		return pb.BuildDraftPrompt(f.Question, f.CompanyInfo, f.JobDescription, f.Resume, f.Answer), nil
	case OpGenerateFollowUps:
		return pb.BuildFollowUpPrompt(f.JobDescription, f.Resume, f.Question, f.Answer), nil
	default:
		return "", fmt.Errorf("unknown prompt operation: %q", op)
	}
}

// BuildJobInfoPrompt creates prompt for job description analysis
func (pb *PromptBuilder) BuildJobInfoPrompt(jobDescription, companyValues string) string {
	return fmt.Sprintf(`SYSTEM: You are an expert career coach and interviewer with over 30 years of experience in the tech industry. Analyze the job description and company values below and classify every relevant piece of information.

INSTRUCTIONS:
1. Identify the company name and the position title.
2. Read the whole text for skills, requirements and values, explicit or implied.
3. Classify what you find into the categories below.

Company Name:
- The company name from the text
- If it is not stated, write "%s"

Position Title:
- Only the job title, without level indicators or adjectives
- Example: from "NetNation is seeking Junior to Mid-Range UX/UI Software Developers" write "UX/UI Software Developer"
- If it is not stated, write "%s"

Company Values:
- Culture, principles, mission and values, including implied ones

Technical Skills:
- Tools, languages, platforms, methodologies and domain knowledge, required or preferred

Soft Skills:
- Interpersonal, leadership and professional qualities

Job Duties:
- Responsibilities, day-to-day tasks, deliverables and team contributions

FORMAT YOUR RESPONSE EXACTLY AS FOLLOWS:
%s

Keep each bullet point under 10 words.

JOB DESCRIPTION: %s
COMPANY VALUES: %s`,
		models.DefaultCompanyName,
		models.DefaultPositionTitle,
		jobInfoSkeleton(),
		jobDescription, companyValues)
}

func jobInfoSkeleton() string {
	placeholders := []string{
		"[company name]",
		"[position title]",
		"- [value 1]\n- [value 2]",
		"- [skill 1]\n- [skill 2]",
		"- [skill 1]\n- [skill 2]",
		"- [duty 1]\n- [duty 2]",
	}

	var sections []string
	for i, header := range JobInfoHeaders {
		sections = append(sections, header+"\n"+placeholders[i])
	}
	return strings.Join(sections, "\n\n")
}

// BuildEvaluationPrompt creates prompt for scoring an interview answer
func (pb *PromptBuilder) BuildEvaluationPrompt(answer, jobDescription, companyValues string) string {
	return fmt.Sprintf(`SYSTEM: You are an experienced tech-industry interviewer of over 30 years and an expert evaluator of interview responses. Assess the answer on the criteria below.

INSTRUCTIONS:
- %[1]s: Is the response structured and easy to understand?
- %[2]s: Does it address the job's required skills and reflect company values?
- %[3]s: Does the tone convey certainty and professionalism?
- The candidate may be nervous or not a native English speaker, so do not be too strict.
- Start with positive feedback, then give suggestions for improvement.
- Use a friendly, professional and encouraging tone.
- Keep the feedback between 150 and 250 words.
- Give a score out of 10 for each criterion on its own line, exactly in this shape:
%[1]s: N/10
%[2]s: N/10
%[3]s: N/10

USER VOICE ANSWER: %[4]s
JOB DESCRIPTION: %[5]s
COMPANY VALUES: %[6]s`,
		LabelClarity, LabelRelevance, LabelConfidence,
		answer, jobDescription, companyValues)
}

// BuildDraftPrompt creates prompt for drafting a model answer
func (pb *PromptBuilder) BuildDraftPrompt(question, companyInfo, jobDescription, resume, answer string) string {
	return fmt.Sprintf(`SYSTEM: You are a professional interview coach and writer with over 30 years of experience in the tech industry. Draft a strong, structured answer that would get this user hired by a top tech company.

INSTRUCTIONS:
- Keep a clear, logical flow.
- Bring in the company values where relevant.
- Highlight the technical and soft skills from the job description.
- Let the Amazon Leadership Principles guide the answer.
- Build on the user's voice answer and the experience in their resume.
- Structure the answer with the STAR method (situation, task, action, result).
- Be concise without losing completeness.
- Keep a confident, positive tone.
- The answer should take 90 seconds to 2 minutes to say.
- Use the language of the user's voice answer when possible.
- If there is no information, output "Not found".

QUESTION: %s
COMPANY INFO: %s
JOB DESCRIPTION: %s
USER RESUME: %s
USER VOICE ANSWER: %s`,
		question, companyInfo, jobDescription, resume, answer)
}

// BuildFollowUpPrompt creates prompt for follow-up question generation
func (pb *PromptBuilder) BuildFollowUpPrompt(jobDescription, resume, question, answer string) string {
	return fmt.Sprintf(`SYSTEM: You are an expert interviewer with 30 years of experience hiring for top tech companies. Generate 2-3 thoughtful follow-up questions based on the candidate's interview answer.

INSTRUCTIONS:
- Find areas of the answer worth exploring further.
- Dig deeper into the candidate's experience or skills.
- Take the job requirements and the resume into account.
- Let the candidate elaborate on strengths and address weaknesses constructively.
- Make each question specific to the response, concise and direct.
- Format the output as a numbered list (1., 2., 3.).

JOB DESCRIPTION:
%s

RESUME:
%s

INTERVIEW QUESTION:
%s

CANDIDATE'S ANSWER:
%s

FOLLOW-UP QUESTIONS (generate exactly 2-3):`,
		jobDescription, resume, question, answer)
}
