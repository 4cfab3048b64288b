package services

import "strings"

const (
	CategoryIntroduction  = "Introduction"
	CategoryStrengths     = "Strengths & Weaknesses"
	CategoryCareerGoals   = "Career Goals"
	CategoryTeamwork      = "Teamwork & Collaboration"
	CategoryLeadership    = "Leadership & Initiative"
	CategoryProblemSolver = "Problem Solving & Adaptability"
)

const (
	QuestionWhyOurCompany      = "Why do you want to work at our company?"
	QuestionRelevantExperience = "Tell me about your most relevant experience for this role"
)

// Categories is the display order of the question catalog.
var Categories = []string{
	CategoryIntroduction,
	CategoryStrengths,
	CategoryCareerGoals,
	CategoryTeamwork,
	CategoryLeadership,
	CategoryProblemSolver,
}

// QuestionSet maps a category to its ordered questions.
type QuestionSet map[string][]string

func baseQuestions() QuestionSet {
	return QuestionSet{
		CategoryIntroduction: {
			"Tell me about yourself",
			QuestionRelevantExperience,
		},
		CategoryStrengths: {
			"What's your greatest strength?",
			"What's your greatest weakness?",
			"What's your biggest accomplishment?",
			"What's your biggest failure?",
		},
		CategoryCareerGoals: {
			"Why do you want this job?",
			"Where do you see yourself in 5 years?",
			QuestionWhyOurCompany,
		},
		CategoryTeamwork: {
			"Tell me about a time you worked in a team. How did you contribute?",
			"Can you describe a time when you faced a conflict in a team setting? " +
				"How did you handle the situation, and what was the outcome?",
			"Can you describe a situation where you had to work with a difficult " +
				"colleague or client?",
		},
		CategoryLeadership: {
			"Describe a time you led/motivated others. How were you able to?",
			"How do you motivate team members?",
			"Can you share an example of a time when you took initiative? " +
				"What was the situation, and what impact did your actions have?",
		},
		CategoryProblemSolver: {
			"How do you tackle challenges? Name a difficult challenge you faced " +
				"while working on a project, how you overcame it, and what you learned.",
			"Describe a time you experienced a major change at work. How did you adapt?",
			"Can you share an example of a time when you used creativity to solve " +
				"a challenging problem? What approach did you take, and what was the result?",
			"How do you handle ambiguity or uncertainty in your work?",
		},
	}
}

// GenerateSampleQuestions returns a fresh catalog for the given inputs. The
// company and resume questions are appended only when missing, so repeated
// calls never duplicate them. The job description does not change the catalog.
func GenerateSampleQuestions(jobDesc, companyInfo, resume string) QuestionSet {
	questions := baseQuestions()

	// Both conditional questions already ship in the base catalog, so these
	// appends are no-ops today; appendOnce keeps them from duplicating.
	if strings.TrimSpace(companyInfo) != "" {
		questions.appendOnce(CategoryCareerGoals, QuestionWhyOurCompany)
	}

	if strings.TrimSpace(resume) != "" {
		questions.appendOnce(CategoryIntroduction, QuestionRelevantExperience)
	}

	return questions
}

// FullCatalog is the catalog with every conditional question included.
func FullCatalog() QuestionSet {
	questions := baseQuestions()
	questions.appendOnce(CategoryCareerGoals, QuestionWhyOurCompany)
	questions.appendOnce(CategoryIntroduction, QuestionRelevantExperience)
	return questions
}

func (q QuestionSet) appendOnce(category, question string) {
	for _, existing := range q[category] {
		if existing == question {
			return
		}
	}
	q[category] = append(q[category], question)
}

// QuestionHints returns the hint shown next to each catalog question.
func QuestionHints() map[string]string {
	return map[string]string{
		"Tell me about yourself": "Focus on your professional background, key achievements, and why " +
			"you're a good fit for this role.",
		"What's your greatest strength?": "Choose a strength relevant to the job. Provide specific examples " +
			"that demonstrate this strength.",
		"Why do you want this job?": "Connect your skills and career goals to the role and company. " +
			"Show you've done your research.",
		"Where do you see yourself in 5 years?": "Discuss your career goals and how they align with the company's " +
			"growth trajectory.",
		QuestionWhyOurCompany: "Demonstrate your knowledge of the company's values, culture, " +
			"and mission.",
		QuestionRelevantExperience: "Focus on experience that directly relates to the job requirements. " +
			"Use the STAR method.",
		"Describe a time you led/motivated others. How were you able to?": "Describe a time when you led a team through a challenge. " +
			"Explain how you tailored your approach to different team members.",
		"What's your greatest weakness?": "Choose a weakness that isn't critical to the job, and show " +
			"how you're actively working to improve it.",
		"What's your biggest accomplishment?": "Focus on a significant achievement that showcases your skills " +
			"and dedication.",
		"What's your biggest failure?": "Share a failure that taught you a valuable lesson, emphasizing " +
			"what you learned and how you grew from it.",
		"How do you motivate team members?": "Focus on your ability to inspire and guide others, using " +
			"your own experiences as examples.",
		"Tell me about a time you worked in a team. How did you contribute?": "Describe your specific role in the team. Highlight a successful " +
			"outcome that resulted from your teamwork.",
		"Can you describe a time when you faced a conflict in a team setting? " +
			"How did you handle the situation, and what was the outcome?": "Highlight empathy, communication, and positive resolution. " +
			"Focus on lessons learned.",
		"Can you describe a situation where you had to work with a difficult " +
			"colleague or client?": "Describe the specific challenges faced and positive outcomes. " +
			"Emphasize professional handling of the situation.",
		"Describe a time you experienced a major change at work. How did you adapt?": "Pick an example where you adapted to significant change. " +
			"Mention if you helped others adapt as well.",
		"Can you share an example of a time when you used creativity to solve " +
			"a challenging problem? What approach did you take, and what was the result?": "Focus on analysis, creativity, and creating opportunities. " +
			"Describe the outcome and impact.",
		"Can you share an example of a time when you took initiative? " +
			"What was the situation, and what impact did your actions have?": "Highlight being proactive, making positive changes, and " +
			"the measurable impact of your actions.",
		"How do you tackle challenges? Name a difficult challenge you faced " +
			"while working on a project, how you overcame it, and what you learned.": "Demonstrate perseverance, resourcefulness, and " +
			"problem-solving abilities.",
		"How do you handle ambiguity or uncertainty in your work?": "Emphasize strategies for approaching uncertain situations. " +
			"Discuss taking ownership and being adaptable.",
	}
}
