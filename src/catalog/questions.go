package catalog

import "Backend-Brightlane-Leadkit/src/models"

var questions = []models.Question{
	{
		ID:     models.QuestionBusiness,
		Prompt: "What kind of business do you run?",
		Options: []models.Option{
			{Value: "home-services", Label: "Home services (trades, cleaning, landscaping)"},
			{Value: "professional", Label: "Professional services (accounting, legal, consulting)"},
			{Value: "health-wellness", Label: "Health and wellness (clinic, studio, coaching)"},
			{Value: "retail", Label: "Retail or e-commerce"},
			{Value: "other", Label: "Something else"},
		},
	},
	{
		ID:     models.QuestionTeam,
		Prompt: "How many people work in the business, including you?",
		Options: []models.Option{
			{Value: "solo", Label: "Just me"},
			{Value: "2-5", Label: "2 to 5"},
			{Value: "6-20", Label: "6 to 20"},
			{Value: "21-50", Label: "21 to 50"},
			{Value: "50+", Label: "More than 50"},
		},
	},
	{
		ID:     models.QuestionPileup,
		Prompt: "Where does work pile up the most?",
		Options: []models.Option{
			{Value: "lead-follow-up", Label: "Following up with leads and inquiries"},
			{Value: "content", Label: "Creating marketing content and social posts"},
			{Value: "customer-questions", Label: "Answering the same customer questions"},
			{Value: "admin", Label: "Scheduling, invoicing and admin paperwork"},
			{Value: "reporting", Label: "Pulling numbers together for reports"},
		},
	},
	{
		ID:     models.QuestionAIUse,
		Prompt: "How are you using AI today?",
		Options: []models.Option{
			{Value: "never", Label: "Haven't tried it yet"},
			{Value: "dabbling", Label: "I've played with ChatGPT a few times"},
			{Value: "weekly", Label: "I use it most weeks for small tasks"},
			{Value: "daily", Label: "It's part of my daily routine"},
		},
	},
	{
		ID:     models.QuestionGoal,
		Prompt: "What would you do with five extra hours a week?",
		Options: []models.Option{
			{Value: "grow", Label: "Win more customers"},
			{Value: "serve", Label: "Serve existing customers better"},
			{Value: "build", Label: "Build a new offer or product"},
			{Value: "rest", Label: "Get my evenings and weekends back"},
		},
	},
}

// Questions returns the fixed quiz questions in wizard order.
func Questions() []models.Question {
	out := make([]models.Question, len(questions))
	copy(out, questions)
	return out
}

// QuestionAt returns the question shown at wizard step i.
func QuestionAt(i int) (models.Question, bool) {
	if i < 0 || i >= len(questions) {
		return models.Question{}, false
	}
	return questions[i], true
}

// Question looks a question up by id.
func Question(id models.QuestionID) (models.Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

// Labels resolves raw option values to the labels stored on a submission.
func Labels(answers models.AnswerSet) models.AnswerLabels {
	label := func(id models.QuestionID) string {
		q, ok := Question(id)
		if !ok {
			return answers[id]
		}
		return q.LabelFor(answers[id])
	}
	return models.AnswerLabels{
		Business: label(models.QuestionBusiness),
		Team:     label(models.QuestionTeam),
		Pileup:   label(models.QuestionPileup),
		AIUse:    label(models.QuestionAIUse),
		Goal:     label(models.QuestionGoal),
	}
}
