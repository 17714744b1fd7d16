package models

// QuestionID identifies one of the fixed quiz questions.
type QuestionID string

const (
	QuestionBusiness QuestionID = "business"
	QuestionTeam     QuestionID = "team"
	QuestionPileup   QuestionID = "pileup"
	QuestionAIUse    QuestionID = "ai_use"
	QuestionGoal     QuestionID = "goal"
)

// QuestionOrder is the order the wizard walks through.
var QuestionOrder = []QuestionID{
	QuestionBusiness,
	QuestionTeam,
	QuestionPileup,
	QuestionAIUse,
	QuestionGoal,
}

type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type Question struct {
	ID      QuestionID `json:"id"`
	Prompt  string     `json:"prompt"`
	Options []Option   `json:"options"`
}

// HasValue reports whether v is one of the option values.
func (q Question) HasValue(v string) bool {
	for _, o := range q.Options {
		if o.Value == v {
			return true
		}
	}
	return false
}

// LabelFor resolves an option value to its label. Unknown values come back as-is.
func (q Question) LabelFor(v string) string {
	for _, o := range q.Options {
		if o.Value == v {
			return o.Label
		}
	}
	return v
}

// AnswerSet maps every question to the selected option value ("" = unanswered).
type AnswerSet map[QuestionID]string

// DefaultAnswers returns a full answer set with every question unanswered.
func DefaultAnswers() AnswerSet {
	out := make(AnswerSet, len(QuestionOrder))
	for _, id := range QuestionOrder {
		out[id] = ""
	}
	return out
}

// Merge lays partial on top of the default template so every key is present.
// Keys that are not quiz questions are dropped.
func (a AnswerSet) Merge(partial AnswerSet) AnswerSet {
	out := DefaultAnswers()
	for id := range out {
		if v, ok := a[id]; ok {
			out[id] = v
		}
		if v, ok := partial[id]; ok {
			out[id] = v
		}
	}
	return out
}

// Clone copies the set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
