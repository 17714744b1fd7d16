// Package quiz holds the wizard state machine and the per-visitor funnel
// that binds it to storage and lead dispatch.
package quiz

import (
	"errors"

	"Backend-Brightlane-Leadkit/src/catalog"
	"Backend-Brightlane-Leadkit/src/models"
)

// Step is the wizard cursor: 0..4 are the questions, then the gate, then results.
type Step int

const (
	StepFirstQuestion Step = 0
	StepLastQuestion  Step = 4
	StepContactGate   Step = 5
	StepResults       Step = 6
)

var (
	ErrNoPreviousStep = errors.New("quiz: no previous step")
	ErrNotAQuestion   = errors.New("quiz: current step is not a question")
	ErrInvalidOption  = errors.New("quiz: not an option of the current question")
	ErrUnanswered     = errors.New("quiz: current question has no answer")
	ErrNotAtGate      = errors.New("quiz: contact details are only accepted at the gate")
	ErrEmailRequired  = errors.New("quiz: results require an email")
)

// State is everything the wizard remembers between requests.
type State struct {
	Cursor     Step             `json:"cursor"`
	Answers    models.AnswerSet `json:"answers"`
	Email      string           `json:"email"`
	WebsiteURL string           `json:"websiteUrl"`
}

func NewState() State {
	return State{Cursor: StepFirstQuestion, Answers: models.DefaultAnswers()}
}

// Normalize repairs a state that came from storage or an older version:
// clamps the cursor, fills missing answers and keeps results behind the gate.
func (s *State) Normalize() {
	if s.Cursor < StepFirstQuestion {
		s.Cursor = StepFirstQuestion
	}
	if s.Cursor > StepResults {
		s.Cursor = StepResults
	}
	s.Answers = models.DefaultAnswers().Merge(s.Answers)
	if s.Cursor == StepResults && s.Email == "" {
		s.Cursor = StepContactGate
	}
}

func (s State) IsQuestion() bool {
	return s.Cursor >= StepFirstQuestion && s.Cursor <= StepLastQuestion
}

// Question returns the question under the cursor.
func (s State) Question() (models.Question, bool) {
	if !s.IsQuestion() {
		return models.Question{}, false
	}
	return catalog.QuestionAt(int(s.Cursor))
}

// Select records value for the current question and moves forward.
func (s *State) Select(value string) error {
	q, ok := s.Question()
	if !ok {
		return ErrNotAQuestion
	}
	if !q.HasValue(value) {
		return ErrInvalidOption
	}
	s.Answers = s.Answers.Clone()
	s.Answers[q.ID] = value
	s.Cursor++
	return nil
}

// Next moves forward from a question that already has an answer.
func (s *State) Next() error {
	q, ok := s.Question()
	if !ok {
		return ErrNotAQuestion
	}
	if s.Answers[q.ID] == "" {
		return ErrUnanswered
	}
	s.Cursor++
	return nil
}

// Back steps to the previous question. Answers are kept.
func (s *State) Back() error {
	switch {
	case s.Cursor > StepFirstQuestion && s.Cursor <= StepContactGate:
		s.Cursor--
		return nil
	default:
		return ErrNoPreviousStep
	}
}

// Unlock passes the gate. The caller validates the contact details first.
func (s *State) Unlock(email, websiteURL string) error {
	if s.Cursor != StepContactGate {
		return ErrNotAtGate
	}
	if email == "" {
		return ErrEmailRequired
	}
	s.Email = email
	s.WebsiteURL = websiteURL
	s.Cursor = StepResults
	return nil
}

// Reset starts the quiz over.
func (s *State) Reset() {
	*s = NewState()
}

// SelectedPlan is the plan the current answers lead to.
func (s State) SelectedPlan() models.PlanKey {
	return catalog.SelectPlan(s.Answers[models.QuestionPileup])
}

type ViewKind string

const (
	ViewQuestion    ViewKind = "question"
	ViewContactGate ViewKind = "contact"
	ViewResults     ViewKind = "results"
)

// View is what a page needs to draw the current step.
type View struct {
	Kind      ViewKind         `json:"kind"`
	Step      Step             `json:"step"`
	Total     int              `json:"total"`
	Question  *models.Question `json:"question,omitempty"`
	Selected  string           `json:"selected,omitempty"`
	CanGoBack bool             `json:"canGoBack"`
	PlanKey   models.PlanKey   `json:"planKey,omitempty"`
}

// Number is the 1-based question number for progress display.
func (v View) Number() int {
	return int(v.Step) + 1
}

func (s State) View() View {
	v := View{
		Step:      s.Cursor,
		Total:     len(models.QuestionOrder),
		CanGoBack: s.Cursor > StepFirstQuestion && s.Cursor <= StepContactGate,
	}
	switch {
	case s.IsQuestion():
		v.Kind = ViewQuestion
		if q, ok := s.Question(); ok {
			v.Question = &q
			v.Selected = s.Answers[q.ID]
		}
	case s.Cursor == StepContactGate:
		v.Kind = ViewContactGate
	default:
		v.Kind = ViewResults
		v.PlanKey = s.SelectedPlan()
	}
	return v
}
