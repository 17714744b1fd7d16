package models

// PlanKey is the single canonical identifier of a catalog plan.
type PlanKey string

const (
	PlanLeadFollowUp      PlanKey = "plan1"
	PlanContentEngine     PlanKey = "plan2"
	PlanCustomerQuestions PlanKey = "plan3"
	PlanAdminAutopilot    PlanKey = "plan4"
	PlanWeeklyReporting   PlanKey = "plan5"
)

// DefaultPlanKey is used whenever the pileup answer is missing or unknown.
const DefaultPlanKey = PlanLeadFollowUp

// Plan is one fixed 7-day content package.
type Plan struct {
	Key         PlanKey     `json:"key" yaml:"key"`
	Name        string      `json:"name" yaml:"name"`
	Pitch       string      `json:"pitch" yaml:"pitch"`
	Days        []Day       `json:"days" yaml:"days"`
	DIY         DIYPath     `json:"diy" yaml:"diy"`
	BuildForYou BuildForYou `json:"buildForYou" yaml:"build_for_you"`
}

type Day struct {
	Number  int    `json:"number" yaml:"number"`
	Title   string `json:"title" yaml:"title"`
	Summary string `json:"summary" yaml:"summary"`
	Steps   []Step `json:"steps" yaml:"steps"`
}

// Step is one copy-paste exercise. The prompt body is composed from Role,
// Questions, Output and Placeholder so every prompt has the same shape.
type Step struct {
	ID          string   `json:"id" yaml:"id"`
	Number      int      `json:"number" yaml:"number"`
	Title       string   `json:"title" yaml:"title"`
	Goal        string   `json:"goal" yaml:"goal"`
	Paste       string   `json:"paste" yaml:"paste"`
	Example     string   `json:"example" yaml:"example"`
	Role        string   `json:"role" yaml:"role"`
	Questions   []string `json:"questions" yaml:"questions"`
	Output      []string `json:"output" yaml:"output"`
	Placeholder string   `json:"placeholder" yaml:"placeholder"`
	HowToUse    []string `json:"howToUse" yaml:"how_to_use"`
	Done        []string `json:"done" yaml:"done"`
	PromptBody  string   `json:"prompt" yaml:"-"`
}

type DIYPath struct {
	TimeEstimate     string   `json:"timeEstimate" yaml:"time_estimate"`
	CalendarEstimate string   `json:"calendarEstimate" yaml:"calendar_estimate"`
	Needs            []string `json:"needs" yaml:"needs"`
	Risks            []string `json:"risks" yaml:"risks"`
	StarterPrompts   []string `json:"starterPrompts" yaml:"starter_prompts"`
}

type BuildForYou struct {
	Outputs []string `json:"outputs" yaml:"outputs"`
	Quality []string `json:"quality" yaml:"quality"`
}
