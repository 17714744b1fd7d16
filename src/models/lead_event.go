package models

// LeadEventType enumerates what the intake endpoint accepts.
type LeadEventType string

const (
	LeadCaptured LeadEventType = "lead_captured"
	KitRequested LeadEventType = "kit_requested"
)

// LeadEvent is the JSON body of POST /api/lead.
type LeadEvent struct {
	Type      LeadEventType `json:"type" validate:"required,oneof=lead_captured kit_requested"`
	Email     string        `json:"email" validate:"required,leademail"`
	FirstName string        `json:"firstName,omitempty" validate:"max=100"`
	LastName  string        `json:"lastName,omitempty" validate:"max=100"`
	Website   string        `json:"websiteUrl,omitempty" validate:"max=500"`
	Answers   AnswerLabels  `json:"answers"`
	PlanKey   PlanKey       `json:"planKey,omitempty" validate:"omitempty,oneof=plan1 plan2 plan3 plan4 plan5"`
	PlanName  string        `json:"planName,omitempty" validate:"max=200"`
	CreatedAt string        `json:"createdAt,omitempty"`
	PagePath  string        `json:"pagePath,omitempty" validate:"max=500"`
	UTM       *UTM          `json:"utm,omitempty"`
	UserAgent string        `json:"userAgent,omitempty" validate:"max=500"`
}

// LeadEventFromSubmission builds the intake payload for a finalized submission.
func LeadEventFromSubmission(s Submission) LeadEvent {
	return LeadEvent{
		Type:      LeadCaptured,
		Email:     s.Email,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Website:   s.WebsiteURL,
		Answers:   s.Answers,
		PlanKey:   s.PlanKey,
		PlanName:  s.PlanName,
		CreatedAt: s.CreatedAt,
		PagePath:  s.PagePath,
		UTM:       s.UTM,
	}
}
