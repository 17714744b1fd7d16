package models

import "net/url"

// FormNameField carries the name of the static form a relayed post targets.
const FormNameField = "form-name"

// Form encodes the event as the snake_case fields of the static form relay.
func (e LeadEvent) Form(formName string) url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set(FormNameField, formName)
	set("event_type", string(e.Type))
	set("first_name", e.FirstName)
	set("last_name", e.LastName)
	set("email", e.Email)
	set("website_url", e.Website)
	set("business", e.Answers.Business)
	set("team_size", e.Answers.Team)
	set("pileup", e.Answers.Pileup)
	set("ai_use", e.Answers.AIUse)
	set("goal", e.Answers.Goal)
	set("plan_key", string(e.PlanKey))
	set("plan_name", e.PlanName)
	set("created_at", e.CreatedAt)
	set("page_path", e.PagePath)
	if e.UTM != nil {
		set("utm_source", e.UTM.Source)
		set("utm_medium", e.UTM.Medium)
		set("utm_campaign", e.UTM.Campaign)
		set("utm_term", e.UTM.Term)
		set("utm_content", e.UTM.Content)
	}
	return v
}

// LeadEventFromForm is the inverse of Form. get reads one form value.
// A missing event_type means a captured lead.
func LeadEventFromForm(get func(key string) string) LeadEvent {
	e := LeadEvent{
		Type:      LeadEventType(get("event_type")),
		FirstName: get("first_name"),
		LastName:  get("last_name"),
		Email:     get("email"),
		Website:   get("website_url"),
		Answers: AnswerLabels{
			Business: get("business"),
			Team:     get("team_size"),
			Pileup:   get("pileup"),
			AIUse:    get("ai_use"),
			Goal:     get("goal"),
		},
		PlanKey:   PlanKey(get("plan_key")),
		PlanName:  get("plan_name"),
		CreatedAt: get("created_at"),
		PagePath:  get("page_path"),
	}
	if e.Type == "" {
		e.Type = LeadCaptured
	}
	utm := UTM{
		Source:   get("utm_source"),
		Medium:   get("utm_medium"),
		Campaign: get("utm_campaign"),
		Term:     get("utm_term"),
		Content:  get("utm_content"),
	}
	if !utm.IsZero() {
		e.UTM = &utm
	}
	return e
}
