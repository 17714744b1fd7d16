package leads

import (
	"time"

	"Backend-Brightlane-Leadkit/src/catalog"
	"Backend-Brightlane-Leadkit/src/models"

	"github.com/google/uuid"
)

// BuildSubmission turns a validated gate pass into the record that is
// persisted and dispatched. Answers are stored as labels; the plan comes
// from the selector.
func BuildSubmission(f ContactFields, answers models.AnswerSet, utm *models.UTM, pagePath string, now time.Time) models.Submission {
	key := catalog.SelectPlan(answers[models.QuestionPileup])
	plan := catalog.PlanOrDefault(key)

	var attribution *models.UTM
	if utm != nil && !utm.IsZero() {
		u := *utm
		attribution = &u
	}

	return models.Submission{
		ID:         uuid.NewString(),
		FirstName:  f.FirstName,
		LastName:   f.LastName,
		Email:      f.Email,
		WebsiteURL: f.WebsiteURL,
		Answers:    catalog.Labels(answers),
		PlanKey:    plan.Key,
		PlanName:   plan.Name,
		CreatedAt:  now.UTC().Format(time.RFC3339),
		UTM:        attribution,
		PagePath:   pagePath,
	}
}
