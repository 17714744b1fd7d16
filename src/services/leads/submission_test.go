package leads

import (
	"testing"
	"time"

	"Backend-Brightlane-Leadkit/src/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildSubmission(t *testing.T) {
	answers := models.DefaultAnswers()
	answers[models.QuestionPileup] = "content"
	answers[models.QuestionTeam] = "solo"
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("x", 3600))

	sub := BuildSubmission(ContactFields{FirstName: "Jo", LastName: "Lee", Email: "jo@x.co", WebsiteURL: "https://x.co"},
		answers, &models.UTM{}, "/quiz", now)

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, models.PlanContentEngine, sub.PlanKey)
	assert.NotEmpty(t, sub.PlanName)
	assert.Equal(t, "Just me", sub.Answers.Team)
	assert.Equal(t, "Creating marketing content and social posts", sub.Answers.Pileup)
	assert.Equal(t, "2026-03-01T08:30:00Z", sub.CreatedAt)
	assert.Nil(t, sub.UTM, "empty attribution is dropped")
	assert.Equal(t, "/quiz", sub.PagePath)
}
