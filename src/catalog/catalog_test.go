package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-Brightlane-Leadkit/src/models"
	"Backend-Brightlane-Leadkit/src/testutil"
)

func TestPlanCatalogShape(t *testing.T) {
	suite := testutil.NewSuite("Plan Catalog Shape")
	defer suite.PrintSummary()

	all := Plans()
	require.Len(t, all, 5)

	for _, p := range all {
		p := p
		suite.Run(t, string(p.Key), func(t *testing.T) {
			assert.NotEmpty(t, p.Name)
			assert.NotEmpty(t, p.Pitch)
			require.Len(t, p.Days, DaysPerPlan)
			for i, d := range p.Days {
				assert.Equal(t, i+1, d.Number, "day numbers run 1..7")
				assert.NotEmpty(t, d.Title)
				assert.NotEmpty(t, d.Summary)
				require.Len(t, d.Steps, StepsPerDay, "day %d", d.Number)
				for j, s := range d.Steps {
					assert.Equal(t, j+1, s.Number)
					assert.NotEmpty(t, s.ID)
					assert.NotEmpty(t, s.Title)
					assert.NotEmpty(t, s.Goal, "%s day %d step %d goal", p.Key, d.Number, s.Number)
					assert.NotEmpty(t, s.PromptBody)
					assert.NotEmpty(t, s.HowToUse)
					assert.NotEmpty(t, s.Done)
				}
			}
			assert.NotEmpty(t, p.DIY.TimeEstimate)
			assert.NotEmpty(t, p.DIY.CalendarEstimate)
			assert.NotEmpty(t, p.DIY.Needs)
			assert.NotEmpty(t, p.DIY.Risks)
			assert.NotEmpty(t, p.DIY.StarterPrompts)
			assert.NotEmpty(t, p.BuildForYou.Outputs)
			assert.NotEmpty(t, p.BuildForYou.Quality)
		})
	}
}

func TestPromptBodyLayout(t *testing.T) {
	p, ok := Plan(models.PlanLeadFollowUp)
	require.True(t, ok)
	s := p.Days[0].Steps[0]

	body := s.PromptBody
	assert.True(t, strings.HasPrefix(body, s.Role))
	assert.Contains(t, body, "1. "+s.Questions[0])
	assert.Contains(t, body, "- "+s.Output[0])
	assert.True(t, strings.HasSuffix(body, "["+s.Placeholder+"]"))

	// clarifying questions come before the output structure, which comes before the paste slot
	qi := strings.Index(body, s.Questions[0])
	oi := strings.Index(body, s.Output[0])
	pi := strings.Index(body, s.Placeholder)
	assert.Less(t, qi, oi)
	assert.Less(t, oi, pi)
}

func TestPlanOrDefault(t *testing.T) {
	assert.Equal(t, models.PlanWeeklyReporting, PlanOrDefault(models.PlanWeeklyReporting).Key)
	assert.Equal(t, models.DefaultPlanKey, PlanOrDefault("plan9").Key)
}

func TestSlugBoundary(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Plans() {
		slug := SlugFor(p.Key)
		assert.False(t, seen[slug], "duplicate slug %s", slug)
		seen[slug] = true

		key, ok := KeyForSlug(slug)
		assert.True(t, ok)
		assert.Equal(t, p.Key, key)

		key, ok = KeyForSlug(string(p.Key))
		assert.True(t, ok)
		assert.Equal(t, p.Key, key)
	}

	_, ok := KeyForSlug("not-a-plan")
	assert.False(t, ok)
}

func TestQuestions(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, len(models.QuestionOrder))
	for i, q := range qs {
		assert.Equal(t, models.QuestionOrder[i], q.ID)
		assert.NotEmpty(t, q.Prompt)
		assert.GreaterOrEqual(t, len(q.Options), 2)
	}

	_, ok := QuestionAt(5)
	assert.False(t, ok)
	_, ok = QuestionAt(-1)
	assert.False(t, ok)
}

func TestLabels(t *testing.T) {
	answers := models.DefaultAnswers()
	answers[models.QuestionPileup] = "reporting"
	answers[models.QuestionTeam] = "solo"

	labels := Labels(answers)
	assert.Equal(t, "Pulling numbers together for reports", labels.Pileup)
	assert.Equal(t, "Just me", labels.Team)
	assert.Equal(t, "", labels.Goal)
}
