package catalog

import (
	"strings"

	"Backend-Brightlane-Leadkit/src/models"
)

// pileupPlans maps both the option value and the option label of the pileup
// question to a plan. Keys are normalized with normalizeAnswer.
var pileupPlans = map[string]models.PlanKey{
	"lead-follow-up":                        models.PlanLeadFollowUp,
	"following up with leads and inquiries": models.PlanLeadFollowUp,

	"content":                                     models.PlanContentEngine,
	"creating marketing content and social posts": models.PlanContentEngine,

	"customer-questions":                    models.PlanCustomerQuestions,
	"answering the same customer questions": models.PlanCustomerQuestions,

	"admin":                                     models.PlanAdminAutopilot,
	"scheduling, invoicing and admin paperwork": models.PlanAdminAutopilot,

	"reporting":                            models.PlanWeeklyReporting,
	"pulling numbers together for reports": models.PlanWeeklyReporting,
}

// SelectPlan maps a pileup answer (value or label) to a plan key.
// Anything unknown, including "", selects the default plan.
func SelectPlan(answer string) models.PlanKey {
	if key, ok := pileupPlans[normalizeAnswer(answer)]; ok {
		return key
	}
	return models.DefaultPlanKey
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
