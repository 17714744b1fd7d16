package catalog

import "Backend-Brightlane-Leadkit/src/models"

// URL boundary only: routes address plans by slug, everything else uses PlanKey.
var planSlugs = map[models.PlanKey]string{
	models.PlanLeadFollowUp:      "lead-follow-up",
	models.PlanContentEngine:     "content-engine",
	models.PlanCustomerQuestions: "customer-answers",
	models.PlanAdminAutopilot:    "admin-autopilot",
	models.PlanWeeklyReporting:   "weekly-reporting",
}

// SlugFor returns the URL slug of a plan.
func SlugFor(key models.PlanKey) string {
	if s, ok := planSlugs[key]; ok {
		return s
	}
	return planSlugs[models.DefaultPlanKey]
}

// KeyForSlug resolves a URL slug. Plan keys are accepted as well so old
// links of the form /plans/plan3 keep working.
func KeyForSlug(slug string) (models.PlanKey, bool) {
	for k, s := range planSlugs {
		if s == slug || string(k) == slug {
			return k, true
		}
	}
	return "", false
}
