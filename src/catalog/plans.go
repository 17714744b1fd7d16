package catalog

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"Backend-Brightlane-Leadkit/src/models"
)

//go:embed plans/*.yaml
var planFiles embed.FS

const (
	DaysPerPlan = 7
	StepsPerDay = 3
)

var plans = mustLoadPlans()

func mustLoadPlans() map[models.PlanKey]models.Plan {
	out, err := loadPlans()
	if err != nil {
		panic("catalog: " + err.Error())
	}
	return out
}

func loadPlans() (map[models.PlanKey]models.Plan, error) {
	entries, err := planFiles.ReadDir("plans")
	if err != nil {
		return nil, err
	}

	out := make(map[models.PlanKey]models.Plan, len(entries))
	for _, e := range entries {
		raw, err := planFiles.ReadFile("plans/" + e.Name())
		if err != nil {
			return nil, err
		}
		var p models.Plan
		if err := yaml.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		for d := range p.Days {
			for s := range p.Days[d].Steps {
				step := &p.Days[d].Steps[s]
				if step.Number == 0 {
					step.Number = s + 1
				}
				if step.ID == "" {
					step.ID = fmt.Sprintf("d%d-s%d", p.Days[d].Number, step.Number)
				}
				body, err := composePrompt(*step)
				if err != nil {
					return nil, fmt.Errorf("%s day %d step %d: %w", e.Name(), p.Days[d].Number, step.Number, err)
				}
				step.PromptBody = body
			}
		}
		if _, dup := out[p.Key]; dup {
			return nil, fmt.Errorf("%s: duplicate plan key %q", e.Name(), p.Key)
		}
		out[p.Key] = p
	}
	return out, nil
}

// Plan returns the catalog entry for key.
func Plan(key models.PlanKey) (models.Plan, bool) {
	p, ok := plans[key]
	return p, ok
}

// PlanOrDefault never fails: unknown keys resolve to the default plan.
func PlanOrDefault(key models.PlanKey) models.Plan {
	if p, ok := plans[key]; ok {
		return p
	}
	return plans[models.DefaultPlanKey]
}

// Plans lists every plan ordered by key.
func Plans() []models.Plan {
	out := make([]models.Plan, 0, len(plans))
	for _, p := range plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
