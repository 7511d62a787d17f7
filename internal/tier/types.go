package tier

import "karobar-dashboard/internal/model"

// Feature names gated by the tier service.
const (
	FeatureTasks = "tasks"
)

// Limits maps tier → feature → allowance. A limit of -1 means unlimited.
type Limits map[model.Tier]map[string]int

// DefaultLimits mirrors the source app's plans.
func DefaultLimits(starterTasks, proTasks int) Limits {
	return Limits{
		model.TierStarter:      {FeatureTasks: starterTasks},
		model.TierProfessional: {FeatureTasks: proTasks},
	}
}
