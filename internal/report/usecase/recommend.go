package usecase

import "karobar-dashboard/internal/model"

// recommend evaluates each advisory rule independently and returns every
// message that applies, in rule order. Zero or more may fire; the budget
// rules (high-burn vs under-spend) can never both hold for the same
// utilization/completion pair.
func recommend(p model.Project) []string {
	var (
		util = budgetUtilization(p)
		rate = completionRate(p)
		recs []string
	)

	if util > 90 && rate < 90 {
		recs = append(recs, "Budget is nearly exhausted but work is incomplete. Review remaining scope against the remaining budget.")
	}
	if rate > 80 && p.Status == model.ProjectInProgress {
		recs = append(recs, "Project is nearing completion. Start planning the closure and handover phase.")
	}
	if util < 50 && rate > 70 {
		recs = append(recs, "Spend is low relative to progress. Budget may be over-allocated for this project.")
	}
	if p.TeamMembers > 5 {
		recs = append(recs, "Large team size may increase coordination overhead. Consider splitting into smaller workstreams.")
	}

	return recs
}
