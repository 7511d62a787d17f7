package http

import (
	"karobar-dashboard/internal/budget"
	"karobar-dashboard/internal/model"
)

// --- Request DTOs ---

type categoryReq struct {
	Name      string  `json:"name"      binding:"required,max=100"`
	Allocated float64 `json:"allocated" binding:"min=0"`
}

type createReq struct {
	Name        string             `json:"name"`
	TotalAmount float64            `json:"totalAmount"`
	Period      model.BudgetPeriod `json:"period" binding:"omitempty,oneof=monthly quarterly yearly"`
	Categories  []categoryReq      `json:"categories"`
}

func (r createReq) toInput() budget.CreateInput {
	categories := make([]budget.CategoryInput, len(r.Categories))
	for i, c := range r.Categories {
		categories[i] = budget.CategoryInput{Name: c.Name, Allocated: c.Allocated}
	}
	return budget.CreateInput{
		Name:        r.Name,
		TotalAmount: r.TotalAmount,
		Period:      r.Period,
		Categories:  categories,
	}
}

type updateCategoryReq struct {
	Allocated *float64 `json:"allocated"`
	Spent     *float64 `json:"spent"`
}

// --- Response DTOs ---

type createResp struct {
	Budget model.Budget `json:"budget"`
}

type listResp struct {
	Budgets []model.Budget `json:"budgets"`
	Total   int            `json:"total"`
}

// detailResp is the stored budget plus its fully recomputed view.
type detailResp struct {
	Budget     model.Budget             `json:"budget"`
	TotalSpent float64                  `json:"totalSpent"`
	Variance   float64                  `json:"variance"`
	Categories []budget.CategoryMetrics `json:"categories"`
}

func newDetailResp(out budget.DetailOutput) detailResp {
	return detailResp{
		Budget:     out.Budget,
		TotalSpent: out.TotalSpent,
		Variance:   out.Variance,
		Categories: out.Categories,
	}
}
