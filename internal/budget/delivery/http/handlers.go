package http

import (
	"github.com/gin-gonic/gin"

	"karobar-dashboard/internal/budget"
	"karobar-dashboard/pkg/response"
)

// Create godoc
// @Summary     Create a budget
// @Description Creates a budget with zero-spend categories and active status.
// @Tags        Budgets
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Budget data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Router      /api/v1/budgets [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, createResp{Budget: output.Budget})
}

// List godoc
// @Summary     List budgets
// @Tags        Budgets
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/budgets [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, listResp{Budgets: output.Budgets, Total: output.Total})
}

// Detail godoc
// @Summary     Budget detail
// @Description One budget with totals, variance, and per-category status recomputed.
// @Tags        Budgets
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Unknown budget"
// @Router      /api/v1/budgets/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDetailResp(output))
}

// AddCategory godoc
// @Summary     Add a category
// @Tags        Budgets
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Budget ID"
// @Param       body body categoryReq true "Category data"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Validation failure or duplicate name"
// @Failure     404 {object} response.Resp "Unknown budget"
// @Router      /api/v1/budgets/{id}/categories [POST]
func (h *handler) AddCategory(c *gin.Context) {
	ctx := c.Request.Context()

	var req categoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddCategory(ctx, budget.AddCategoryInput{
		BudgetID:  c.Param("id"),
		Name:      req.Name,
		Allocated: req.Allocated,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.AddCategory: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDetailResp(output))
}

// UpdateCategory godoc
// @Summary     Update a category
// @Description Edits allocation and/or spend. Over-spend is accepted and reflected in status.
// @Tags        Budgets
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Budget ID"
// @Param       name path string            true "Category name"
// @Param       body body updateCategoryReq true "Fields to change"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Unknown budget or category"
// @Router      /api/v1/budgets/{id}/categories/{name} [PUT]
func (h *handler) UpdateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateCategory(ctx, budget.UpdateCategoryInput{
		BudgetID:  c.Param("id"),
		Name:      c.Param("name"),
		Allocated: req.Allocated,
		Spent:     req.Spent,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateCategory: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDetailResp(output))
}

// DeleteCategory godoc
// @Summary     Delete a category
// @Tags        Budgets
// @Produce     json
// @Param       id   path string true "Budget ID"
// @Param       name path string true "Category name"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Unknown budget or category"
// @Router      /api/v1/budgets/{id}/categories/{name} [DELETE]
func (h *handler) DeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.DeleteCategory(ctx, c.Param("id"), c.Param("name"))
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteCategory: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newDetailResp(output))
}

// ExportReport godoc
// @Summary     Export a budget report
// @Description Returns the report document as a JSON attachment named after the budget.
// @Tags        Budgets
// @Produce     json
// @Param       id path string true "Budget ID"
// @Success     200 {object} budget.Report
// @Failure     404 {object} response.Resp "Unknown budget"
// @Router      /api/v1/budgets/{id}/report [GET]
func (h *handler) ExportReport(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportReport(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportReport: %v", err)
		h.respondError(c, err)
		return
	}

	response.Attachment(c, output.Filename, output.Report)
}
