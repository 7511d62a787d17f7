package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/report"
	"karobar-dashboard/pkg/response"
)

type listResp struct {
	Projects []model.Project `json:"projects"`
	Total    int             `json:"total"`
}

type detailResp struct {
	Project         model.Project  `json:"project"`
	Summary         report.Summary `json:"summary"`
	Recommendations []string       `json:"recommendations"`
}

// List godoc
// @Summary     List projects
// @Tags        Reports
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/projects [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, listResp{Projects: output.Projects, Total: output.Total})
}

// Detail godoc
// @Summary     Project detail
// @Description One project with derived summary metrics and advisory recommendations.
// @Tags        Reports
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Unknown project"
// @Router      /api/v1/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	recs := output.Recommendations
	if recs == nil {
		recs = []string{}
	}
	response.OK(c, detailResp{
		Project:         output.Project,
		Summary:         output.Summary,
		Recommendations: recs,
	})
}

// ExportReport godoc
// @Summary     Export a project report
// @Description Returns the report document as a JSON attachment named after the project.
// @Tags        Reports
// @Produce     json
// @Param       id path string true "Project ID"
// @Success     200 {object} report.Document
// @Failure     404 {object} response.Resp "Unknown project"
// @Router      /api/v1/projects/{id}/report [GET]
func (h *handler) ExportReport(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportReport(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportReport: %v", err)
		h.respondError(c, err)
		return
	}

	response.Attachment(c, output.Filename, output.Document)
}

func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, report.ErrProjectNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, err)
	}
}
