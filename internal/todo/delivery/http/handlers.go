package http

import (
	"github.com/gin-gonic/gin"

	"karobar-dashboard/pkg/response"
)

// List godoc
// @Summary     List todos
// @Description Fetches all tasks from the store and applies the filter/search/category triple.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       filter   query string false "Completion filter (all/pending/completed)"
// @Param       search   query string false "Case-insensitive search over title and description"
// @Param       category query string false "Category tag (or 'all')"
// @Success     200 {object} listResp
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a todo
// @Description Creates a task in the store. Rejected when the title is blank or the tier limit is reached.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string false "User scope for tier accounting"
// @Param       body body createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Validation or tier-limit failure"
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput(userScope(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Update godoc
// @Summary     Update a todo
// @Description Sends the full edited record to the store and returns the store's version.
// @Tags        Todos
// @Accept      json
// @Produce     json
// @Param       id   path string true "Task ID"
// @Param       body body updateReq true "Full task record"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Flips the completed flag; only the derived status field is sent to the store.
// @Tags        Todos
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Unknown task"
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/todos/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Toggle(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Delete godoc
// @Summary     Delete a todo (projection only)
// @Description Removes the task from the dashboard; the store record is intentionally kept.
// @Tags        Todos
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} deleteResp
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.Delete(ctx, id); err != nil {
		h.respondError(c, err)
		return
	}

	response.OK(c, deleteResp{ID: id})
}

// Stats godoc
// @Summary     Todo statistics
// @Description Totals plus overdue count (pending tasks due strictly before now).
// @Tags        Todos
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     502 {object} response.Resp "Task store unavailable"
// @Router      /api/v1/todos/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// userScope resolves the tier accounting scope. The dashboard has no auth
// layer; a missing header maps to the single local user of the source app.
func userScope(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "local"
}
