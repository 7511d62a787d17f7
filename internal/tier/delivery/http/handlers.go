package http

import (
	"github.com/gin-gonic/gin"

	"karobar-dashboard/internal/tier"
	"karobar-dashboard/pkg/log"
	"karobar-dashboard/pkg/response"
)

type handler struct {
	l     log.Logger
	tiers tier.Manager
}

// New creates the HTTP handler for tier state.
func New(l log.Logger, tiers tier.Manager) *handler {
	return &handler{l: l, tiers: tiers}
}

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/tier", h.Current)
}

type tierResp struct {
	Tier  string         `json:"tier"`
	Usage map[string]int `json:"usage"`
}

// Current godoc
// @Summary     Current tier state
// @Description The caller's tier name and per-feature usage counters.
// @Tags        Tier
// @Produce     json
// @Param       X-User-ID header string false "User scope"
// @Success     200 {object} tierResp
// @Router      /api/v1/tier [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := h.tiers.Current(ctx, userScope(c))
	if err != nil {
		h.l.Errorf(ctx, "tiers.Current: %v", err)
		response.InternalError(c, err)
		return
	}

	usage := state.Usage
	if usage == nil {
		usage = map[string]int{}
	}
	response.OK(c, tierResp{Tier: string(state.Tier), Usage: usage})
}

func userScope(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "local"
}
