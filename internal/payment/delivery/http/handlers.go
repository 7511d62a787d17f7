package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"karobar-dashboard/internal/model"
	"karobar-dashboard/internal/payment"
	"karobar-dashboard/pkg/response"
)

type checkoutReq struct {
	Provider string  `json:"provider" binding:"required"`
	Amount   float64 `json:"amount"`
	Plan     string  `json:"plan"     binding:"required"`
}

type checkoutResp struct {
	Transaction model.Transaction `json:"transaction"`
	CheckoutURL string            `json:"checkout_url"`
}

// Checkout godoc
// @Summary     Run a mocked checkout
// @Description Simulates a gateway payment; a success upgrades the user's tier to the purchased plan.
// @Tags        Payments
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      false "User scope for the tier upgrade"
// @Param       body      body   checkoutReq true  "Checkout data"
// @Success     200 {object} checkoutResp
// @Failure     400 {object} response.Resp "Validation failure"
// @Failure     429 {object} response.Resp "Rate limited"
// @Failure     502 {object} response.Resp "Simulated gateway failure"
// @Router      /api/v1/payments/checkout [POST]
func (h *handler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()

	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Checkout(ctx, payment.CheckoutInput{
		UserID:   userScope(c),
		Provider: model.PaymentProvider(req.Provider),
		Amount:   req.Amount,
		Plan:     model.Tier(req.Plan),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Checkout: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, checkoutResp{
		Transaction: output.Transaction,
		CheckoutURL: output.CheckoutURL,
	})
}

func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrGatewayUnavailable):
		response.BadGateway(c, err)
	case errors.Is(err, payment.ErrInvalidAmount),
		errors.Is(err, payment.ErrMissingUser),
		errors.Is(err, payment.ErrUnknownTier),
		errors.Is(err, payment.ErrUnknownProvider):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}

// userScope resolves the tier accounting scope, defaulting to the single
// local user.
func userScope(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "local"
}
