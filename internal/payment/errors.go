package payment

import "errors"

var (
	ErrInvalidAmount      = errors.New("payment amount must be positive")
	ErrMissingUser        = errors.New("user id is required")
	ErrUnknownTier        = errors.New("unrecognized plan name")
	ErrUnknownProvider    = errors.New("unrecognized payment provider")
	ErrGatewayUnavailable = errors.New("payment service is temporarily unavailable")
)
