package tier

import "errors"

var (
	ErrUnknownTier    = errors.New("unrecognized tier name")
	ErrUnknownFeature = errors.New("unrecognized feature")
)
