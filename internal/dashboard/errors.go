package dashboard

import "errors"

var (
	ErrInvalidWindow = errors.New("invalid events window")
	ErrUnavailable   = errors.New("dashboard unavailable: every section failed")
)
