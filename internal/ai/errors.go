package ai

import "errors"

// Every failing stage wraps exactly one of these, so the fallback policy can
// tell why an operation degraded.
var (
	ErrUnavailable = errors.New("ai: model unavailable")
	ErrTransport   = errors.New("ai: provider call failed")
	ErrParse       = errors.New("ai: response is not valid JSON")
	ErrShape       = errors.New("ai: response has unexpected shape")
)

// Reason names the stage that failed, for logs.
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrTransport):
		return "transport"
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrShape):
		return "shape"
	default:
		return "unknown"
	}
}
