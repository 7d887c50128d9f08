// Package apierr defines the stable error kinds carried in every JSON
// error body alongside the human-readable message.
package apierr

const (
	Validation     = "validation"
	Authentication = "authentication"
	Authorization  = "authorization"
	NotFound       = "not_found"
	Conflict       = "conflict"
	RateLimited    = "rate_limited"
	Internal       = "internal"
)

// Body builds the JSON error payload: {"error": msg, "kind": kind}.
func Body(msg, kind string) map[string]any {
	return map[string]any{"error": msg, "kind": kind}
}
