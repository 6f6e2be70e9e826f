// Package constants defines shared constant values used across the application.
package constants

// Pagination defaults. Page and limit query parameters that are missing,
// non-numeric, zero or negative collapse to these values.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Context keys for values attached to a request by the auth middleware.
const (
	ContextKeyActor = "actor"
)

// Rate limiting windows and budgets for the public API.
const (
	GeneralRateLimit       = 100
	AuthRateLimit          = 5
	RateLimitWindowMinutes = 15
)
