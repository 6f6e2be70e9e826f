package user

// Actor is the authenticated identity performing an operation. It is resolved
// from the access token by the auth middleware and passed explicitly into
// every use case; the core never parses tokens itself.
type Actor struct {
	ID    uint
	Email string
	Role  Role
}

// IsZero reports whether the actor is unset (unauthenticated request).
func (a Actor) IsZero() bool {
	return a.ID == 0
}
