package user

import "context"

// Repository defines persistence operations for users.
// Implementations return a not-found application error when no row matches.
type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByIDs returns the users for the given IDs keyed by ID. Missing IDs
	// are simply absent from the result; dangling references are tolerated.
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*User, error)
}
