package session

import "context"

// Store keeps sessions for the lifetime of the process.
type Store interface {
	Create(ctx context.Context, s *Session) error
	// Update runs fn on the stored session under its lock and keeps the
	// result. The session must belong to userID.
	Update(ctx context.Context, userID string, id ID, fn func(*Session) error) (*Session, error)
	Get(ctx context.Context, userID string, id ID) (*Session, error)
}
