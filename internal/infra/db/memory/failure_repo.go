package memory

import (
	"context"
	"sync"

	domain "github.com/bryanwahyu/brand-playground/internal/domain/failures"
)

type FailureRepository struct {
	mu     sync.Mutex
	nextID int64
	rows   []*domain.Failure
}

func NewFailureRepository() *FailureRepository { return &FailureRepository{} }

func (r *FailureRepository) Save(ctx context.Context, f *domain.Failure) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	f.ID = r.nextID
	cp := *f
	r.rows = append(r.rows, &cp)
	return nil
}

// ListByUser returns newest first.
func (r *FailureRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*domain.Failure, error) {
	if limit <= 0 {
		limit = 20
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Failure
	for i := len(r.rows) - 1; i >= 0 && len(out) < limit; i-- {
		if r.rows[i].UserID == userID {
			cp := *r.rows[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}
