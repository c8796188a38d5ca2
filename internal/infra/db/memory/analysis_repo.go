package memory

import (
	"context"
	"sort"
	"sync"

	domain "github.com/bryanwahyu/brand-playground/internal/domain/analysis"
)

// AnalysisRepository keeps brand analyses in process memory. Used when no
// database is configured and by tests.
type AnalysisRepository struct {
	mu   sync.RWMutex
	rows []*domain.Analysis
}

func NewAnalysisRepository() *AnalysisRepository { return &AnalysisRepository{} }

func (r *AnalysisRepository) Save(ctx context.Context, a *domain.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *AnalysisRepository) Get(ctx context.Context, id domain.ID) (*domain.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.rows {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *AnalysisRepository) LatestByUserAndURL(ctx context.Context, userID, websiteURL string) (*domain.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *domain.Analysis
	for _, a := range r.rows {
		if a.UserID != userID || a.WebsiteURL != websiteURL {
			continue
		}
		// ties keep the later insert
		if latest == nil || !a.CreatedAt.Before(latest.CreatedAt) {
			latest = a
		}
	}
	if latest == nil {
		return nil, nil
	}
	cp := *latest
	return &cp, nil
}

func (r *AnalysisRepository) GetByShareToken(ctx context.Context, token string) (*domain.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.rows {
		if a.ShareToken != "" && a.ShareToken == token {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *AnalysisRepository) Paginate(ctx context.Context, userID string, page, pageSize int) ([]*domain.Analysis, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	r.mu.RLock()
	var mine []*domain.Analysis
	for i := len(r.rows) - 1; i >= 0; i-- {
		if r.rows[i].UserID == userID {
			cp := *r.rows[i]
			mine = append(mine, &cp)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(mine, func(i, j int) bool { return mine[i].CreatedAt.After(mine[j].CreatedAt) })

	offset := (page - 1) * pageSize
	if offset >= len(mine) {
		return []*domain.Analysis{}, nil
	}
	end := offset + pageSize
	if end > len(mine) {
		end = len(mine)
	}
	return mine[offset:end], nil
}
