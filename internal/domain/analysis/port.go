package analysis

import "context"

// Repository port for the brand_analyses collection.
type Repository interface {
	Save(ctx context.Context, a *Analysis) error
	Get(ctx context.Context, id ID) (*Analysis, error)
	// LatestByUserAndURL returns nil, nil when the user has no analysis for url.
	LatestByUserAndURL(ctx context.Context, userID, websiteURL string) (*Analysis, error)
	GetByShareToken(ctx context.Context, token string) (*Analysis, error)
	Paginate(ctx context.Context, userID string, page, pageSize int) ([]*Analysis, error)
}

// SnapshotStore keeps the raw scrape next to the report.
type SnapshotStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
