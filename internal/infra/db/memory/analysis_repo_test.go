package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bryanwahyu/brand-playground/internal/domain/analysis"
	"github.com/bryanwahyu/brand-playground/internal/domain/failures"
)

func TestAnalysisRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalysisRepository()
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &domain.Analysis{
			ID:         domain.ID(fmt.Sprintf("a%d", i)),
			UserID:     "u1",
			WebsiteURL: "https://acme.io",
			ShareToken: fmt.Sprintf("tok%d", i),
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Save(ctx, &domain.Analysis{ID: "b", UserID: "u2", WebsiteURL: "https://acme.io", CreatedAt: base.Add(time.Hour)}))

	latest, err := repo.LatestByUserAndURL(ctx, "u1", "https://acme.io")
	require.NoError(t, err)
	assert.Equal(t, domain.ID("a4"), latest.ID)

	none, err := repo.LatestByUserAndURL(ctx, "u1", "https://other.io")
	require.NoError(t, err)
	assert.Nil(t, none)

	byToken, err := repo.GetByShareToken(ctx, "tok2")
	require.NoError(t, err)
	assert.Equal(t, domain.ID("a2"), byToken.ID)
	_, err = repo.GetByShareToken(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Get(ctx, "zzz")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	page1, err := repo.Paginate(ctx, "u1", 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, domain.ID("a4"), page1[0].ID)
	assert.Equal(t, domain.ID("a3"), page1[1].ID)

	page3, err := repo.Paginate(ctx, "u1", 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, domain.ID("a0"), page3[0].ID)

	page4, err := repo.Paginate(ctx, "u1", 4, 2)
	require.NoError(t, err)
	assert.Empty(t, page4)

	// returned values are copies
	page1[0].WebsiteURL = "mutated"
	again, _ := repo.Get(ctx, "a4")
	assert.Equal(t, "https://acme.io", again.WebsiteURL)
}

func TestFailureRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFailureRepository()
	for _, p := range []failures.Phase{failures.PhaseScrape, failures.PhaseGenerate, failures.PhaseChat} {
		require.NoError(t, repo.Save(ctx, &failures.Failure{UserID: "u1", Phase: p}))
	}
	require.NoError(t, repo.Save(ctx, &failures.Failure{UserID: "u2", Phase: failures.PhaseShare}))

	got, err := repo.ListByUser(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, failures.PhaseChat, got[0].Phase)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, failures.PhaseGenerate, got[1].Phase)
}
