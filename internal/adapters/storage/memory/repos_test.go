package memory

import (
	"context"
	"testing"

	"dog-life/internal/domain/health"
	"dog-life/internal/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthRepo_VetVisitsFilterKeepsOrder(t *testing.T) {
	repo := NewSampleCatalog().Health
	ctx := context.Background()

	all, err := repo.VetVisits(ctx, health.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Annual Checkup", all[0].Reason)

	got, err := repo.VetVisits(ctx, health.ListFilter{Query: "RABIES"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Vaccinations", got[0].Reason)

	got, err = repo.VetVisits(ctx, health.ListFilter{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, all[:2], got)
}

func TestHealthRepo_VetVisitsSearchMatchesSingleField(t *testing.T) {
	repo := NewHealthRepo(HealthData{VetVisits: []health.VetVisit{
		{ID: 1, Reason: "Annual Checkup", Notes: "All vitals normal."},
	}})
	ctx := context.Background()

	got, err := repo.VetVisits(ctx, health.ListFilter{Query: "checkup all"})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.VetVisits(ctx, health.ListFilter{Query: "VITALS"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestServicesRepo_GetByID(t *testing.T) {
	repo := NewSampleCatalog().Services
	ctx := context.Background()

	p, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Happy Tails Veterinary", p.Name)
	assert.Len(t, p.Reviews, 2)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestServicesRepo_ReturnsCopies(t *testing.T) {
	repo := NewSampleCatalog().Services
	ctx := context.Background()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Tags[0] = "mutated"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Nail Trimming", again[0].Tags[0])
}

func TestReadStateRepo_PerViewer(t *testing.T) {
	st := NewReadStateRepo()
	ctx := context.Background()

	require.NoError(t, st.MarkRead(ctx, "ana", []int{1, 2}))

	ids, err := st.ReadIDs(ctx, "ana")
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true}, ids)

	ids, err = st.ReadIDs(ctx, "bruno")
	require.NoError(t, err)
	assert.Empty(t, ids)

	// la copia devuelta no altera el estado
	ids[7] = true
	ids, _ = st.ReadIDs(ctx, "bruno")
	assert.Empty(t, ids)
}

func TestRepos_HonorCancelledContext(t *testing.T) {
	c := NewSampleCatalog()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Feed.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = c.Match.Events(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = c.AskAI.Community(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
