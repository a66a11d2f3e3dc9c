package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nursery-api/internal/domain"
	"nursery-api/internal/repository"
)

// fakeRecordRepo serves pre-seeded record streams keyed by kind; every record
// belongs to the owner it was seeded with.
type fakeRecordRepo struct {
	records []domain.Record
}

func (f *fakeRecordRepo) Init(ctx context.Context) error { return nil }

func (f *fakeRecordRepo) Create(ctx context.Context, record *domain.Record) error {
	f.records = append(f.records, *record)
	return nil
}

func (f *fakeRecordRepo) ListByOwner(ctx context.Context, kind domain.RecordKind, owner string) ([]domain.Record, error) {
	var out []domain.Record
	for _, r := range f.records {
		if r.Kind == kind && r.Owner == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) Delete(ctx context.Context, kind domain.RecordKind, owner, id string) error {
	for i, r := range f.records {
		if r.Kind == kind && r.Owner == owner && r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeRecordRepo) seed(kind domain.RecordKind, owner string, quantities ...int) {
	for _, q := range quantities {
		f.records = append(f.records, domain.Record{
			Kind:     kind,
			Owner:    owner,
			Quantity: q,
		})
	}
}

func TestDashboardStats(t *testing.T) {
	repo := &fakeRecordRepo{}
	repo.seed(domain.KindSeedlingsReceived, "alice", 10, 5)
	repo.seed(domain.KindNurseryProduced, "alice", 3)
	repo.seed(domain.KindDeadSeedlings, "alice", 2)
	repo.seed(domain.KindDiscardedSeedlings, "alice", 1)

	stats, err := NewDashboardService(repo).Stats(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 15, stats.TotalReceived)
	assert.Equal(t, 3, stats.TotalProduced)
	assert.Equal(t, 2, stats.TotalDead)
	assert.Equal(t, 1, stats.TotalDiscarded)
	assert.Equal(t, 15, stats.TotalInNursery)
	assert.Equal(t, 83.33, stats.SurvivalRate)
}

func TestDashboardStatsEmpty(t *testing.T) {
	stats, err := NewDashboardService(&fakeRecordRepo{}).Stats(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalReceived)
	assert.Equal(t, 0, stats.TotalDead)
	assert.Equal(t, 0, stats.TotalDiscarded)
	assert.Equal(t, 0, stats.TotalProduced)
	assert.Equal(t, 0, stats.TotalInNursery)
	assert.Equal(t, 0.0, stats.SurvivalRate)
}

func TestDashboardStatsNegativeNursery(t *testing.T) {
	repo := &fakeRecordRepo{}
	repo.seed(domain.KindSeedlingsReceived, "alice", 5)
	repo.seed(domain.KindDeadSeedlings, "alice", 8)

	stats, err := NewDashboardService(repo).Stats(context.Background(), "alice")
	require.NoError(t, err)

	// Deaths exceeding inputs is inconsistent data; the total stays negative
	// rather than being clamped.
	assert.Equal(t, -3, stats.TotalInNursery)
	assert.Equal(t, -60.0, stats.SurvivalRate)
}

func TestDashboardStatsScopedToOwner(t *testing.T) {
	repo := &fakeRecordRepo{}
	repo.seed(domain.KindSeedlingsReceived, "alice", 10)
	repo.seed(domain.KindSeedlingsReceived, "bob", 99)

	stats, err := NewDashboardService(repo).Stats(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, 10, stats.TotalReceived)
}
