package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/repository"
)

type stubStatistikRepo struct {
	calls int
	stats repository.StatistikBulanan
}

func (s *stubStatistikRepo) Bulanan(ctx context.Context, pegawaiID uint, bulan string) (repository.StatistikBulanan, error) {
	s.calls++
	stats := s.stats
	stats.PegawaiID = pegawaiID
	stats.Bulan = bulan
	return stats, nil
}

func newStatistikFixture(t *testing.T) (*stubStatistikRepo, *memoryPegawaiRepo, StatistikService) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	atasanID := uint(10)
	pegawaiRepo := newMemoryPegawaiRepo(
		models.Pegawai{ID: 1, Role: models.RolePegawai, UnitID: 5, AtasanID: &atasanID},
		models.Pegawai{ID: 10, Role: models.RoleAtasan, UnitID: 5},
	)

	repo := &stubStatistikRepo{stats: repository.StatistikBulanan{
		PerStatus:    map[models.StatusLaporan]int{models.StatusDiverifikasi: 12, models.StatusDraft: 2},
		TotalMenit:   1440,
		RataRating:   4.5,
		JumlahRating: 12,
	}}

	svc := NewStatistikService(repo, pegawaiRepo, client, time.Minute, testLogger())
	return repo, pegawaiRepo, svc
}

func TestStatistikBulananAggregates(t *testing.T) {
	_, _, svc := newStatistikFixture(t)

	result, err := svc.Bulanan(context.Background(), pegawaiSession(), 0, "2026-08")
	require.NoError(t, err)
	require.Equal(t, uint(1), result.PegawaiID)
	require.Equal(t, "2026-08", result.Bulan)
	require.Equal(t, 14, result.TotalLaporan)
	require.Equal(t, 1440, result.TotalMenit)
	require.Equal(t, 4.5, result.RataRating)
	require.Equal(t, 12, result.PerStatus[string(models.StatusDiverifikasi)])
}

func TestStatistikBulananUsesCache(t *testing.T) {
	repo, _, svc := newStatistikFixture(t)
	ctx := context.Background()

	_, err := svc.Bulanan(ctx, pegawaiSession(), 0, "2026-08")
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	_, err = svc.Bulanan(ctx, pegawaiSession(), 0, "2026-08")
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	// A different month misses the cache.
	_, err = svc.Bulanan(ctx, pegawaiSession(), 0, "2026-07")
	require.NoError(t, err)
	require.Equal(t, 2, repo.calls)
}

func TestStatistikBulananInvalidBulan(t *testing.T) {
	_, _, svc := newStatistikFixture(t)

	_, err := svc.Bulanan(context.Background(), pegawaiSession(), 0, "08-2026")

	var fieldErrs *ValidationError
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs.Fields, "bulan")
}

func TestStatistikBulananAuthorization(t *testing.T) {
	_, _, svc := newStatistikFixture(t)
	ctx := context.Background()

	// The direct superior may view a subordinate's recap.
	result, err := svc.Bulanan(ctx, atasanSession(), 1, "2026-08")
	require.NoError(t, err)
	require.Equal(t, uint(1), result.PegawaiID)

	// A regular pegawai may not view someone else's.
	other := Session{PegawaiID: 2, Role: models.RolePegawai, UnitID: 5}
	_, err = svc.Bulanan(ctx, other, 1, "2026-08")
	require.ErrorIs(t, err, ErrNotAuthorized)
}
