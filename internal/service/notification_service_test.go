package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/models"
)

type memoryNotificationRepo struct {
	notifications map[uint]models.Notification
	nextID        uint
}

func newMemoryNotificationRepo() *memoryNotificationRepo {
	return &memoryNotificationRepo{notifications: make(map[uint]models.Notification), nextID: 1}
}

func (m *memoryNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	notification.ID = m.nextID
	notification.CreatedAt = time.Now()
	m.notifications[m.nextID] = *notification
	m.nextID++
	return nil
}

func (m *memoryNotificationRepo) ListByPegawai(ctx context.Context, pegawaiID uint, limit, offset int) ([]models.Notification, error) {
	results := []models.Notification{}
	for _, notification := range m.notifications {
		if notification.PegawaiID == pegawaiID {
			results = append(results, notification)
		}
	}
	return results, nil
}

func (m *memoryNotificationRepo) MarkRead(ctx context.Context, id, pegawaiID uint) (models.Notification, error) {
	notification, ok := m.notifications[id]
	if !ok || notification.PegawaiID != pegawaiID {
		return models.Notification{}, gorm.ErrRecordNotFound
	}
	notification.Read = true
	m.notifications[id] = notification
	return notification, nil
}

func newNotificationFixture(t *testing.T) (*memoryNotificationRepo, NotificationService) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := newMemoryNotificationRepo()
	svc := NewNotificationService(repo, client, "izakod:test", nil, testLogger())
	return repo, svc
}

func TestNotifyLaporanPersistsAndFansOut(t *testing.T) {
	repo, svc := newNotificationFixture(t)
	ctx := context.Background()

	events, cancel := svc.Subscribe(1)
	defer cancel()

	svc.NotifyLaporan(ctx, 1, 42, models.NotifLaporanDiverifikasi, "Laporan telah diverifikasi")

	require.Len(t, repo.notifications, 1)

	select {
	case event := <-events:
		require.Equal(t, uint(1), event.PegawaiID)
		require.Equal(t, models.NotifLaporanDiverifikasi, event.Type)
		require.NotNil(t, event.LaporanID)
		require.Equal(t, uint(42), *event.LaporanID)
	case <-time.After(time.Second):
		t.Fatal("expected a fanned-out notification")
	}
}

func TestNotifyLaporanOnlyReachesOwner(t *testing.T) {
	_, svc := newNotificationFixture(t)

	ownEvents, cancelOwn := svc.Subscribe(1)
	defer cancelOwn()
	otherEvents, cancelOther := svc.Subscribe(2)
	defer cancelOther()

	svc.NotifyLaporan(context.Background(), 1, 42, models.NotifLaporanRevisi, "Perlu revisi")

	select {
	case <-ownEvents:
	case <-time.After(time.Second):
		t.Fatal("owner should receive the notification")
	}

	select {
	case event := <-otherEvents:
		t.Fatalf("unexpected notification for other pegawai: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestNotificationListAndMarkRead(t *testing.T) {
	repo, svc := newNotificationFixture(t)
	ctx := context.Background()
	session := Session{PegawaiID: 1, Role: models.RolePegawai}

	svc.NotifyLaporan(ctx, 1, 42, models.NotifLaporanDitolak, "Ditolak")
	svc.NotifyLaporan(ctx, 2, 43, models.NotifLaporanRevisi, "Bukan milik session")

	listed, err := svc.List(ctx, session, 20, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.False(t, listed[0].Read)

	read, err := svc.MarkRead(ctx, listed[0].ID, session)
	require.NoError(t, err)
	require.True(t, read.Read)

	// Another pegawai cannot mark it.
	var firstID uint
	for id := range repo.notifications {
		firstID = id
		break
	}
	_, err = svc.MarkRead(ctx, firstID, Session{PegawaiID: 99})
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSubscribeCancelClosesChannel(t *testing.T) {
	_, svc := newNotificationFixture(t)

	events, cancel := svc.Subscribe(1)
	cancel()

	_, open := <-events
	require.False(t, open)
}
