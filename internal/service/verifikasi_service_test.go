package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/models"
)

type recordedNotification struct {
	PegawaiID uint
	LaporanID uint
	NotifType string
	Message   string
}

type recordingNotifier struct {
	events []recordedNotification
}

func (r *recordingNotifier) NotifyLaporan(ctx context.Context, pegawaiID, laporanID uint, notifType, message string) {
	r.events = append(r.events, recordedNotification{PegawaiID: pegawaiID, LaporanID: laporanID, NotifType: notifType, Message: message})
}

func newVerifikasiFixture(t *testing.T) (*memoryLaporanRepo, *memoryPegawaiRepo, *recordingAudit, *recordingNotifier, VerifikasiService) {
	t.Helper()

	atasanID := uint(10)
	laporanRepo := newMemoryLaporanRepo()
	pegawaiRepo := newMemoryPegawaiRepo(
		models.Pegawai{ID: 1, NIP: "199001012015011001", Nama: "Budi", Role: models.RolePegawai, UnitID: 5, AtasanID: &atasanID},
		models.Pegawai{ID: 10, NIP: "198001011999011001", Nama: "Pak Kabid", Role: models.RoleAtasan, UnitID: 5},
		models.Pegawai{ID: 11, NIP: "198102021999012002", Nama: "Bu Kasubid", Role: models.RoleAtasan, UnitID: 5},
	)
	audit := &recordingAudit{}
	notifier := &recordingNotifier{}

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewVerifikasiService(laporanRepo, pegawaiRepo, validate, audit, notifier, time.Second, testLogger())

	return laporanRepo, pegawaiRepo, audit, notifier, svc
}

func submittedLaporan(repo *memoryLaporanRepo) uint {
	id := repo.nextID
	repo.laporan[id] = models.LaporanKegiatan{
		ID:         id,
		PegawaiID:  1,
		KategoriID: 3,
		Tanggal:    "2026-08-17",
		JamMulai:   "09:00",
		JamSelesai: "10:30",
		Judul:      "Rapat koordinasi",
		Deskripsi:  "Membahas capaian triwulan",
		Status:     models.StatusDiajukan,
	}
	repo.nextID++
	return id
}

func TestVerifySetujuiStoresRating(t *testing.T) {
	repo, _, audit, notifier, svc := newVerifikasiFixture(t)
	id := submittedLaporan(repo)

	rating := 4
	result, err := svc.Verify(context.Background(), id, atasanSession(), dto.VerifikasiRequest{
		Aksi:    dto.VerifikasiSetujui,
		Catatan: "Kerja bagus",
		Rating:  &rating,
	})
	require.NoError(t, err)
	require.Equal(t, string(models.StatusDiverifikasi), result.Status)
	require.NotNil(t, result.Rating)
	require.Equal(t, 4, *result.Rating)
	require.NotNil(t, result.VerifiedBy)
	require.Equal(t, uint(10), *result.VerifiedBy)
	require.NotNil(t, result.VerifiedAt)

	require.Len(t, audit.entries, 1)
	require.Equal(t, "laporan_verifikasi", audit.entries[0].Action)

	require.Len(t, notifier.events, 1)
	require.Equal(t, uint(1), notifier.events[0].PegawaiID)
	require.Equal(t, models.NotifLaporanDiverifikasi, notifier.events[0].NotifType)
}

func TestVerifySetujuiRequiresRating(t *testing.T) {
	repo, _, _, _, svc := newVerifikasiFixture(t)
	id := submittedLaporan(repo)

	_, err := svc.Verify(context.Background(), id, atasanSession(), dto.VerifikasiRequest{Aksi: dto.VerifikasiSetujui})

	var fieldErrs *ValidationError
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs.Fields, "rating")

	stored, getErr := repo.GetByID(context.Background(), id)
	require.NoError(t, getErr)
	require.Equal(t, models.StatusDiajukan, stored.Status)
}

func TestVerifyRevisiRequiresCatatan(t *testing.T) {
	repo, _, _, _, svc := newVerifikasiFixture(t)
	id := submittedLaporan(repo)

	_, err := svc.Verify(context.Background(), id, atasanSession(), dto.VerifikasiRequest{Aksi: dto.VerifikasiRevisi, Catatan: "   "})

	var fieldErrs *ValidationError
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs.Fields, "catatan")
}

func TestVerifyRevisiAllowsResubmitCycle(t *testing.T) {
	repo, pegawaiRepo, _, notifier, svc := newVerifikasiFixture(t)
	id := submittedLaporan(repo)
	ctx := context.Background()

	result, err := svc.Verify(ctx, id, atasanSession(), dto.VerifikasiRequest{Aksi: dto.VerifikasiRevisi, Catatan: "Lengkapi realisasi"})
	require.NoError(t, err)
	require.Equal(t, string(models.StatusRevisi), result.Status)
	require.Nil(t, result.Rating)
	require.Equal(t, "Lengkapi realisasi", result.Catatan)
	require.Equal(t, models.NotifLaporanRevisi, notifier.events[0].NotifType)

	// Owner revises, resubmits, and the supervisor can decide again.
	validate := validator.New(validator.WithRequiredStructEnabled())
	laporanSvc := NewLaporanService(repo, pegawaiRepo, newMemoryTemplateRepo(), validate, nil, testLogger())

	realisasi := "Notulen terlampir"
	resubmitted, err := laporanSvc.Resubmit(ctx, id, pegawaiSession(), dto.LaporanUpdateRequest{Realisasi: &realisasi})
	require.NoError(t, err)
	require.Equal(t, string(models.StatusDiajukan), resubmitted.Status)

	rating := 5
	final, err := svc.Verify(ctx, id, atasanSession(), dto.VerifikasiRequest{Aksi: dto.VerifikasiSetujui, Rating: &rating})
	require.NoError(t, err)
	require.Equal(t, string(models.StatusDiverifikasi), final.Status)
}

func TestVerifyTolakIsTerminal(t *testing.T) {
	repo, _, _, notifier, svc := newVerifikasiFixture(t)
	id := submittedLaporan(repo)
	ctx := context.Background()

	result, err := svc.Verify(ctx, id, atasanSession(), dto.VerifikasiRequest{Aksi: dto.VerifikasiTolak, Catatan: "Bukan kegiatan dinas"})
	require.NoError(t, err)
	require.Equal(t, string(models.StatusDitolak), result.Status)
	require.Equal(t, models.NotifLaporanDitolak, notifier.events[0].NotifType)

	// A decided report cannot be decided again.
	rating := 3
	_, err = svc.Verify(ctx, id, atasanSession(), dto.VerifikasiRequest{Aksi: dto.VerifikasiSetujui, Rating: &rating})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestVerifyRejectsDraft(t *testing.T) {
	repo, _, _, _, svc := newVerifikasiFixture(t)
	id := submittedLaporan(repo)

	laporan := repo.laporan[id]
	laporan.Status = models.StatusDraft
	repo.laporan[id] = laporan

	rating := 4
	_, err := svc.Verify(context.Background(), id, atasanSession(), dto.VerifikasiRequest{Aksi: dto.VerifikasiSetujui, Rating: &rating})
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestVerifyRejectsUnrelatedSupervisor(t *testing.T) {
	repo, _, _, _, svc := newVerifikasiFixture(t)
	id := submittedLaporan(repo)

	unrelated := Session{PegawaiID: 11, Role: models.RoleAtasan, UnitID: 5}
	rating := 4
	_, err := svc.Verify(context.Background(), id, unrelated, dto.VerifikasiRequest{Aksi: dto.VerifikasiSetujui, Rating: &rating})
	require.ErrorIs(t, err, ErrNotAuthorized)
}

func TestVerifyAllowsDelegation(t *testing.T) {
	repo, pegawaiRepo, _, _, svc := newVerifikasiFixture(t)
	id := submittedLaporan(repo)

	pegawaiRepo.delegations = append(pegawaiRepo.delegations, models.DelegasiVerifikasi{
		AtasanID:      10,
		PenerimaID:    11,
		BerlakuSampai: time.Now().Add(24 * time.Hour),
	})

	delegate := Session{PegawaiID: 11, Role: models.RoleAtasan, UnitID: 5}
	rating := 4
	result, err := svc.Verify(context.Background(), id, delegate, dto.VerifikasiRequest{Aksi: dto.VerifikasiSetujui, Rating: &rating})
	require.NoError(t, err)
	require.Equal(t, string(models.StatusDiverifikasi), result.Status)
	require.Equal(t, uint(11), *result.VerifiedBy)
}

func TestVerifyAllowsAdmin(t *testing.T) {
	repo, _, _, _, svc := newVerifikasiFixture(t)
	id := submittedLaporan(repo)

	admin := Session{PegawaiID: 99, Role: models.RoleAdmin}
	rating := 5
	result, err := svc.Verify(context.Background(), id, admin, dto.VerifikasiRequest{Aksi: dto.VerifikasiSetujui, Rating: &rating})
	require.NoError(t, err)
	require.Equal(t, string(models.StatusDiverifikasi), result.Status)
}

func TestVerifyNotFound(t *testing.T) {
	_, _, _, _, svc := newVerifikasiFixture(t)

	rating := 4
	_, err := svc.Verify(context.Background(), 404, atasanSession(), dto.VerifikasiRequest{Aksi: dto.VerifikasiSetujui, Rating: &rating})
	require.ErrorIs(t, err, ErrLaporanNotFound)
}

func TestVerifyRatingOnlyKeptOnApproval(t *testing.T) {
	repo, _, _, _, svc := newVerifikasiFixture(t)
	id := submittedLaporan(repo)

	rating := 2
	result, err := svc.Verify(context.Background(), id, atasanSession(), dto.VerifikasiRequest{
		Aksi:    dto.VerifikasiRevisi,
		Catatan: "Perjelas target",
		Rating:  &rating,
	})
	require.NoError(t, err)
	require.Nil(t, result.Rating)
}
