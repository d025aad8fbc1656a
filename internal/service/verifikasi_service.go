package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/observability"
	"github.com/izakod/asn-api/internal/repository"
)

// LaporanNotifier publishes a notification event to a report owner after a
// verification action. Delivery beyond the event (push, e-mail) is handled by
// external collaborators.
type LaporanNotifier interface {
	NotifyLaporan(ctx context.Context, pegawaiID, laporanID uint, notifType, message string)
}

// VerifikasiService applies supervisor decisions to submitted reports.
type VerifikasiService interface {
	Verify(ctx context.Context, laporanID uint, session Session, payload dto.VerifikasiRequest) (dto.LaporanResponse, error)
}

type verifikasiService struct {
	laporan   repository.LaporanRepository
	pegawai   repository.PegawaiRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	audit     AuditRecorder
	notifier  LaporanNotifier
	logger    zerolog.Logger
	timeout   time.Duration
	now       func() time.Time
}

// NewVerifikasiService constructs the verification workflow service.
func NewVerifikasiService(laporanRepo repository.LaporanRepository, pegawaiRepo repository.PegawaiRepository, validate *validator.Validate, audit AuditRecorder, notifier LaporanNotifier, timeout time.Duration, logger zerolog.Logger) VerifikasiService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &verifikasiService{
		laporan:   laporanRepo,
		pegawai:   pegawaiRepo,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		audit:     audit,
		notifier:  notifier,
		logger:    logger.With().Str("component", "verifikasi_service").Logger(),
		timeout:   timeout,
		now:       time.Now,
	}
}

func (s *verifikasiService) Verify(ctx context.Context, laporanID uint, session Session, payload dto.VerifikasiRequest) (dto.LaporanResponse, error) {
	tracer := otel.Tracer("github.com/izakod/asn-api/internal/service/verifikasi")
	ctx, span := tracer.Start(ctx, "verifikasi.apply")
	span.SetAttributes(
		attribute.Int64("verifikasi.laporan_id", int64(laporanID)),
		attribute.Int64("verifikasi.actor_id", int64(session.PegawaiID)),
		attribute.String("verifikasi.aksi", payload.Aksi),
	)
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return dto.LaporanResponse{}, err
	}

	target, note, rating, err := resolveAction(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid_action_payload")
		return dto.LaporanResponse{}, err
	}
	note = strings.TrimSpace(s.sanitizer.Sanitize(note))

	laporan, err := s.laporan.GetByID(ctx, laporanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "laporan_not_found")
			return dto.LaporanResponse{}, ErrLaporanNotFound
		}
		span.RecordError(err)
		return dto.LaporanResponse{}, err
	}

	owner := laporan.Pegawai
	if owner.ID == 0 {
		owner, err = s.pegawai.GetByID(ctx, laporan.PegawaiID)
		if err != nil {
			span.RecordError(err)
			return dto.LaporanResponse{}, err
		}
	}

	allowed, err := isAtasanOf(ctx, s.pegawai, session, owner, s.now())
	if err != nil {
		span.RecordError(err)
		return dto.LaporanResponse{}, err
	}
	if !allowed {
		span.SetStatus(codes.Error, "not_authorized")
		return dto.LaporanResponse{}, ErrNotAuthorized
	}

	verifiedAt := s.now()
	verifiedBy := session.PegawaiID

	// The status precondition is rechecked under the row lock so concurrent
	// decisions on the same report cannot both apply.
	updated, err := s.laporan.Transition(ctx, laporanID, func(current *models.LaporanKegiatan) error {
		if current.Status != models.StatusDiajukan {
			return ErrInvalidState
		}

		current.Status = target
		current.Catatan = note
		current.Rating = nil
		if target == models.StatusDiverifikasi {
			current.Rating = rating
		}
		current.VerifiedBy = &verifiedBy
		current.VerifiedAt = &verifiedAt
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidState) {
			span.SetStatus(codes.Error, "invalid_state")
		} else {
			span.RecordError(err)
		}
		return dto.LaporanResponse{}, err
	}

	observability.VerifikasiTotal().WithLabelValues(string(target)).Inc()
	s.recordAudit(ctx, session, updated, payload.Aksi)
	s.notifyOwner(ctx, updated)

	s.logger.Info().
		Uint("laporan_id", updated.ID).
		Str("status", string(updated.Status)).
		Uint("verifikator", session.PegawaiID).
		Msg("laporan verified")

	return dto.NewLaporanResponse(updated), nil
}

// resolveAction maps the request onto the target status and validates the
// action-specific requirements.
func resolveAction(payload dto.VerifikasiRequest) (models.StatusLaporan, string, *int, error) {
	note := strings.TrimSpace(payload.Catatan)

	switch payload.Aksi {
	case dto.VerifikasiSetujui:
		if payload.Rating == nil {
			return "", "", nil, NewValidationError(map[string]string{"rating": "wajib diisi untuk persetujuan"})
		}
		if *payload.Rating < 1 || *payload.Rating > 5 {
			return "", "", nil, NewValidationError(map[string]string{"rating": "harus di antara 1 dan 5"})
		}
		return models.StatusDiverifikasi, note, payload.Rating, nil
	case dto.VerifikasiRevisi:
		if note == "" {
			return "", "", nil, NewValidationError(map[string]string{"catatan": "wajib diisi untuk permintaan revisi"})
		}
		return models.StatusRevisi, note, nil, nil
	case dto.VerifikasiTolak:
		if note == "" {
			return "", "", nil, NewValidationError(map[string]string{"catatan": "wajib diisi untuk penolakan"})
		}
		return models.StatusDitolak, note, nil, nil
	default:
		return "", "", nil, NewValidationError(map[string]string{"aksi": "aksi tidak dikenal"})
	}
}

func (s *verifikasiService) recordAudit(ctx context.Context, session Session, laporan models.LaporanKegiatan, aksi string) {
	if s.audit == nil {
		return
	}

	entityID := laporan.ID
	metadata := map[string]interface{}{
		"aksi":   aksi,
		"status": string(laporan.Status),
	}
	if laporan.Rating != nil {
		metadata["rating"] = *laporan.Rating
	}

	entry := AuditEntry{
		ActorID:    session.PegawaiID,
		ActorRole:  session.Role,
		Action:     "laporan_verifikasi",
		EntityType: "laporan_kegiatan",
		EntityID:   &entityID,
		Metadata:   metadata,
	}

	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record verification audit entry")
	}
}

func (s *verifikasiService) notifyOwner(ctx context.Context, laporan models.LaporanKegiatan) {
	if s.notifier == nil {
		return
	}

	var notifType, message string
	switch laporan.Status {
	case models.StatusDiverifikasi:
		notifType = models.NotifLaporanDiverifikasi
		rating := 0
		if laporan.Rating != nil {
			rating = *laporan.Rating
		}
		message = fmt.Sprintf("Laporan %q telah diverifikasi dengan rating %d", laporan.Judul, rating)
	case models.StatusRevisi:
		notifType = models.NotifLaporanRevisi
		message = fmt.Sprintf("Laporan %q perlu direvisi: %s", laporan.Judul, laporan.Catatan)
	case models.StatusDitolak:
		notifType = models.NotifLaporanDitolak
		message = fmt.Sprintf("Laporan %q ditolak: %s", laporan.Judul, laporan.Catatan)
	default:
		return
	}

	s.notifier.NotifyLaporan(ctx, laporan.PegawaiID, laporan.ID, notifType, message)
}
