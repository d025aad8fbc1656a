package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/observability"
	"github.com/izakod/asn-api/internal/repository"
)

// ErrLaporanNotFound indicates a report could not be found.
var ErrLaporanNotFound = errors.New("laporan not found")

// ErrNotAuthorized indicates the caller lacks permission for the operation.
var ErrNotAuthorized = errors.New("not authorized")

// ErrInvalidState indicates a transition was attempted from the wrong status.
// The report is left unchanged.
var ErrInvalidState = errors.New("invalid report state")

// ErrTemplateNotFound indicates a template could not be found.
var ErrTemplateNotFound = errors.New("template not found")

// LaporanService orchestrates the report store operations.
type LaporanService interface {
	Create(ctx context.Context, session Session, payload dto.LaporanCreateRequest) (dto.LaporanResponse, error)
	Update(ctx context.Context, id uint, session Session, payload dto.LaporanUpdateRequest) (dto.LaporanResponse, error)
	Get(ctx context.Context, id uint, session Session) (dto.LaporanDetailResponse, error)
	List(ctx context.Context, session Session, filter dto.LaporanFilter) ([]dto.LaporanResponse, error)
	Resubmit(ctx context.Context, id uint, session Session, payload dto.LaporanUpdateRequest) (dto.LaporanResponse, error)
}

type laporanService struct {
	laporan   repository.LaporanRepository
	pegawai   repository.PegawaiRepository
	templates repository.TemplateRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	audit     AuditRecorder
	logger    zerolog.Logger
	now       func() time.Time
}

// NewLaporanService constructs a LaporanService instance.
func NewLaporanService(laporanRepo repository.LaporanRepository, pegawaiRepo repository.PegawaiRepository, templateRepo repository.TemplateRepository, validate *validator.Validate, audit AuditRecorder, logger zerolog.Logger) LaporanService {
	return &laporanService{
		laporan:   laporanRepo,
		pegawai:   pegawaiRepo,
		templates: templateRepo,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		audit:     audit,
		logger:    logger.With().Str("component", "laporan_service").Logger(),
		now:       time.Now,
	}
}

func (s *laporanService) Create(ctx context.Context, session Session, payload dto.LaporanCreateRequest) (dto.LaporanResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LaporanResponse{}, err
	}

	laporan := models.LaporanKegiatan{
		PegawaiID:       session.PegawaiID,
		KategoriID:      payload.KategoriID,
		Tanggal:         strings.TrimSpace(payload.Tanggal),
		JamMulai:        truncateJam(strings.TrimSpace(payload.JamMulai)),
		JamSelesai:      truncateJam(strings.TrimSpace(payload.JamSelesai)),
		Judul:           s.clean(payload.Judul),
		Deskripsi:       s.clean(payload.Deskripsi),
		Target:          s.clean(payload.Target),
		Realisasi:       s.clean(payload.Realisasi),
		Lokasi:          s.clean(payload.Lokasi),
		Latitude:        payload.Latitude,
		Longitude:       payload.Longitude,
		Peserta:         s.clean(payload.Peserta),
		JumlahPeserta:   payload.JumlahPeserta,
		TautanReferensi: strings.TrimSpace(payload.TautanReferensi),
		Kendala:         s.clean(payload.Kendala),
		Status:          models.StatusDraft,
	}

	if payload.TemplateID != nil {
		if err := s.applyTemplate(ctx, session, *payload.TemplateID, &laporan); err != nil {
			return dto.LaporanResponse{}, err
		}
	}

	if payload.Ajukan {
		if fieldErrs := ValidateLaporan(laporan); len(fieldErrs) > 0 {
			return dto.LaporanResponse{}, NewValidationError(fieldErrs)
		}
		laporan.Status = models.StatusDiajukan
	}

	laporan.Durasi = laporan.DurasiMenit()

	if err := s.laporan.Create(ctx, &laporan); err != nil {
		return dto.LaporanResponse{}, err
	}

	created, err := s.laporan.GetByID(ctx, laporan.ID)
	if err != nil {
		return dto.LaporanResponse{}, err
	}

	observability.LaporanTotal().WithLabelValues(string(created.Status)).Inc()
	s.recordAudit(ctx, session, "laporan_dibuat", created.ID, map[string]interface{}{
		"status": string(created.Status),
	})
	s.logger.Info().Uint("laporan_id", created.ID).Str("status", string(created.Status)).Msg("laporan created")

	return dto.NewLaporanResponse(created), nil
}

func (s *laporanService) applyTemplate(ctx context.Context, session Session, templateID uint, laporan *models.LaporanKegiatan) error {
	template, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTemplateNotFound
		}
		return err
	}

	if !template.VisibleTo(session.PegawaiID, session.UnitID) {
		return ErrNotAuthorized
	}

	// Template values only fill in what the payload left blank.
	if laporan.KategoriID == 0 {
		laporan.KategoriID = template.KategoriID
	}
	if laporan.Deskripsi == "" {
		laporan.Deskripsi = template.Deskripsi
	}
	if laporan.Target == "" {
		laporan.Target = template.Target
	}
	if laporan.Lokasi == "" {
		laporan.Lokasi = template.Lokasi
	}

	if err := s.templates.IncrementPakai(ctx, template.ID); err != nil {
		s.logger.Warn().Err(err).Uint("template_id", template.ID).Msg("failed to increment template usage")
	}

	return nil
}

func (s *laporanService) Update(ctx context.Context, id uint, session Session, payload dto.LaporanUpdateRequest) (dto.LaporanResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LaporanResponse{}, err
	}

	if payload.Ajukan {
		return s.Resubmit(ctx, id, session, payload)
	}

	laporan, err := s.laporan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LaporanResponse{}, ErrLaporanNotFound
		}
		return dto.LaporanResponse{}, err
	}

	if laporan.PegawaiID != session.PegawaiID {
		return dto.LaporanResponse{}, ErrNotAuthorized
	}

	if !laporan.Status.IsEditable() {
		return dto.LaporanResponse{}, ErrInvalidState
	}

	s.applyPatch(&laporan, payload)

	if err := s.laporan.Update(ctx, &laporan); err != nil {
		return dto.LaporanResponse{}, err
	}

	updated, err := s.laporan.GetByID(ctx, laporan.ID)
	if err != nil {
		return dto.LaporanResponse{}, err
	}

	s.logger.Info().Uint("laporan_id", updated.ID).Msg("laporan updated")

	return dto.NewLaporanResponse(updated), nil
}

func (s *laporanService) Resubmit(ctx context.Context, id uint, session Session, payload dto.LaporanUpdateRequest) (dto.LaporanResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LaporanResponse{}, err
	}

	updated, err := s.laporan.Transition(ctx, id, func(laporan *models.LaporanKegiatan) error {
		if laporan.PegawaiID != session.PegawaiID {
			return ErrNotAuthorized
		}

		if !laporan.Status.CanTransitionTo(models.StatusDiajukan) {
			return ErrInvalidState
		}

		s.applyPatch(laporan, payload)

		if fieldErrs := ValidateLaporan(*laporan); len(fieldErrs) > 0 {
			return NewValidationError(fieldErrs)
		}

		laporan.Status = models.StatusDiajukan
		laporan.Durasi = laporan.DurasiMenit()
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LaporanResponse{}, ErrLaporanNotFound
		}
		return dto.LaporanResponse{}, err
	}

	s.recordAudit(ctx, session, "laporan_diajukan", updated.ID, map[string]interface{}{
		"status": string(updated.Status),
	})
	s.logger.Info().Uint("laporan_id", updated.ID).Msg("laporan submitted")

	return dto.NewLaporanResponse(updated), nil
}

func (s *laporanService) applyPatch(laporan *models.LaporanKegiatan, payload dto.LaporanUpdateRequest) {
	if payload.Tanggal != nil {
		laporan.Tanggal = strings.TrimSpace(*payload.Tanggal)
	}
	if payload.JamMulai != nil {
		laporan.JamMulai = truncateJam(strings.TrimSpace(*payload.JamMulai))
	}
	if payload.JamSelesai != nil {
		laporan.JamSelesai = truncateJam(strings.TrimSpace(*payload.JamSelesai))
	}
	if payload.KategoriID != nil {
		laporan.KategoriID = *payload.KategoriID
	}
	if payload.Judul != nil {
		laporan.Judul = s.clean(*payload.Judul)
	}
	if payload.Deskripsi != nil {
		laporan.Deskripsi = s.clean(*payload.Deskripsi)
	}
	if payload.Target != nil {
		laporan.Target = s.clean(*payload.Target)
	}
	if payload.Realisasi != nil {
		laporan.Realisasi = s.clean(*payload.Realisasi)
	}
	if payload.Lokasi != nil {
		laporan.Lokasi = s.clean(*payload.Lokasi)
	}
	if payload.Latitude != nil {
		laporan.Latitude = payload.Latitude
	}
	if payload.Longitude != nil {
		laporan.Longitude = payload.Longitude
	}
	if payload.Peserta != nil {
		laporan.Peserta = s.clean(*payload.Peserta)
	}
	if payload.JumlahPeserta != nil {
		laporan.JumlahPeserta = *payload.JumlahPeserta
	}
	if payload.TautanReferensi != nil {
		laporan.TautanReferensi = strings.TrimSpace(*payload.TautanReferensi)
	}
	if payload.Kendala != nil {
		laporan.Kendala = s.clean(*payload.Kendala)
	}

	laporan.Durasi = laporan.DurasiMenit()
}

func (s *laporanService) Get(ctx context.Context, id uint, session Session) (dto.LaporanDetailResponse, error) {
	laporan, err := s.laporan.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LaporanDetailResponse{}, ErrLaporanNotFound
		}
		return dto.LaporanDetailResponse{}, err
	}

	isOwner := laporan.PegawaiID == session.PegawaiID

	isAtasan := false
	if !isOwner {
		owner := laporan.Pegawai
		if owner.ID == 0 {
			owner, err = s.pegawai.GetByID(ctx, laporan.PegawaiID)
			if err != nil {
				return dto.LaporanDetailResponse{}, err
			}
		}

		isAtasan, err = isAtasanOf(ctx, s.pegawai, session, owner, s.now())
		if err != nil {
			return dto.LaporanDetailResponse{}, err
		}

		if !isAtasan {
			return dto.LaporanDetailResponse{}, ErrNotAuthorized
		}
	}

	return dto.LaporanDetailResponse{
		LaporanResponse: dto.NewLaporanResponse(laporan),
		CanEdit:         isOwner && laporan.Status.IsEditable(),
		CanVerify:       isAtasan && laporan.Status == models.StatusDiajukan,
	}, nil
}

func (s *laporanService) List(ctx context.Context, session Session, filter dto.LaporanFilter) ([]dto.LaporanResponse, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, err
	}

	repoFilter := repository.LaporanFilter{
		KategoriID:    filter.KategoriID,
		Bulan:         filter.Bulan,
		DariTanggal:   filter.DariTanggal,
		SampaiTanggal: filter.SampaiTanggal,
	}

	if filter.Status != nil {
		status, ok := models.ParseStatusLaporan(*filter.Status)
		if !ok {
			return nil, NewValidationError(map[string]string{"status": "status tidak dikenal"})
		}
		repoFilter.Status = &status
	}

	if err := s.scopeFilter(ctx, session, filter.PegawaiID, &repoFilter); err != nil {
		return nil, err
	}

	laporan, err := s.laporan.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	return dto.NewLaporanResponseSlice(laporan), nil
}

// scopeFilter restricts the repository filter to reports the session may see.
func (s *laporanService) scopeFilter(ctx context.Context, session Session, requested *uint, repoFilter *repository.LaporanFilter) error {
	if session.IsAdmin() {
		repoFilter.PegawaiID = requested
		return nil
	}

	if session.Role == models.RoleAtasan {
		bawahan, err := s.pegawai.ListBawahan(ctx, session.PegawaiID)
		if err != nil {
			return err
		}

		visible := make(map[uint]struct{}, len(bawahan)+1)
		visible[session.PegawaiID] = struct{}{}
		ids := make([]uint, 0, len(bawahan)+1)
		ids = append(ids, session.PegawaiID)
		for _, p := range bawahan {
			visible[p.ID] = struct{}{}
			ids = append(ids, p.ID)
		}

		if requested != nil {
			if _, ok := visible[*requested]; !ok {
				return ErrNotAuthorized
			}
			repoFilter.PegawaiID = requested
			return nil
		}

		repoFilter.PegawaiIDs = ids
		return nil
	}

	if requested != nil && *requested != session.PegawaiID {
		return ErrNotAuthorized
	}

	own := session.PegawaiID
	repoFilter.PegawaiID = &own
	return nil
}

func (s *laporanService) clean(value string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(value))
}

func (s *laporanService) recordAudit(ctx context.Context, session Session, action string, laporanID uint, metadata map[string]interface{}) {
	if s.audit == nil {
		return
	}

	entityID := laporanID
	entry := AuditEntry{
		ActorID:    session.PegawaiID,
		ActorRole:  session.Role,
		Action:     action,
		EntityType: "laporan_kegiatan",
		EntityID:   &entityID,
		Metadata:   metadata,
	}

	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record audit entry")
	}
}
