package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/repository"
)

// TemplateService manages reusable report templates.
type TemplateService interface {
	List(ctx context.Context, session Session) ([]dto.TemplateResponse, error)
	Create(ctx context.Context, session Session, payload dto.TemplateCreateRequest) (dto.TemplateResponse, error)
	Update(ctx context.Context, id uint, session Session, payload dto.TemplateUpdateRequest) (dto.TemplateResponse, error)
	Delete(ctx context.Context, id uint, session Session) error
}

type templateService struct {
	templates repository.TemplateRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
}

// NewTemplateService constructs a TemplateService instance.
func NewTemplateService(templateRepo repository.TemplateRepository, validate *validator.Validate, logger zerolog.Logger) TemplateService {
	return &templateService{
		templates: templateRepo,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "template_service").Logger(),
	}
}

func (s *templateService) List(ctx context.Context, session Session) ([]dto.TemplateResponse, error) {
	templates, err := s.templates.ListVisible(ctx, session.PegawaiID, session.UnitID)
	if err != nil {
		return nil, err
	}

	return dto.NewTemplateResponseSlice(templates), nil
}

func (s *templateService) Create(ctx context.Context, session Session, payload dto.TemplateCreateRequest) (dto.TemplateResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TemplateResponse{}, err
	}

	visibilitas := payload.Visibilitas
	if visibilitas == "" {
		visibilitas = models.TemplatePublik
	}

	template := models.TemplateLaporan{
		PembuatID:   session.PegawaiID,
		UnitID:      session.UnitID,
		Nama:        s.clean(payload.Nama),
		KategoriID:  payload.KategoriID,
		Deskripsi:   s.clean(payload.Deskripsi),
		Target:      s.clean(payload.Target),
		Lokasi:      s.clean(payload.Lokasi),
		DurasiMenit: payload.DurasiMenit,
		Visibilitas: visibilitas,
	}

	if err := s.templates.Create(ctx, &template); err != nil {
		return dto.TemplateResponse{}, err
	}

	s.logger.Info().Uint("template_id", template.ID).Msg("template created")

	return dto.NewTemplateResponse(template), nil
}

func (s *templateService) Update(ctx context.Context, id uint, session Session, payload dto.TemplateUpdateRequest) (dto.TemplateResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.TemplateResponse{}, err
	}

	template, err := s.getOwned(ctx, id, session)
	if err != nil {
		return dto.TemplateResponse{}, err
	}

	if payload.Nama != nil {
		template.Nama = s.clean(*payload.Nama)
	}
	if payload.KategoriID != nil {
		template.KategoriID = *payload.KategoriID
	}
	if payload.Deskripsi != nil {
		template.Deskripsi = s.clean(*payload.Deskripsi)
	}
	if payload.Target != nil {
		template.Target = s.clean(*payload.Target)
	}
	if payload.Lokasi != nil {
		template.Lokasi = s.clean(*payload.Lokasi)
	}
	if payload.DurasiMenit != nil {
		template.DurasiMenit = *payload.DurasiMenit
	}
	if payload.Visibilitas != nil {
		template.Visibilitas = *payload.Visibilitas
	}

	if err := s.templates.Update(ctx, &template); err != nil {
		return dto.TemplateResponse{}, err
	}

	return dto.NewTemplateResponse(template), nil
}

func (s *templateService) Delete(ctx context.Context, id uint, session Session) error {
	if _, err := s.getOwned(ctx, id, session); err != nil {
		return err
	}

	return s.templates.Delete(ctx, id)
}

func (s *templateService) getOwned(ctx context.Context, id uint, session Session) (models.TemplateLaporan, error) {
	template, err := s.templates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TemplateLaporan{}, ErrTemplateNotFound
		}
		return models.TemplateLaporan{}, err
	}

	if template.PembuatID != session.PegawaiID && !session.IsAdmin() {
		return models.TemplateLaporan{}, ErrNotAuthorized
	}

	return template, nil
}

func (s *templateService) clean(value string) string {
	return s.sanitizer.Sanitize(value)
}
