package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/repository"
)

// PegawaiService exposes employee profiles.
type PegawaiService interface {
	GetByNIP(ctx context.Context, session Session, nip string) (dto.PegawaiResponse, error)
	ListBawahan(ctx context.Context, session Session) ([]dto.PegawaiResponse, error)
}

type pegawaiService struct {
	pegawai repository.PegawaiRepository
	logger  zerolog.Logger
}

// NewPegawaiService constructs a PegawaiService instance.
func NewPegawaiService(pegawaiRepo repository.PegawaiRepository, logger zerolog.Logger) PegawaiService {
	return &pegawaiService{
		pegawai: pegawaiRepo,
		logger:  logger.With().Str("component", "pegawai_service").Logger(),
	}
}

func (s *pegawaiService) GetByNIP(ctx context.Context, session Session, nip string) (dto.PegawaiResponse, error) {
	pegawai, err := s.pegawai.GetByNIP(ctx, nip)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PegawaiResponse{}, ErrPegawaiNotFound
		}
		return dto.PegawaiResponse{}, err
	}

	response := dto.NewPegawaiResponse(pegawai)

	if pegawai.AtasanID != nil {
		atasan, err := s.pegawai.GetByID(ctx, *pegawai.AtasanID)
		if err == nil {
			lite := dto.NewPegawaiLite(atasan)
			response.Atasan = &lite
		}
	}

	return response, nil
}

func (s *pegawaiService) ListBawahan(ctx context.Context, session Session) ([]dto.PegawaiResponse, error) {
	if !session.IsSupervisor() {
		return nil, ErrNotAuthorized
	}

	bawahan, err := s.pegawai.ListBawahan(ctx, session.PegawaiID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.PegawaiResponse, 0, len(bawahan))
	for _, p := range bawahan {
		responses = append(responses, dto.NewPegawaiResponse(p))
	}

	return responses, nil
}
