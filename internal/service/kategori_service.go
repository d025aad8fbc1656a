package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/repository"
)

// KategoriService exposes the category reference data.
type KategoriService interface {
	List(ctx context.Context) ([]dto.KategoriResponse, error)
}

type kategoriService struct {
	kategori repository.KategoriRepository
	logger   zerolog.Logger
}

// NewKategoriService constructs a KategoriService instance.
func NewKategoriService(kategoriRepo repository.KategoriRepository, logger zerolog.Logger) KategoriService {
	return &kategoriService{
		kategori: kategoriRepo,
		logger:   logger.With().Str("component", "kategori_service").Logger(),
	}
}

func (s *kategoriService) List(ctx context.Context) ([]dto.KategoriResponse, error) {
	kategori, err := s.kategori.ListAktif(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewKategoriResponseSlice(kategori), nil
}
