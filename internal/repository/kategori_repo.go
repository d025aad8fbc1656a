package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/models"
)

// KategoriRepository exposes the read-only category reference data.
type KategoriRepository interface {
	ListAktif(ctx context.Context) ([]models.KategoriKegiatan, error)
	GetByID(ctx context.Context, id uint) (models.KategoriKegiatan, error)
}

type kategoriRepository struct {
	db *gorm.DB
}

// NewKategoriRepository instantiates the repository.
func NewKategoriRepository(db *gorm.DB) KategoriRepository {
	return &kategoriRepository{db: db}
}

func (r *kategoriRepository) ListAktif(ctx context.Context) ([]models.KategoriKegiatan, error) {
	var kategori []models.KategoriKegiatan
	if err := r.db.WithContext(ctx).
		Where("aktif = ?", true).
		Order("nama ASC").
		Find(&kategori).Error; err != nil {
		return nil, err
	}

	return kategori, nil
}

func (r *kategoriRepository) GetByID(ctx context.Context, id uint) (models.KategoriKegiatan, error) {
	var kategori models.KategoriKegiatan
	if err := r.db.WithContext(ctx).First(&kategori, id).Error; err != nil {
		return models.KategoriKegiatan{}, err
	}

	return kategori, nil
}
