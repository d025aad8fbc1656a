package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/models"
)

// PegawaiRepository defines data operations for employee accounts.
type PegawaiRepository interface {
	GetByID(ctx context.Context, id uint) (models.Pegawai, error)
	GetByNIP(ctx context.Context, nip string) (models.Pegawai, error)
	ListBawahan(ctx context.Context, atasanID uint) ([]models.Pegawai, error)
	UpdateDeviceToken(ctx context.Context, id uint, token string) error
	// HasDelegation reports whether penerima currently holds delegated
	// verification authority from atasan.
	HasDelegation(ctx context.Context, atasanID, penerimaID uint, at time.Time) (bool, error)
}

type pegawaiRepository struct {
	db *gorm.DB
}

// NewPegawaiRepository instantiates the repository.
func NewPegawaiRepository(db *gorm.DB) PegawaiRepository {
	return &pegawaiRepository{db: db}
}

func (r *pegawaiRepository) GetByID(ctx context.Context, id uint) (models.Pegawai, error) {
	var pegawai models.Pegawai
	if err := r.db.WithContext(ctx).First(&pegawai, id).Error; err != nil {
		return models.Pegawai{}, err
	}

	return pegawai, nil
}

func (r *pegawaiRepository) GetByNIP(ctx context.Context, nip string) (models.Pegawai, error) {
	var pegawai models.Pegawai
	if err := r.db.WithContext(ctx).Where("nip = ?", nip).First(&pegawai).Error; err != nil {
		return models.Pegawai{}, err
	}

	return pegawai, nil
}

func (r *pegawaiRepository) ListBawahan(ctx context.Context, atasanID uint) ([]models.Pegawai, error) {
	var bawahan []models.Pegawai
	if err := r.db.WithContext(ctx).
		Where("atasan_id = ?", atasanID).
		Where("aktif = ?", true).
		Order("nama ASC").
		Find(&bawahan).Error; err != nil {
		return nil, err
	}

	return bawahan, nil
}

func (r *pegawaiRepository) UpdateDeviceToken(ctx context.Context, id uint, token string) error {
	return r.db.WithContext(ctx).Model(&models.Pegawai{}).
		Where("id = ?", id).
		Update("device_token", token).Error
}

func (r *pegawaiRepository) HasDelegation(ctx context.Context, atasanID, penerimaID uint, at time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DelegasiVerifikasi{}).
		Where("atasan_id = ?", atasanID).
		Where("penerima_id = ?", penerimaID).
		Where("berlaku_sampai >= ?", at).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
