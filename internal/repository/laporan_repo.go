package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/izakod/asn-api/internal/models"
)

// LaporanFilter allows narrowing laporan queries.
type LaporanFilter struct {
	PegawaiID  *uint
	PegawaiIDs []uint
	Status     *models.StatusLaporan
	KategoriID *uint
	Bulan      *string // "YYYY-MM", matched against tanggal prefix
	DariTanggal   *string
	SampaiTanggal *string
}

// LaporanRepository defines data operations for laporan kegiatan.
type LaporanRepository interface {
	List(ctx context.Context, filter LaporanFilter) ([]models.LaporanKegiatan, error)
	GetByID(ctx context.Context, id uint) (models.LaporanKegiatan, error)
	Create(ctx context.Context, laporan *models.LaporanKegiatan) error
	Update(ctx context.Context, laporan *models.LaporanKegiatan) error
	// Transition loads the report under a row-level lock, applies fn and
	// persists the result in one transaction. Concurrent transitions on the
	// same report serialize on the lock, so fn sees committed state.
	Transition(ctx context.Context, id uint, fn func(*models.LaporanKegiatan) error) (models.LaporanKegiatan, error)
}

type laporanRepository struct {
	db *gorm.DB
}

// NewLaporanRepository instantiates the repository.
func NewLaporanRepository(db *gorm.DB) LaporanRepository {
	return &laporanRepository{db: db}
}

func (r *laporanRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.LaporanKegiatan{}).
		Preload("Pegawai").
		Preload("Kategori")
}

func (r *laporanRepository) List(ctx context.Context, filter LaporanFilter) ([]models.LaporanKegiatan, error) {
	query := r.baseQuery(ctx)

	if filter.PegawaiID != nil {
		query = query.Where("pegawai_id = ?", *filter.PegawaiID)
	}

	if len(filter.PegawaiIDs) > 0 {
		query = query.Where("pegawai_id IN ?", filter.PegawaiIDs)
	}

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	if filter.KategoriID != nil {
		query = query.Where("kategori_id = ?", *filter.KategoriID)
	}

	if filter.Bulan != nil {
		query = query.Where("tanggal LIKE ?", *filter.Bulan+"%")
	}

	if filter.DariTanggal != nil {
		query = query.Where("tanggal >= ?", *filter.DariTanggal)
	}

	if filter.SampaiTanggal != nil {
		query = query.Where("tanggal <= ?", *filter.SampaiTanggal)
	}

	var laporan []models.LaporanKegiatan
	if err := query.Order("tanggal DESC, jam_mulai DESC").Find(&laporan).Error; err != nil {
		return nil, err
	}

	return laporan, nil
}

func (r *laporanRepository) GetByID(ctx context.Context, id uint) (models.LaporanKegiatan, error) {
	var laporan models.LaporanKegiatan
	if err := r.baseQuery(ctx).First(&laporan, id).Error; err != nil {
		return models.LaporanKegiatan{}, err
	}

	return laporan, nil
}

func (r *laporanRepository) Create(ctx context.Context, laporan *models.LaporanKegiatan) error {
	return r.db.WithContext(ctx).Create(laporan).Error
}

func (r *laporanRepository) Update(ctx context.Context, laporan *models.LaporanKegiatan) error {
	return r.db.WithContext(ctx).Save(laporan).Error
}

func (r *laporanRepository) Transition(ctx context.Context, id uint, fn func(*models.LaporanKegiatan) error) (models.LaporanKegiatan, error) {
	var laporan models.LaporanKegiatan

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&laporan, id).Error; err != nil {
			return err
		}

		if err := fn(&laporan); err != nil {
			return err
		}

		return tx.Save(&laporan).Error
	})
	if err != nil {
		return models.LaporanKegiatan{}, err
	}

	// Reload with associations for the response payload.
	return r.GetByID(ctx, laporan.ID)
}
