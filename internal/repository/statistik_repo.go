package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/models"
)

// StatistikBulanan aggregates one employee's reports for a single month.
type StatistikBulanan struct {
	PegawaiID    uint
	Bulan        string
	PerStatus    map[models.StatusLaporan]int
	TotalMenit   int
	RataRating   float64
	JumlahRating int
}

// StatistikRepository computes monthly aggregates over laporan kegiatan.
type StatistikRepository interface {
	Bulanan(ctx context.Context, pegawaiID uint, bulan string) (StatistikBulanan, error)
}

type statistikRepository struct {
	db *gorm.DB
}

// NewStatistikRepository instantiates the repository.
func NewStatistikRepository(db *gorm.DB) StatistikRepository {
	return &statistikRepository{db: db}
}

func (r *statistikRepository) Bulanan(ctx context.Context, pegawaiID uint, bulan string) (StatistikBulanan, error) {
	var laporan []models.LaporanKegiatan
	if err := r.db.WithContext(ctx).Model(&models.LaporanKegiatan{}).
		Where("pegawai_id = ?", pegawaiID).
		Where("tanggal LIKE ?", bulan+"%").
		Find(&laporan).Error; err != nil {
		return StatistikBulanan{}, err
	}

	stats := StatistikBulanan{
		PegawaiID: pegawaiID,
		Bulan:     bulan,
		PerStatus: make(map[models.StatusLaporan]int),
	}

	var ratingTotal int
	for _, l := range laporan {
		stats.PerStatus[l.Status]++
		stats.TotalMenit += l.DurasiMenit()
		if l.Status == models.StatusDiverifikasi && l.Rating != nil {
			ratingTotal += *l.Rating
			stats.JumlahRating++
		}
	}

	if stats.JumlahRating > 0 {
		stats.RataRating = float64(ratingTotal) / float64(stats.JumlahRating)
	}

	return stats, nil
}
