package dto

import "github.com/izakod/asn-api/internal/repository"

// StatistikBulananResponse summarizes one employee's reports for a month.
type StatistikBulananResponse struct {
	PegawaiID    uint           `json:"pegawai_id"`
	Bulan        string         `json:"bulan"`
	PerStatus    map[string]int `json:"per_status"`
	TotalLaporan int            `json:"total_laporan"`
	TotalMenit   int            `json:"total_menit"`
	RataRating   float64        `json:"rata_rating"`
	JumlahRating int            `json:"jumlah_rating"`
}

// NewStatistikBulananResponse converts the repository aggregate into a DTO.
func NewStatistikBulananResponse(stats repository.StatistikBulanan) StatistikBulananResponse {
	perStatus := make(map[string]int, len(stats.PerStatus))
	total := 0
	for status, count := range stats.PerStatus {
		perStatus[string(status)] = count
		total += count
	}

	return StatistikBulananResponse{
		PegawaiID:    stats.PegawaiID,
		Bulan:        stats.Bulan,
		PerStatus:    perStatus,
		TotalLaporan: total,
		TotalMenit:   stats.TotalMenit,
		RataRating:   stats.RataRating,
		JumlahRating: stats.JumlahRating,
	}
}
