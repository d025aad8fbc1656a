package dto

import "github.com/izakod/asn-api/internal/models"

// KategoriResponse is the client view of an activity category.
type KategoriResponse struct {
	ID    uint   `json:"id"`
	Nama  string `json:"nama"`
	Aktif bool   `json:"aktif"`
}

// NewKategoriResponseSlice converts category models into DTOs.
func NewKategoriResponseSlice(models []models.KategoriKegiatan) []KategoriResponse {
	responses := make([]KategoriResponse, 0, len(models))
	for _, kategori := range models {
		responses = append(responses, KategoriResponse{
			ID:    kategori.ID,
			Nama:  kategori.Nama,
			Aktif: kategori.Aktif,
		})
	}

	return responses
}
