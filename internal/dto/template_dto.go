package dto

import (
	"time"

	"github.com/izakod/asn-api/internal/models"
)

// TemplateCreateRequest describes the payload for creating a report template.
type TemplateCreateRequest struct {
	Nama        string `json:"nama" validate:"required,min=3,max=255"`
	KategoriID  uint   `json:"kategori_id" validate:"required,gt=0"`
	Deskripsi   string `json:"deskripsi"`
	Target      string `json:"target_output"`
	Lokasi      string `json:"lokasi"`
	DurasiMenit int    `json:"durasi_menit" validate:"gte=0"`
	Visibilitas string `json:"visibilitas" validate:"omitempty,oneof=publik unit"`
}

// TemplateUpdateRequest patches an existing template. Nil fields are left as-is.
type TemplateUpdateRequest struct {
	Nama        *string `json:"nama" validate:"omitempty,min=3,max=255"`
	KategoriID  *uint   `json:"kategori_id" validate:"omitempty,gt=0"`
	Deskripsi   *string `json:"deskripsi"`
	Target      *string `json:"target_output"`
	Lokasi      *string `json:"lokasi"`
	DurasiMenit *int    `json:"durasi_menit" validate:"omitempty,gte=0"`
	Visibilitas *string `json:"visibilitas" validate:"omitempty,oneof=publik unit"`
}

// TemplateResponse is the client view of a report template.
type TemplateResponse struct {
	ID          uint      `json:"id"`
	PembuatID   uint      `json:"pembuat_id"`
	UnitID      uint      `json:"unit_id"`
	Nama        string    `json:"nama"`
	KategoriID  uint      `json:"kategori_id"`
	Deskripsi   string    `json:"deskripsi"`
	Target      string    `json:"target_output"`
	Lokasi      string    `json:"lokasi"`
	DurasiMenit int       `json:"durasi_menit"`
	Visibilitas string    `json:"visibilitas"`
	JumlahPakai int       `json:"jumlah_pakai"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTemplateResponse converts a TemplateLaporan model into a DTO.
func NewTemplateResponse(model models.TemplateLaporan) TemplateResponse {
	return TemplateResponse{
		ID:          model.ID,
		PembuatID:   model.PembuatID,
		UnitID:      model.UnitID,
		Nama:        model.Nama,
		KategoriID:  model.KategoriID,
		Deskripsi:   model.Deskripsi,
		Target:      model.Target,
		Lokasi:      model.Lokasi,
		DurasiMenit: model.DurasiMenit,
		Visibilitas: model.Visibilitas,
		JumlahPakai: model.JumlahPakai,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// NewTemplateResponseSlice converts template models into DTOs.
func NewTemplateResponseSlice(models []models.TemplateLaporan) []TemplateResponse {
	responses := make([]TemplateResponse, 0, len(models))
	for _, template := range models {
		responses = append(responses, NewTemplateResponse(template))
	}

	return responses
}
