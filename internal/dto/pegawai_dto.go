package dto

import "github.com/izakod/asn-api/internal/models"

// PegawaiResponse is the public view of an employee account.
type PegawaiResponse struct {
	ID       uint         `json:"id"`
	NIP      string       `json:"nip"`
	Nama     string       `json:"nama"`
	Role     string       `json:"role"`
	UnitID   uint         `json:"unit_id"`
	Jabatan  string       `json:"jabatan"`
	AtasanID *uint        `json:"atasan_id"`
	Atasan   *PegawaiLite `json:"atasan,omitempty"`
}

// NewPegawaiResponse converts a Pegawai model into a DTO.
func NewPegawaiResponse(model models.Pegawai) PegawaiResponse {
	return PegawaiResponse{
		ID:       model.ID,
		NIP:      model.NIP,
		Nama:     model.Nama,
		Role:     model.Role,
		UnitID:   model.UnitID,
		Jabatan:  model.Jabatan,
		AtasanID: model.AtasanID,
	}
}

// NewPegawaiLite converts a Pegawai model into its summary form.
func NewPegawaiLite(model models.Pegawai) PegawaiLite {
	return PegawaiLite{
		ID:      model.ID,
		NIP:     model.NIP,
		Nama:    model.Nama,
		Jabatan: model.Jabatan,
	}
}
