package dto

import (
	"time"

	"github.com/izakod/asn-api/internal/models"
)

// LaporanCreateRequest describes the payload for creating a laporan kegiatan.
// Field-level domain rules (required fields, HH:MM ordering, coordinate
// pairing) are enforced by the validation engine when the report is submitted;
// drafts may be partial.
type LaporanCreateRequest struct {
	Tanggal         string   `json:"tanggal"`
	JamMulai        string   `json:"jam_mulai"`
	JamSelesai      string   `json:"jam_selesai"`
	KategoriID      uint     `json:"kategori_id"`
	Judul           string   `json:"judul"`
	Deskripsi       string   `json:"deskripsi"`
	Target          string   `json:"target_output"`
	Realisasi       string   `json:"realisasi_output"`
	Lokasi          string   `json:"lokasi"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Peserta         string   `json:"peserta"`
	JumlahPeserta   int      `json:"jumlah_peserta"`
	TautanReferensi string   `json:"tautan_referensi" validate:"omitempty,url"`
	Kendala         string   `json:"kendala"`
	TemplateID      *uint    `json:"template_id"`
	// Ajukan submits the report directly instead of keeping it as a draft.
	Ajukan bool `json:"ajukan"`
}

// LaporanUpdateRequest patches an editable report. Nil fields are left as-is.
type LaporanUpdateRequest struct {
	Tanggal         *string  `json:"tanggal"`
	JamMulai        *string  `json:"jam_mulai"`
	JamSelesai      *string  `json:"jam_selesai"`
	KategoriID      *uint    `json:"kategori_id"`
	Judul           *string  `json:"judul"`
	Deskripsi       *string  `json:"deskripsi"`
	Target          *string  `json:"target_output"`
	Realisasi       *string  `json:"realisasi_output"`
	Lokasi          *string  `json:"lokasi"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Peserta         *string  `json:"peserta"`
	JumlahPeserta   *int     `json:"jumlah_peserta"`
	TautanReferensi *string  `json:"tautan_referensi" validate:"omitempty,url"`
	Kendala         *string  `json:"kendala"`
	// Ajukan transitions the report to Diajukan after the patch is applied.
	Ajukan bool `json:"ajukan"`
}

// LaporanFilter describes query string filters for listing reports.
type LaporanFilter struct {
	PegawaiID  *uint   `query:"pegawai_id"`
	Status     *string `query:"status"`
	KategoriID *uint   `query:"kategori_id"`
	Bulan      *string `query:"bulan" validate:"omitempty,len=7"`
	DariTanggal   *string `query:"dari" validate:"omitempty,len=10"`
	SampaiTanggal *string `query:"sampai" validate:"omitempty,len=10"`
}

// PegawaiLite summarizes an employee in report responses.
type PegawaiLite struct {
	ID      uint   `json:"id"`
	NIP     string `json:"nip"`
	Nama    string `json:"nama"`
	Jabatan string `json:"jabatan"`
}

// KategoriLite summarizes a category in report responses.
type KategoriLite struct {
	ID   uint   `json:"id"`
	Nama string `json:"nama"`
}

// LaporanResponse is returned to API clients when viewing reports.
type LaporanResponse struct {
	ID              uint         `json:"id"`
	PegawaiID       uint         `json:"pegawai_id"`
	KategoriID      uint         `json:"kategori_id"`
	Tanggal         string       `json:"tanggal"`
	JamMulai        string       `json:"jam_mulai"`
	JamSelesai      string       `json:"jam_selesai"`
	DurasiMenit     int          `json:"durasi_menit"`
	Judul           string       `json:"judul"`
	Deskripsi       string       `json:"deskripsi"`
	Target          string       `json:"target_output"`
	Realisasi       string       `json:"realisasi_output"`
	Lokasi          string       `json:"lokasi"`
	Latitude        *float64     `json:"latitude"`
	Longitude       *float64     `json:"longitude"`
	Peserta         string       `json:"peserta"`
	JumlahPeserta   int          `json:"jumlah_peserta"`
	TautanReferensi string       `json:"tautan_referensi"`
	Kendala         string       `json:"kendala"`
	Status          string       `json:"status"`
	Catatan         string       `json:"catatan_verifikasi"`
	Rating          *int         `json:"rating"`
	VerifiedBy      *uint        `json:"verified_by"`
	VerifiedAt      *time.Time   `json:"verified_at"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Pegawai         PegawaiLite  `json:"pegawai"`
	Kategori        KategoriLite `json:"kategori"`
}

// LaporanDetailResponse adds the caller-specific capability flags.
type LaporanDetailResponse struct {
	LaporanResponse
	CanEdit   bool `json:"can_edit"`
	CanVerify bool `json:"can_verify"`
}

// NewLaporanResponse converts a LaporanKegiatan model into a DTO.
func NewLaporanResponse(model models.LaporanKegiatan) LaporanResponse {
	response := LaporanResponse{
		ID:              model.ID,
		PegawaiID:       model.PegawaiID,
		KategoriID:      model.KategoriID,
		Tanggal:         model.Tanggal,
		JamMulai:        model.JamMulai,
		JamSelesai:      model.JamSelesai,
		DurasiMenit:     model.DurasiMenit(),
		Judul:           model.Judul,
		Deskripsi:       model.Deskripsi,
		Target:          model.Target,
		Realisasi:       model.Realisasi,
		Lokasi:          model.Lokasi,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		Peserta:         model.Peserta,
		JumlahPeserta:   model.JumlahPeserta,
		TautanReferensi: model.TautanReferensi,
		Kendala:         model.Kendala,
		Status:          string(model.Status),
		Catatan:         model.Catatan,
		Rating:          model.Rating,
		VerifiedBy:      model.VerifiedBy,
		VerifiedAt:      model.VerifiedAt,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}

	if model.Pegawai.ID != 0 {
		response.Pegawai = PegawaiLite{
			ID:      model.Pegawai.ID,
			NIP:     model.Pegawai.NIP,
			Nama:    model.Pegawai.Nama,
			Jabatan: model.Pegawai.Jabatan,
		}
	}

	if model.Kategori.ID != 0 {
		response.Kategori = KategoriLite{
			ID:   model.Kategori.ID,
			Nama: model.Kategori.Nama,
		}
	}

	return response
}

// NewLaporanResponseSlice converts report models into DTOs.
func NewLaporanResponseSlice(models []models.LaporanKegiatan) []LaporanResponse {
	responses := make([]LaporanResponse, 0, len(models))
	for _, laporan := range models {
		responses = append(responses, NewLaporanResponse(laporan))
	}

	return responses
}
