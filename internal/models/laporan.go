package models

import (
	"strings"
	"time"
)

// StatusLaporan enumerates the lifecycle states of a laporan kegiatan.
type StatusLaporan string

const (
	// StatusDraft indicates the report is still being edited by its owner.
	StatusDraft StatusLaporan = "Draft"
	// StatusDiajukan indicates the report has been submitted and awaits verification.
	StatusDiajukan StatusLaporan = "Diajukan"
	// StatusDiverifikasi indicates the report was approved by a supervisor. Terminal.
	StatusDiverifikasi StatusLaporan = "Diverifikasi"
	// StatusDitolak indicates the report was rejected by a supervisor. Terminal.
	StatusDitolak StatusLaporan = "Ditolak"
	// StatusRevisi indicates a supervisor requested changes; the owner may edit and resubmit.
	StatusRevisi StatusLaporan = "Revisi"
)

// ParseStatusLaporan maps a raw string onto the closed status enum. Matching
// is case-insensitive so query filters like ?status=diajukan resolve to the
// canonical value.
func ParseStatusLaporan(raw string) (StatusLaporan, bool) {
	for _, status := range []StatusLaporan{StatusDraft, StatusDiajukan, StatusDiverifikasi, StatusDitolak, StatusRevisi} {
		if strings.EqualFold(raw, string(status)) {
			return status, true
		}
	}

	return "", false
}

// CanTransitionTo reports whether the lifecycle graph permits moving to next.
func (s StatusLaporan) CanTransitionTo(next StatusLaporan) bool {
	switch s {
	case StatusDraft:
		return next == StatusDiajukan
	case StatusDiajukan:
		return next == StatusDiverifikasi || next == StatusDitolak || next == StatusRevisi
	case StatusRevisi:
		return next == StatusDiajukan
	case StatusDiverifikasi, StatusDitolak:
		return false
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s StatusLaporan) IsTerminal() bool {
	return s == StatusDiverifikasi || s == StatusDitolak
}

// IsEditable reports whether the owner may still change the report contents.
func (s StatusLaporan) IsEditable() bool {
	return s == StatusDraft || s == StatusRevisi
}

// LaporanKegiatan represents one reported activity owned by a pegawai.
type LaporanKegiatan struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	PegawaiID  uint          `gorm:"not null;index" json:"pegawai_id"`
	KategoriID uint          `gorm:"index" json:"kategori_id"`
	Tanggal    string        `gorm:"size:10" json:"tanggal"`
	JamMulai   string        `gorm:"size:5" json:"jam_mulai"`
	JamSelesai string        `gorm:"size:5" json:"jam_selesai"`
	Durasi     int           `json:"durasi_menit"`
	Judul      string        `gorm:"size:255" json:"judul"`
	Deskripsi  string        `gorm:"type:text" json:"deskripsi"`
	Target     string        `gorm:"type:text" json:"target_output"`
	Realisasi  string        `gorm:"type:text" json:"realisasi_output"`
	Lokasi     string        `gorm:"size:255" json:"lokasi"`
	Latitude   *float64      `json:"latitude"`
	Longitude  *float64      `json:"longitude"`
	Peserta    string        `gorm:"type:text" json:"peserta"`
	JumlahPeserta int        `gorm:"default:0" json:"jumlah_peserta"`
	TautanReferensi string    `gorm:"size:512" json:"tautan_referensi"`
	Kendala    string        `gorm:"type:text" json:"kendala"`
	Status     StatusLaporan `gorm:"size:16;not null;index" json:"status"`
	Catatan    string        `gorm:"type:text" json:"catatan_verifikasi"`
	Rating     *int          `json:"rating"`
	VerifiedBy *uint         `json:"verified_by"`
	VerifiedAt *time.Time    `json:"verified_at"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	Pegawai    Pegawai       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"pegawai"`
	Kategori   KategoriKegiatan `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"kategori"`
}

// DurasiMenit derives the activity duration in minutes from the HH:MM pair.
// Returns 0 when either time is missing or malformed.
func (l LaporanKegiatan) DurasiMenit() int {
	start, okStart := parseClock(l.JamMulai)
	end, okEnd := parseClock(l.JamSelesai)
	if !okStart || !okEnd || end <= start {
		return 0
	}
	return end - start
}

func parseClock(value string) (int, bool) {
	if len(value) != 5 || value[2] != ':' {
		return 0, false
	}
	hour := int(value[0]-'0')*10 + int(value[1]-'0')
	minute := int(value[3]-'0')*10 + int(value[4]-'0')
	for _, c := range []byte{value[0], value[1], value[3], value[4]} {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	if hour > 23 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
