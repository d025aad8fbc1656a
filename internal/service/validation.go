package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/izakod/asn-api/internal/models"
)

var jamRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var tanggalRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError carries field-level validation messages. It is returned by
// the validation engine and surfaced to clients as a per-field error map.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError from a field map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validasi gagal"
	}

	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, e.Fields[key]))
	}

	return strings.Join(parts, "; ")
}

// ValidateLaporan checks a report draft against the submission rules and
// returns a field → message map, empty when the draft is valid. Pure: no I/O,
// deterministic for a given draft.
func ValidateLaporan(laporan models.LaporanKegiatan) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(laporan.Tanggal) == "" {
		errs["tanggal"] = "wajib diisi"
	} else if !tanggalRe.MatchString(laporan.Tanggal) {
		errs["tanggal"] = "format tanggal harus YYYY-MM-DD"
	}

	if laporan.KategoriID == 0 {
		errs["kategori_id"] = "wajib diisi"
	}

	if strings.TrimSpace(laporan.Judul) == "" {
		errs["judul"] = "wajib diisi"
	}

	if strings.TrimSpace(laporan.Deskripsi) == "" {
		errs["deskripsi"] = "wajib diisi"
	}

	if strings.TrimSpace(laporan.JamMulai) == "" {
		errs["jam_mulai"] = "wajib diisi"
	} else if !jamRe.MatchString(laporan.JamMulai) {
		errs["jam_mulai"] = "format jam harus HH:MM"
	}

	if strings.TrimSpace(laporan.JamSelesai) == "" {
		errs["jam_selesai"] = "wajib diisi"
	} else if !jamRe.MatchString(laporan.JamSelesai) {
		errs["jam_selesai"] = "format jam harus HH:MM"
	}

	// Zero-padded HH:MM orders lexicographically.
	if errs["jam_mulai"] == "" && errs["jam_selesai"] == "" && laporan.JamSelesai <= laporan.JamMulai {
		errs["jam_selesai"] = "jam selesai harus setelah jam mulai"
	}

	if laporan.JumlahPeserta < 0 {
		errs["jumlah_peserta"] = "tidak boleh negatif"
	}

	if (laporan.Latitude == nil) != (laporan.Longitude == nil) {
		errs["koordinat"] = "latitude dan longitude harus diisi berpasangan"
	}

	return errs
}

// truncateJam normalizes backend "HH:MM:SS" values to "HH:MM" on read.
func truncateJam(value string) string {
	if len(value) > 5 && value[2] == ':' {
		return value[:5]
	}
	return value
}
