package models

import "time"

// Template visibility values.
const (
	// TemplatePublik is visible to every pegawai.
	TemplatePublik = "publik"
	// TemplateUnit is restricted to the owning organizational unit.
	TemplateUnit = "unit"
)

// TemplateLaporan is a reusable draft skeleton used to pre-populate a new
// laporan kegiatan. Templates never transition state themselves.
type TemplateLaporan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PembuatID   uint      `gorm:"not null;index" json:"pembuat_id"`
	UnitID      uint      `gorm:"index" json:"unit_id"`
	Nama        string    `gorm:"size:255;not null" json:"nama"`
	KategoriID  uint      `json:"kategori_id"`
	Deskripsi   string    `gorm:"type:text" json:"deskripsi"`
	Target      string    `gorm:"type:text" json:"target_output"`
	Lokasi      string    `gorm:"size:255" json:"lokasi"`
	DurasiMenit int       `json:"durasi_menit"`
	Visibilitas string    `gorm:"size:16;not null;default:publik" json:"visibilitas"`
	JumlahPakai int       `gorm:"default:0" json:"jumlah_pakai"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VisibleTo reports whether a pegawai in the given unit may use the template.
func (t TemplateLaporan) VisibleTo(pegawaiID, unitID uint) bool {
	if t.Visibilitas == TemplatePublik {
		return true
	}
	return t.UnitID == unitID || t.PembuatID == pegawaiID
}
