package models

import "time"

// KategoriKegiatan is read-only reference data used to classify reports.
type KategoriKegiatan struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nama      string    `gorm:"size:255;not null" json:"nama"`
	Aktif     bool      `gorm:"default:true" json:"aktif"`
	CreatedAt time.Time `json:"created_at"`
}
