package models

import "time"

// Reminder is a per-user scheduled prompt to submit a laporan kegiatan.
type Reminder struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PegawaiID uint      `gorm:"not null;index" json:"pegawai_id"`
	Judul     string    `gorm:"size:255;not null" json:"judul"`
	Hari      string    `gorm:"size:16;not null" json:"hari"`
	Jam       string    `gorm:"size:5;not null" json:"jam"`
	Aktif     bool      `gorm:"default:true" json:"aktif"`
	CreatedAt time.Time `json:"created_at"`
}
