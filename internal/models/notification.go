package models

import "time"

// Notification types emitted by the verification workflow.
const (
	NotifLaporanDiverifikasi = "laporan_diverifikasi"
	NotifLaporanDitolak      = "laporan_ditolak"
	NotifLaporanRevisi       = "laporan_revisi"
)

// Notification is a persisted message for a pegawai, fanned out live to any
// connected clients and listed from the inbox endpoint.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PegawaiID uint      `gorm:"not null;index" json:"pegawai_id"`
	LaporanID *uint     `gorm:"index" json:"laporan_id"`
	Type      string    `gorm:"size:64" json:"type"`
	Message   string    `gorm:"type:text" json:"message"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
