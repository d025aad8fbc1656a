package models

import "time"

// Role constants for pegawai accounts.
const (
	// RolePegawai is a regular employee who owns and submits reports.
	RolePegawai = "pegawai"
	// RoleAtasan is a supervisor authorized to verify subordinate reports.
	RoleAtasan = "atasan"
	// RoleAdmin has administrative scope over every unit.
	RoleAdmin = "admin"
)

// Pegawai represents an employee account.
type Pegawai struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	NIP       string    `gorm:"size:32;uniqueIndex;not null" json:"nip"`
	Nama      string    `gorm:"size:255;not null" json:"nama"`
	PINHash   string    `gorm:"size:128;not null" json:"-"`
	Role      string    `gorm:"size:16;not null;default:pegawai" json:"role"`
	UnitID    uint      `gorm:"index" json:"unit_id"`
	Jabatan   string    `gorm:"size:255" json:"jabatan"`
	AtasanID  *uint     `gorm:"index" json:"atasan_id"`
	DeviceToken string  `gorm:"size:512" json:"-"`
	Aktif     bool      `gorm:"default:true" json:"aktif"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSupervisor reports whether the account may verify reports at all.
func (p Pegawai) IsSupervisor() bool {
	return p.Role == RoleAtasan || p.Role == RoleAdmin
}

// DelegasiVerifikasi grants a pegawai temporary verification authority over
// another supervisor's subordinates, bounded by an expiry date.
type DelegasiVerifikasi struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AtasanID    uint      `gorm:"not null;index" json:"atasan_id"`
	PenerimaID  uint      `gorm:"not null;index" json:"penerima_id"`
	BerlakuSampai time.Time `json:"berlaku_sampai"`
	CreatedAt   time.Time `json:"created_at"`
}
