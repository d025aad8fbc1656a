package dto

// Verification actions a supervisor may apply to a submitted report.
const (
	VerifikasiSetujui = "setujui"
	VerifikasiRevisi  = "revisi"
	VerifikasiTolak   = "tolak"
)

// VerifikasiRequest carries a supervisor's verification decision.
type VerifikasiRequest struct {
	Aksi    string `json:"aksi" validate:"required,oneof=setujui revisi tolak"`
	Catatan string `json:"catatan"`
	Rating  *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}
