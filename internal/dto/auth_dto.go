package dto

// LoginRequest carries the NIP/PIN credential pair.
type LoginRequest struct {
	NIP string `json:"nip" validate:"required"`
	PIN string `json:"pin" validate:"required,min=4"`
}

// LoginResponse returns the signed token and the authenticated profile.
type LoginResponse struct {
	Token   string          `json:"token"`
	Pegawai PegawaiResponse `json:"pegawai"`
}

// DeviceTokenRequest registers a push-notification device token.
type DeviceTokenRequest struct {
	Token string `json:"token" validate:"required"`
}
