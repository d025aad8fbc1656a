package dto

import (
	"time"

	"github.com/izakod/asn-api/internal/models"
)

// ReminderCreateRequest describes the payload for creating a reminder.
type ReminderCreateRequest struct {
	Judul string `json:"judul" validate:"required,min=3,max=255"`
	Hari  string `json:"hari" validate:"required,oneof=senin selasa rabu kamis jumat sabtu minggu"`
	Jam   string `json:"jam" validate:"required,len=5"`
}

// ReminderResponse is the client view of a reminder.
type ReminderResponse struct {
	ID        uint      `json:"id"`
	Judul     string    `json:"judul"`
	Hari      string    `json:"hari"`
	Jam       string    `json:"jam"`
	Aktif     bool      `json:"aktif"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReminderResponse converts a Reminder model into a DTO.
func NewReminderResponse(model models.Reminder) ReminderResponse {
	return ReminderResponse{
		ID:        model.ID,
		Judul:     model.Judul,
		Hari:      model.Hari,
		Jam:       model.Jam,
		Aktif:     model.Aktif,
		CreatedAt: model.CreatedAt,
	}
}

// NewReminderResponseSlice converts reminder models into DTOs.
func NewReminderResponseSlice(models []models.Reminder) []ReminderResponse {
	responses := make([]ReminderResponse, 0, len(models))
	for _, reminder := range models {
		responses = append(responses, NewReminderResponse(reminder))
	}

	return responses
}
