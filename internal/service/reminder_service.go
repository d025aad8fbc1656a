package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/repository"
)

// ErrReminderNotFound indicates a reminder could not be found.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderService manages per-user submission reminders.
type ReminderService interface {
	List(ctx context.Context, session Session) ([]dto.ReminderResponse, error)
	Create(ctx context.Context, session Session, payload dto.ReminderCreateRequest) (dto.ReminderResponse, error)
	Delete(ctx context.Context, id uint, session Session) error
}

type reminderService struct {
	reminders repository.ReminderRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewReminderService constructs a ReminderService instance.
func NewReminderService(reminderRepo repository.ReminderRepository, validate *validator.Validate, logger zerolog.Logger) ReminderService {
	return &reminderService{
		reminders: reminderRepo,
		validator: validate,
		logger:    logger.With().Str("component", "reminder_service").Logger(),
	}
}

func (s *reminderService) List(ctx context.Context, session Session) ([]dto.ReminderResponse, error) {
	reminders, err := s.reminders.ListByPegawai(ctx, session.PegawaiID)
	if err != nil {
		return nil, err
	}

	return dto.NewReminderResponseSlice(reminders), nil
}

func (s *reminderService) Create(ctx context.Context, session Session, payload dto.ReminderCreateRequest) (dto.ReminderResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.ReminderResponse{}, err
	}

	if !jamRe.MatchString(payload.Jam) {
		return dto.ReminderResponse{}, NewValidationError(map[string]string{"jam": "format jam harus HH:MM"})
	}

	reminder := models.Reminder{
		PegawaiID: session.PegawaiID,
		Judul:     payload.Judul,
		Hari:      payload.Hari,
		Jam:       payload.Jam,
		Aktif:     true,
	}

	if err := s.reminders.Create(ctx, &reminder); err != nil {
		return dto.ReminderResponse{}, err
	}

	return dto.NewReminderResponse(reminder), nil
}

func (s *reminderService) Delete(ctx context.Context, id uint, session Session) error {
	reminder, err := s.reminders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReminderNotFound
		}
		return err
	}

	if reminder.PegawaiID != session.PegawaiID {
		return ErrNotAuthorized
	}

	return s.reminders.Delete(ctx, id)
}
