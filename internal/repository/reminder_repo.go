package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/models"
)

// ReminderRepository defines data operations for per-user reminders.
type ReminderRepository interface {
	ListByPegawai(ctx context.Context, pegawaiID uint) ([]models.Reminder, error)
	GetByID(ctx context.Context, id uint) (models.Reminder, error)
	Create(ctx context.Context, reminder *models.Reminder) error
	Delete(ctx context.Context, id uint) error
}

type reminderRepository struct {
	db *gorm.DB
}

// NewReminderRepository instantiates the repository.
func NewReminderRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) ListByPegawai(ctx context.Context, pegawaiID uint) ([]models.Reminder, error) {
	var reminders []models.Reminder
	if err := r.db.WithContext(ctx).
		Where("pegawai_id = ?", pegawaiID).
		Order("hari ASC, jam ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}

	return reminders, nil
}

func (r *reminderRepository) GetByID(ctx context.Context, id uint) (models.Reminder, error) {
	var reminder models.Reminder
	if err := r.db.WithContext(ctx).First(&reminder, id).Error; err != nil {
		return models.Reminder{}, err
	}

	return reminder, nil
}

func (r *reminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	return r.db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Reminder{}, id).Error
}
