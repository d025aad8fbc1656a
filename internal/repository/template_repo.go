package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/models"
)

// TemplateRepository defines data operations for report templates.
type TemplateRepository interface {
	ListVisible(ctx context.Context, pegawaiID, unitID uint) ([]models.TemplateLaporan, error)
	GetByID(ctx context.Context, id uint) (models.TemplateLaporan, error)
	Create(ctx context.Context, template *models.TemplateLaporan) error
	Update(ctx context.Context, template *models.TemplateLaporan) error
	Delete(ctx context.Context, id uint) error
	IncrementPakai(ctx context.Context, id uint) error
}

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository instantiates the repository.
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) ListVisible(ctx context.Context, pegawaiID, unitID uint) ([]models.TemplateLaporan, error) {
	var templates []models.TemplateLaporan
	if err := r.db.WithContext(ctx).
		Where("visibilitas = ?", models.TemplatePublik).
		Or("unit_id = ?", unitID).
		Or("pembuat_id = ?", pegawaiID).
		Order("jumlah_pakai DESC, nama ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *templateRepository) GetByID(ctx context.Context, id uint) (models.TemplateLaporan, error) {
	var template models.TemplateLaporan
	if err := r.db.WithContext(ctx).First(&template, id).Error; err != nil {
		return models.TemplateLaporan{}, err
	}

	return template, nil
}

func (r *templateRepository) Create(ctx context.Context, template *models.TemplateLaporan) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *templateRepository) Update(ctx context.Context, template *models.TemplateLaporan) error {
	return r.db.WithContext(ctx).Save(template).Error
}

func (r *templateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.TemplateLaporan{}, id).Error
}

func (r *templateRepository) IncrementPakai(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&models.TemplateLaporan{}).
		Where("id = ?", id).
		UpdateColumn("jumlah_pakai", gorm.Expr("jumlah_pakai + 1")).Error
}
