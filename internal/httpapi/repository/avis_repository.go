package repository

import (
	"zooarcadia/internal/httpapi/models"

	"gorm.io/gorm"
)

type AvisRepository interface {
	Create(avis *models.Avis) error
	FindByID(id uint) (*models.Avis, error)
	ListByStatut(statut string) ([]models.Avis, error)
	// ListAll returns every review, newest first, with the moderator loaded.
	ListAll() ([]models.Avis, error)
	Update(avis *models.Avis) error
}

type avisRepository struct {
	db *gorm.DB
}

func NewAvisRepository(db *gorm.DB) AvisRepository {
	return &avisRepository{db: db}
}

func (r *avisRepository) Create(avis *models.Avis) error {
	return r.db.Create(avis).Error
}

func (r *avisRepository) FindByID(id uint) (*models.Avis, error) {
	var avis models.Avis
	if err := r.db.First(&avis, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &avis, nil
}

func (r *avisRepository) ListByStatut(statut string) ([]models.Avis, error) {
	// always an array on the wire, even when empty
	avis := make([]models.Avis, 0)
	if err := r.db.Where("statut = ?", statut).Find(&avis).Error; err != nil {
		return nil, err
	}
	return avis, nil
}

func (r *avisRepository) ListAll() ([]models.Avis, error) {
	avis := make([]models.Avis, 0)
	err := r.db.
		Preload("Employe").
		Order("created_at DESC").
		Find(&avis).Error
	if err != nil {
		return nil, err
	}
	return avis, nil
}

func (r *avisRepository) Update(avis *models.Avis) error {
	return r.db.Save(avis).Error
}
