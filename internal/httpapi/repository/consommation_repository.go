package repository

import (
	"zooarcadia/internal/httpapi/models"

	"gorm.io/gorm"
)

type ConsommationRepository interface {
	Create(consommation *models.ConsommationNourriture) error
	// ListAll returns every feeding log, most recent first, with the
	// animal and employee loaded.
	ListAll() ([]models.ConsommationNourriture, error)
}

type consommationRepository struct {
	db *gorm.DB
}

func NewConsommationRepository(db *gorm.DB) ConsommationRepository {
	return &consommationRepository{db: db}
}

func (r *consommationRepository) Create(consommation *models.ConsommationNourriture) error {
	return r.db.Create(consommation).Error
}

func (r *consommationRepository) ListAll() ([]models.ConsommationNourriture, error) {
	consommations := make([]models.ConsommationNourriture, 0)
	err := r.db.
		Preload("Animal").
		Preload("Employe").
		Order("date_consommation DESC").
		Find(&consommations).Error
	if err != nil {
		return nil, err
	}
	return consommations, nil
}
