package repository

import (
	"zooarcadia/internal/httpapi/models"

	"gorm.io/gorm"
)

type RapportRepository interface {
	Create(rapport *models.RapportVeterinaire) error
	// ListAll returns every report, most recent visit first, with the
	// animal and veterinarian loaded.
	ListAll() ([]models.RapportVeterinaire, error)
}

type rapportRepository struct {
	db *gorm.DB
}

func NewRapportRepository(db *gorm.DB) RapportRepository {
	return &rapportRepository{db: db}
}

func (r *rapportRepository) Create(rapport *models.RapportVeterinaire) error {
	return r.db.Create(rapport).Error
}

func (r *rapportRepository) ListAll() ([]models.RapportVeterinaire, error) {
	rapports := make([]models.RapportVeterinaire, 0)
	err := r.db.
		Preload("Animal").
		Preload("Veterinaire").
		Order("date_passage DESC").
		Find(&rapports).Error
	if err != nil {
		return nil, err
	}
	return rapports, nil
}
