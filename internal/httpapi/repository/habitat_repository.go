package repository

import (
	"zooarcadia/internal/httpapi/models"

	"gorm.io/gorm"
)

type HabitatRepository interface {
	Create(habitat *models.Habitat) error
	FindByID(id uint) (*models.Habitat, error)
	// FindByIDWithAnimaux eagerly loads the habitat's animals.
	FindByIDWithAnimaux(id uint) (*models.Habitat, error)
	ListWithAnimaux() ([]models.Habitat, error)
	Update(habitat *models.Habitat) error
	Delete(habitat *models.Habitat) error
	CountAnimaux(habitatID uint) (int64, error)
}

type habitatRepository struct {
	db *gorm.DB
}

func NewHabitatRepository(db *gorm.DB) HabitatRepository {
	return &habitatRepository{db: db}
}

func (r *habitatRepository) Create(habitat *models.Habitat) error {
	return r.db.Create(habitat).Error
}

func (r *habitatRepository) FindByID(id uint) (*models.Habitat, error) {
	var habitat models.Habitat
	if err := r.db.First(&habitat, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &habitat, nil
}

func (r *habitatRepository) FindByIDWithAnimaux(id uint) (*models.Habitat, error) {
	var habitat models.Habitat
	if err := r.db.Preload("Animaux").First(&habitat, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &habitat, nil
}

func (r *habitatRepository) ListWithAnimaux() ([]models.Habitat, error) {
	habitats := make([]models.Habitat, 0)
	if err := r.db.Preload("Animaux").Find(&habitats).Error; err != nil {
		return nil, err
	}
	return habitats, nil
}

func (r *habitatRepository) Update(habitat *models.Habitat) error {
	return r.db.Save(habitat).Error
}

func (r *habitatRepository) Delete(habitat *models.Habitat) error {
	return r.db.Delete(habitat).Error
}

func (r *habitatRepository) CountAnimaux(habitatID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Animal{}).Where("habitat_id = ?", habitatID).Count(&count).Error
	return count, err
}
