package repository

import (
	"zooarcadia/internal/httpapi/models"

	"gorm.io/gorm"
)

type AnimalRepository interface {
	Create(animal *models.Animal) error
	FindByID(id uint) (*models.Animal, error)
	// FindByIDWithDetails loads the habitat and the latest vet report
	// (date_passage descending, one row).
	FindByIDWithDetails(id uint) (*models.Animal, error)
	Update(animal *models.Animal) error
	Delete(animal *models.Animal) error
}

type animalRepository struct {
	db *gorm.DB
}

func NewAnimalRepository(db *gorm.DB) AnimalRepository {
	return &animalRepository{db: db}
}

func (r *animalRepository) Create(animal *models.Animal) error {
	return r.db.Create(animal).Error
}

func (r *animalRepository) FindByID(id uint) (*models.Animal, error) {
	var animal models.Animal
	if err := r.db.First(&animal, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) FindByIDWithDetails(id uint) (*models.Animal, error) {
	var animal models.Animal
	err := r.db.
		Preload("Habitat").
		Preload("Rapports", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_passage DESC").Limit(1)
		}).
		First(&animal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepository) Update(animal *models.Animal) error {
	return r.db.Save(animal).Error
}

func (r *animalRepository) Delete(animal *models.Animal) error {
	return r.db.Delete(animal).Error
}
