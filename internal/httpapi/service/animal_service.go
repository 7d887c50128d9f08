package service

import (
	"context"
	"errors"
	"log/slog"

	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/models"
	"zooarcadia/internal/httpapi/repository"
	"zooarcadia/internal/stats"

	"gorm.io/gorm"
)

var ErrAnimalNotFound = errors.New("animal introuvable")

type AnimalService interface {
	// Get loads the animal with its habitat and latest vet report.
	Get(id uint) (*models.Animal, error)
	Create(req dto.CreateAnimalRequest) (*models.Animal, error)
	Update(id uint, req dto.UpdateAnimalRequest) (*models.Animal, error)
	Delete(id uint) error
	// RecordView bumps the popularity counter for an existing animal.
	// Counter-store failure is logged and swallowed: the view endpoint
	// must never fail because analytics are down.
	RecordView(ctx context.Context, id uint) (string, error)
}

type animalService struct {
	animalRepo  repository.AnimalRepository
	habitatRepo repository.HabitatRepository
	stats       stats.Store
	logger      *slog.Logger
}

func NewAnimalService(animalRepo repository.AnimalRepository, habitatRepo repository.HabitatRepository, statsStore stats.Store, logger *slog.Logger) AnimalService {
	return &animalService{
		animalRepo:  animalRepo,
		habitatRepo: habitatRepo,
		stats:       statsStore,
		logger:      logger,
	}
}

func (s *animalService) Get(id uint) (*models.Animal, error) {
	animal, err := s.animalRepo.FindByIDWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}
	return animal, nil
}

func (s *animalService) Create(req dto.CreateAnimalRequest) (*models.Animal, error) {
	// the habitat FK must reference an existing row
	if _, err := s.habitatRepo.FindByID(req.HabitatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitatNotFound
		}
		return nil, err
	}

	animal := &models.Animal{
		Prenom:    req.Prenom,
		Race:      req.Race,
		HabitatID: req.HabitatID,
		ImageURL:  req.ImageURL,
	}
	if err := s.animalRepo.Create(animal); err != nil {
		return nil, err
	}
	return animal, nil
}

func (s *animalService) Update(id uint, req dto.UpdateAnimalRequest) (*models.Animal, error) {
	animal, err := s.animalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}

	if req.Prenom != nil {
		animal.Prenom = *req.Prenom
	}
	if req.Race != nil {
		animal.Race = *req.Race
	}
	if req.HabitatID != nil {
		if _, err := s.habitatRepo.FindByID(*req.HabitatID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrHabitatNotFound
			}
			return nil, err
		}
		animal.HabitatID = *req.HabitatID
	}
	if req.ImageURL != nil {
		animal.ImageURL = *req.ImageURL
	}

	if err := s.animalRepo.Update(animal); err != nil {
		return nil, err
	}
	return animal, nil
}

func (s *animalService) Delete(id uint) error {
	animal, err := s.animalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAnimalNotFound
		}
		return err
	}
	return s.animalRepo.Delete(animal)
}

func (s *animalService) RecordView(ctx context.Context, id uint) (string, error) {
	animal, err := s.animalRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAnimalNotFound
		}
		return "", err
	}

	if err := s.stats.IncrementView(ctx, animal.ID, animal.Prenom); err != nil {
		s.logger.Warn("view counter update failed", "animal_id", animal.ID, "error", err)
	}
	return animal.Prenom, nil
}
