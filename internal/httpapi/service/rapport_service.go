package service

import (
	"errors"

	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/models"
	"zooarcadia/internal/httpapi/repository"

	"gorm.io/gorm"
)

type RapportService interface {
	List() ([]models.RapportVeterinaire, error)
	Create(veterinaireID uint, req dto.CreateRapportRequest) (*models.RapportVeterinaire, error)
}

type rapportService struct {
	rapportRepo repository.RapportRepository
	animalRepo  repository.AnimalRepository
}

func NewRapportService(rapportRepo repository.RapportRepository, animalRepo repository.AnimalRepository) RapportService {
	return &rapportService{rapportRepo: rapportRepo, animalRepo: animalRepo}
}

func (s *rapportService) List() ([]models.RapportVeterinaire, error) {
	return s.rapportRepo.ListAll()
}

func (s *rapportService) Create(veterinaireID uint, req dto.CreateRapportRequest) (*models.RapportVeterinaire, error) {
	if _, err := s.animalRepo.FindByID(req.AnimalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}

	rapport := &models.RapportVeterinaire{
		AnimalID:           req.AnimalID,
		VeterinaireID:      veterinaireID,
		EtatAnimal:         req.EtatAnimal,
		NourritureProposee: req.NourritureProposee,
		GrammageNourriture: req.GrammageNourriture,
		DatePassage:        req.DatePassage,
		DetailEtat:         req.DetailEtat,
	}
	if err := s.rapportRepo.Create(rapport); err != nil {
		return nil, err
	}
	return rapport, nil
}
