package service

import (
	"errors"

	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/models"
	"zooarcadia/internal/httpapi/repository"

	"gorm.io/gorm"
)

type ConsommationService interface {
	List() ([]models.ConsommationNourriture, error)
	Create(employeID uint, req dto.CreateConsommationRequest) (*models.ConsommationNourriture, error)
}

type consommationService struct {
	consommationRepo repository.ConsommationRepository
	animalRepo       repository.AnimalRepository
}

func NewConsommationService(consommationRepo repository.ConsommationRepository, animalRepo repository.AnimalRepository) ConsommationService {
	return &consommationService{consommationRepo: consommationRepo, animalRepo: animalRepo}
}

func (s *consommationService) List() ([]models.ConsommationNourriture, error) {
	return s.consommationRepo.ListAll()
}

func (s *consommationService) Create(employeID uint, req dto.CreateConsommationRequest) (*models.ConsommationNourriture, error) {
	if _, err := s.animalRepo.FindByID(req.AnimalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnimalNotFound
		}
		return nil, err
	}

	consommation := &models.ConsommationNourriture{
		AnimalID:          req.AnimalID,
		EmployeID:         employeID,
		DateConsommation:  req.DateConsommation,
		HeureConsommation: req.HeureConsommation,
		NourritureDonnee:  req.NourritureDonnee,
		Quantite:          req.Quantite,
	}
	if err := s.consommationRepo.Create(consommation); err != nil {
		return nil, err
	}
	return consommation, nil
}
