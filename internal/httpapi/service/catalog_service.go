package service

import (
	"errors"

	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/models"
	"zooarcadia/internal/httpapi/repository"

	"gorm.io/gorm"
)

var ErrServiceNotFound = errors.New("service introuvable")

// CatalogService manages the zoo's visitor services (restaurant,
// guided tours, ...).
type CatalogService interface {
	List() ([]models.Service, error)
	Create(req dto.CreateServiceRequest) (*models.Service, error)
	Update(id uint, req dto.UpdateServiceRequest) (*models.Service, error)
	Delete(id uint) error
}

type catalogService struct {
	serviceRepo repository.ServiceRepository
}

func NewCatalogService(serviceRepo repository.ServiceRepository) CatalogService {
	return &catalogService{serviceRepo: serviceRepo}
}

func (s *catalogService) List() ([]models.Service, error) {
	return s.serviceRepo.List()
}

func (s *catalogService) Create(req dto.CreateServiceRequest) (*models.Service, error) {
	service := &models.Service{
		Nom:         req.Nom,
		Description: req.Description,
	}
	if err := s.serviceRepo.Create(service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *catalogService) Update(id uint, req dto.UpdateServiceRequest) (*models.Service, error) {
	service, err := s.serviceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	if req.Nom != nil {
		service.Nom = *req.Nom
	}
	if req.Description != nil {
		service.Description = *req.Description
	}

	if err := s.serviceRepo.Update(service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *catalogService) Delete(id uint) error {
	service, err := s.serviceRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	return s.serviceRepo.Delete(service)
}
