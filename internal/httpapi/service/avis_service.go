package service

import (
	"errors"

	"zooarcadia/internal/httpapi/models"
	"zooarcadia/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrAvisNotFound      = errors.New("avis introuvable")
	ErrInvalidAvisStatut = errors.New("statut d'avis invalide")
)

type AvisService interface {
	// ListApproved is the public listing: approved reviews only.
	ListApproved() ([]models.Avis, error)
	ListAll() ([]models.Avis, error)
	// Submit records an anonymous visitor review, always en_attente.
	Submit(pseudo, texte string) (*models.Avis, error)
	// Moderate re-sets the status and records the moderator. Statuses
	// are freely re-settable: approving a rejected review is allowed.
	Moderate(id uint, statut string, moderatorID uint) (*models.Avis, error)
}

type avisService struct {
	avisRepo repository.AvisRepository
}

func NewAvisService(avisRepo repository.AvisRepository) AvisService {
	return &avisService{avisRepo: avisRepo}
}

func (s *avisService) ListApproved() ([]models.Avis, error) {
	return s.avisRepo.ListByStatut(models.AvisApprouve)
}

func (s *avisService) ListAll() ([]models.Avis, error) {
	return s.avisRepo.ListAll()
}

func (s *avisService) Submit(pseudo, texte string) (*models.Avis, error) {
	avis := &models.Avis{
		Pseudo: pseudo,
		Texte:  texte,
		Statut: models.AvisEnAttente,
	}
	if err := s.avisRepo.Create(avis); err != nil {
		return nil, err
	}
	return avis, nil
}

func (s *avisService) Moderate(id uint, statut string, moderatorID uint) (*models.Avis, error) {
	if !models.ValidAvisStatut(statut) {
		return nil, ErrInvalidAvisStatut
	}

	avis, err := s.avisRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAvisNotFound
		}
		return nil, err
	}

	avis.Statut = statut
	avis.EmployeID = &moderatorID

	if err := s.avisRepo.Update(avis); err != nil {
		return nil, err
	}
	return avis, nil
}
