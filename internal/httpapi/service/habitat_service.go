package service

import (
	"errors"
	"time"

	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/models"
	"zooarcadia/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrHabitatNotFound   = errors.New("habitat introuvable")
	ErrHabitatHasAnimaux = errors.New("impossible de supprimer un habitat qui héberge encore des animaux")
)

type HabitatService interface {
	List() ([]models.Habitat, error)
	Get(id uint) (*models.Habitat, error)
	Create(req dto.CreateHabitatRequest) (*models.Habitat, error)
	Update(id uint, req dto.UpdateHabitatRequest) (*models.Habitat, error)
	// Delete refuses while at least one animal still references the habitat.
	Delete(id uint) error

	ListCommentaires(habitatID uint) ([]models.CommentaireHabitat, error)
	AddCommentaire(habitatID, veterinaireID uint, req dto.CreateCommentaireRequest) (*models.CommentaireHabitat, error)
}

type habitatService struct {
	habitatRepo     repository.HabitatRepository
	commentaireRepo repository.CommentaireRepository
}

func NewHabitatService(habitatRepo repository.HabitatRepository, commentaireRepo repository.CommentaireRepository) HabitatService {
	return &habitatService{habitatRepo: habitatRepo, commentaireRepo: commentaireRepo}
}

func (s *habitatService) List() ([]models.Habitat, error) {
	return s.habitatRepo.ListWithAnimaux()
}

func (s *habitatService) Get(id uint) (*models.Habitat, error) {
	habitat, err := s.habitatRepo.FindByIDWithAnimaux(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitatNotFound
		}
		return nil, err
	}
	return habitat, nil
}

func (s *habitatService) Create(req dto.CreateHabitatRequest) (*models.Habitat, error) {
	habitat := &models.Habitat{
		Nom:              req.Nom,
		Description:      req.Description,
		Superficie:       req.Superficie,
		Temperature:      req.Temperature,
		VisiteursParJour: req.VisiteursParJour,
		ImageURL:         req.ImageURL,
	}
	if err := s.habitatRepo.Create(habitat); err != nil {
		return nil, err
	}
	return habitat, nil
}

func (s *habitatService) Update(id uint, req dto.UpdateHabitatRequest) (*models.Habitat, error) {
	habitat, err := s.habitatRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitatNotFound
		}
		return nil, err
	}

	if req.Nom != nil {
		habitat.Nom = *req.Nom
	}
	if req.Description != nil {
		habitat.Description = *req.Description
	}
	if req.Superficie != nil {
		habitat.Superficie = *req.Superficie
	}
	if req.Temperature != nil {
		habitat.Temperature = *req.Temperature
	}
	if req.VisiteursParJour != nil {
		habitat.VisiteursParJour = *req.VisiteursParJour
	}
	if req.ImageURL != nil {
		habitat.ImageURL = *req.ImageURL
	}

	if err := s.habitatRepo.Update(habitat); err != nil {
		return nil, err
	}
	return habitat, nil
}

func (s *habitatService) Delete(id uint) error {
	habitat, err := s.habitatRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHabitatNotFound
		}
		return err
	}

	count, err := s.habitatRepo.CountAnimaux(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrHabitatHasAnimaux
	}

	return s.habitatRepo.Delete(habitat)
}

func (s *habitatService) ListCommentaires(habitatID uint) ([]models.CommentaireHabitat, error) {
	if _, err := s.habitatRepo.FindByID(habitatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitatNotFound
		}
		return nil, err
	}
	return s.commentaireRepo.ListByHabitat(habitatID)
}

func (s *habitatService) AddCommentaire(habitatID, veterinaireID uint, req dto.CreateCommentaireRequest) (*models.CommentaireHabitat, error) {
	if _, err := s.habitatRepo.FindByID(habitatID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHabitatNotFound
		}
		return nil, err
	}

	commentaire := &models.CommentaireHabitat{
		HabitatID:     habitatID,
		VeterinaireID: veterinaireID,
		Commentaire:   req.Commentaire,
		StatutHabitat: req.StatutHabitat,
		DateVisite:    time.Now(),
	}
	if commentaire.StatutHabitat == "" {
		commentaire.StatutHabitat = "bon"
	}

	if err := s.commentaireRepo.Create(commentaire); err != nil {
		return nil, err
	}
	return commentaire, nil
}
