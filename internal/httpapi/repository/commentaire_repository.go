package repository

import (
	"zooarcadia/internal/httpapi/models"

	"gorm.io/gorm"
)

type CommentaireRepository interface {
	Create(commentaire *models.CommentaireHabitat) error
	// ListByHabitat returns a habitat's comments, newest first, with
	// the habitat and veterinarian loaded.
	ListByHabitat(habitatID uint) ([]models.CommentaireHabitat, error)
}

type commentaireRepository struct {
	db *gorm.DB
}

func NewCommentaireRepository(db *gorm.DB) CommentaireRepository {
	return &commentaireRepository{db: db}
}

func (r *commentaireRepository) Create(commentaire *models.CommentaireHabitat) error {
	return r.db.Create(commentaire).Error
}

func (r *commentaireRepository) ListByHabitat(habitatID uint) ([]models.CommentaireHabitat, error) {
	commentaires := make([]models.CommentaireHabitat, 0)
	err := r.db.
		Where("habitat_id = ?", habitatID).
		Preload("Habitat").
		Preload("Veterinaire").
		Order("created_at DESC").
		Find(&commentaires).Error
	if err != nil {
		return nil, err
	}
	return commentaires, nil
}
