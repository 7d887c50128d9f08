package models

import "time"

type CommentaireHabitat struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	HabitatID     uint      `json:"habitat_id" gorm:"not null;index"`
	VeterinaireID uint      `json:"veterinaire_id" gorm:"not null;index"`
	Commentaire   string    `json:"commentaire" gorm:"not null;type:text"`
	StatutHabitat string    `json:"statut_habitat" gorm:"default:'bon'"`
	DateVisite    time.Time `json:"date_visite" gorm:"not null"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	// Associations
	Habitat     *Habitat `json:"habitat,omitempty" gorm:"foreignKey:HabitatID"`
	Veterinaire *User    `json:"veterinaire,omitempty" gorm:"foreignKey:VeterinaireID"`
}

func (CommentaireHabitat) TableName() string {
	return "commentaire_habitats"
}
