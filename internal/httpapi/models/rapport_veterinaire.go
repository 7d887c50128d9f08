package models

import "time"

// RapportVeterinaire is create-only: no update or delete surface exists.
type RapportVeterinaire struct {
	ID                 uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	AnimalID           uint      `json:"animal_id" gorm:"not null;index"`
	VeterinaireID      uint      `json:"veterinaire_id" gorm:"not null;index"`
	EtatAnimal         string    `json:"etat_animal" gorm:"not null"`
	NourritureProposee string    `json:"nourriture_proposee" gorm:"not null"`
	GrammageNourriture int       `json:"grammage_nourriture" gorm:"not null"`
	DatePassage        time.Time `json:"date_passage" gorm:"not null"`
	DetailEtat         string    `json:"detail_etat" gorm:"not null;type:text"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`

	// Associations
	Animal      *Animal `json:"animal,omitempty" gorm:"foreignKey:AnimalID"`
	Veterinaire *User   `json:"veterinaire,omitempty" gorm:"foreignKey:VeterinaireID"`
}

func (RapportVeterinaire) TableName() string {
	return "rapport_veterinaires"
}
