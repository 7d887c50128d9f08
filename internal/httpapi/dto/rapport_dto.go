package dto

import "time"

type CreateRapportRequest struct {
	AnimalID           uint      `json:"animal_id" binding:"required"`
	EtatAnimal         string    `json:"etat_animal" binding:"required"`
	NourritureProposee string    `json:"nourriture_proposee" binding:"required"`
	GrammageNourriture int       `json:"grammage_nourriture" binding:"required"`
	DatePassage        time.Time `json:"date_passage" binding:"required"`
	DetailEtat         string    `json:"detail_etat" binding:"required"`
}
