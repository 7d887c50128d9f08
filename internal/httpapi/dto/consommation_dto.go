package dto

import "time"

type CreateConsommationRequest struct {
	AnimalID          uint      `json:"animal_id" binding:"required"`
	DateConsommation  time.Time `json:"date_consommation" binding:"required"`
	HeureConsommation string    `json:"heure_consommation" binding:"required"`
	NourritureDonnee  string    `json:"nourriture_donnee" binding:"required"`
	Quantite          int       `json:"quantite" binding:"required"`
}
