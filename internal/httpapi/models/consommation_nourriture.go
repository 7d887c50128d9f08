package models

import "time"

// ConsommationNourriture is create-only, recorded by employees.
type ConsommationNourriture struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	AnimalID          uint      `json:"animal_id" gorm:"not null;index"`
	EmployeID         uint      `json:"employe_id" gorm:"not null;index"`
	DateConsommation  time.Time `json:"date_consommation" gorm:"not null"`
	HeureConsommation string    `json:"heure_consommation" gorm:"not null"`
	NourritureDonnee  string    `json:"nourriture_donnee" gorm:"not null"`
	Quantite          int       `json:"quantite" gorm:"not null"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`

	// Associations
	Animal  *Animal `json:"animal,omitempty" gorm:"foreignKey:AnimalID"`
	Employe *User   `json:"employe,omitempty" gorm:"foreignKey:EmployeID"`
}

func (ConsommationNourriture) TableName() string {
	return "consommation_nourritures"
}
