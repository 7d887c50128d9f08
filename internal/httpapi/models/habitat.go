package models

import "time"

type Habitat struct {
	ID               uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Nom              string    `json:"nom" gorm:"not null"`
	Description      string    `json:"description" gorm:"not null;type:text"`
	Superficie       string    `json:"superficie" gorm:"not null"`
	Temperature      string    `json:"temperature" gorm:"not null"`
	VisiteursParJour int       `json:"visiteurs_par_jour" gorm:"not null"`
	ImageURL         string    `json:"image_url,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`

	// Associations
	Animaux []Animal `json:"animaux" gorm:"foreignKey:HabitatID"`
}

func (Habitat) TableName() string {
	return "habitats"
}
