package models

import "time"

type Animal struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Prenom    string    `json:"prenom" gorm:"not null"`
	Race      string    `json:"race" gorm:"not null"`
	ImageURL  string    `json:"image_url,omitempty"`
	HabitatID uint      `json:"habitat_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Associations
	Habitat  *Habitat             `json:"habitat,omitempty" gorm:"foreignKey:HabitatID"`
	Rapports []RapportVeterinaire `json:"rapports,omitempty" gorm:"foreignKey:AnimalID"`
}

func (Animal) TableName() string {
	return "animals"
}
