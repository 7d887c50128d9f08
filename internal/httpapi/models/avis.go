package models

import "time"

// Review moderation states. A fresh Avis starts en_attente; staff may
// re-set the status freely afterwards, there is no terminal lock.
const (
	AvisEnAttente = "en_attente"
	AvisApprouve  = "approuve"
	AvisRejete    = "rejete"
)

type Avis struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Pseudo    string    `json:"pseudo" gorm:"not null"`
	Texte     string    `json:"texte" gorm:"not null;type:text"`
	Statut    string    `json:"statut" gorm:"not null;default:'en_attente'"`
	EmployeID *uint     `json:"employe_id" gorm:"index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Moderator, set when the status leaves en_attente
	Employe *User `json:"employe,omitempty" gorm:"foreignKey:EmployeID"`
}

func (Avis) TableName() string {
	return "avis"
}

// ValidAvisStatut reports whether statut belongs to the closed status set.
func ValidAvisStatut(statut string) bool {
	switch statut {
	case AvisEnAttente, AvisApprouve, AvisRejete:
		return true
	}
	return false
}
