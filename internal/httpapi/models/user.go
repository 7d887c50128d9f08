package models

import "time"

// Staff roles. Closed set: a user holds exactly one.
const (
	RoleAdmin       = "admin"
	RoleEmploye     = "employe"
	RoleVeterinaire = "veterinaire"
)

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"column:password;not null"` // bcrypt hash, never serialized
	Role      string    `json:"role" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEmploye, RoleVeterinaire:
		return true
	}
	return false
}
