package models

import "time"

type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Nom         string    `json:"nom" gorm:"not null"`
	Description string    `json:"description" gorm:"not null;type:text"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Service) TableName() string {
	return "services"
}
