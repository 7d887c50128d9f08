package dto

type ContactRequest struct {
	Titre       string `json:"titre" binding:"required"`
	Description string `json:"description" binding:"required"`
	Email       string `json:"email" binding:"omitempty,email"`
}
