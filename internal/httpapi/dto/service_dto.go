package dto

type CreateServiceRequest struct {
	Nom         string `json:"nom" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateServiceRequest struct {
	Nom         *string `json:"nom"`
	Description *string `json:"description"`
}
