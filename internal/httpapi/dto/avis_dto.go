package dto

type CreateAvisRequest struct {
	Pseudo string `json:"pseudo" binding:"required"`
	Texte  string `json:"texte" binding:"required"`
}

type ModerateAvisRequest struct {
	Statut string `json:"statut" binding:"required"`
}
