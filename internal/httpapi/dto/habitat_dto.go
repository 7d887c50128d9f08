package dto

type CreateHabitatRequest struct {
	Nom              string `json:"nom" binding:"required"`
	Description      string `json:"description" binding:"required"`
	Superficie       string `json:"superficie" binding:"required"`
	Temperature      string `json:"temperature" binding:"required"`
	VisiteursParJour int    `json:"visiteurs_par_jour" binding:"required"`
	ImageURL         string `json:"image_url"`
}

type UpdateHabitatRequest struct {
	Nom              *string `json:"nom"`
	Description      *string `json:"description"`
	Superficie       *string `json:"superficie"`
	Temperature      *string `json:"temperature"`
	VisiteursParJour *int    `json:"visiteurs_par_jour"`
	ImageURL         *string `json:"image_url"`
}

type CreateCommentaireRequest struct {
	Commentaire   string `json:"commentaire" binding:"required"`
	StatutHabitat string `json:"statut_habitat"`
}
