package dto

type CreateAnimalRequest struct {
	Prenom    string `json:"prenom" binding:"required"`
	Race      string `json:"race" binding:"required"`
	HabitatID uint   `json:"habitat_id" binding:"required"`
	ImageURL  string `json:"image_url"`
}

type UpdateAnimalRequest struct {
	Prenom    *string `json:"prenom"`
	Race      *string `json:"race"`
	HabitatID *uint   `json:"habitat_id"`
	ImageURL  *string `json:"image_url"`
}
