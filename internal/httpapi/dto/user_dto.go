package dto

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin employe veterinaire"`
}

// UpdateUserRequest carries a partial update: only non-nil fields are
// applied. A new plaintext password is hashed exactly once on the way in.
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin employe veterinaire"`
	Password *string `json:"password"`
}
