package service

import (
	"errors"

	"zooarcadia/internal/httpapi/auth"
	"zooarcadia/internal/httpapi/dto"
	"zooarcadia/internal/httpapi/models"
	"zooarcadia/internal/httpapi/repository"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound = errors.New("utilisateur introuvable")
	ErrEmailInUse   = errors.New("email déjà utilisé")
	ErrSelfDelete   = errors.New("vous ne pouvez pas supprimer votre propre compte")
	ErrInvalidRole  = errors.New("rôle invalide")
)

type UserService interface {
	Create(email, password, role string) (*models.User, error)
	List() ([]models.User, error)
	Update(id uint, req dto.UpdateUserRequest) (*models.User, error)
	// Delete removes a user. callerID is the authenticated admin; an
	// admin may not delete their own account.
	Delete(id, callerID uint) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Create hashes the plaintext password exactly once and stores the user.
func (s *userService) Create(email, password, role string) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailInUse
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    email,
		Password: hashed,
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) List() ([]models.User, error) {
	return s.userRepo.List()
}

func (s *userService) Update(id uint, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		user.Role = *req.Role
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(id, callerID uint) (*models.User, error) {
	if id == callerID {
		return nil, ErrSelfDelete
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.userRepo.Delete(user); err != nil {
		return nil, err
	}
	return user, nil
}
