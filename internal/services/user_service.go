package services

import (
	"errors"

	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// UserService is the candidate-profile collaborator. The scoring engine only
// ever reads profiles; writes come through here.
type UserService interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUser(id string) (*models.User, error)
	UpdateUser(user *models.User) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(user *models.User) (*models.User, error) {
	if user.Email == "" {
		return nil, apperrors.NewBadRequestError("Email is required")
	}

	// Lists are stored as empty arrays, never NULL.
	if user.Skills == nil {
		user.Skills = []string{}
	}
	if user.PreferredLocations == nil {
		user.PreferredLocations = []string{}
	}

	err := s.userRepo.Create(user)
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.New(apperrors.CodeAlreadyExists, "candidate", "A candidate with this email already exists", 409)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrCandidateNotFound()
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(user *models.User) (*models.User, error) {
	if _, err := s.GetUser(user.ID); err != nil {
		return nil, err
	}
	if user.Skills == nil {
		user.Skills = []string{}
	}
	if user.PreferredLocations == nil {
		user.PreferredLocations = []string{}
	}
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
