package services

import (
	"errors"

	"gorm.io/gorm"

	"reviewdb/config"
	"reviewdb/models"
	"reviewdb/repositories"
)

type UserService interface {
	CreateUser(req models.CreateUserRequest) (*models.User, error)
	GetUsers(params models.ListParams) ([]models.User, int64, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(username string, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(username string) error
	GetProfile(userID uint) (*models.User, error)
	UpdateProfile(userID uint, req models.UpdateSelfRequest) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
	security *config.SecurityConfig
}

func NewUserService(userRepo repositories.UserRepository, security *config.SecurityConfig) UserService {
	return &userService{userRepo: userRepo, security: security}
}

// CreateUser is the admin path: unlike signup it may set a role directly.
func (s *userService) CreateUser(req models.CreateUserRequest) (*models.User, error) {
	if err := models.ValidateUsername(req.Username, s.security.MaxUsernameLength); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return nil, models.NewValidationError("role", "unknown role")
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Bio:      req.Bio,
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("username", "username or email is already registered")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUsers(params models.ListParams) ([]models.User, int64, error) {
	return s.userRepo.GetList(params)
}

func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(username string, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, models.NewValidationError("role", "unknown role")
		}
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("email", "email is already registered")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(username string) error {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		return err
	}
	return s.userRepo.Delete(user.ID)
}

func (s *userService) GetProfile(userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile is the /users/me path. The role field is ignored for every
// self-edit: a caller cannot change their own access level here, whatever
// the payload says.
func (s *userService) UpdateProfile(userID uint, req models.UpdateSelfRequest) (*models.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewValidationError("email", "email is already registered")
		}
		return nil, err
	}
	return user, nil
}
