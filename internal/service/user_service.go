package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dinehub/internal/model"
	"dinehub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Create adds a user.
func (s *userService) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user.ID = uuid.New().String()
	user.IsActive = true
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.Role == "" {
		user.Role = model.RoleUser
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user created")
	return user, nil
}

// Update replaces an existing user, preserving identity and creation time.
func (s *userService) Update(ctx context.Context, id string, user *model.User) (*model.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ID = existing.ID
	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now().UTC()
	if user.Role == "" {
		user.Role = existing.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetByID retrieves a single user.
func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, model.ErrUserNotFound
	}
	return s.userRepo.GetByID(ctx, id)
}

// List retrieves all users.
func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Delete removes a user.
func (s *userService) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}

func validateUser(user *model.User) error {
	if user == nil {
		return fmt.Errorf("user is nil")
	}
	if user.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if !strings.Contains(user.Email, "@") {
		return fmt.Errorf("valid email is required")
	}
	if user.Phone == "" {
		return fmt.Errorf("user phone is required")
	}
	if user.Role != "" && !model.ValidRole(user.Role) {
		return fmt.Errorf("invalid role: %s", user.Role)
	}
	return nil
}
