package storage

import (
	"context"
	"fmt"

	"github.com/wurt83ow/maintracker/internal/models"
	"github.com/wurt83ow/maintracker/internal/normalize"
	"go.uber.org/zap"
)

func (s *Storage) loadUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.keeper.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}

	for i := range users {
		users[i].Username = normalize.Username(users[i].Username)
		users[i].Role = normalize.Role(users[i].Role)
	}

	return users, nil
}

// Users returns every account.
func (s *Storage) Users(ctx context.Context) ([]models.User, error) {
	s.umx.Lock()
	defer s.umx.Unlock()

	return s.loadUsers(ctx)
}

// GetUser looks an account up by case-insensitive username.
func (s *Storage) GetUser(ctx context.Context, username string) (models.User, error) {
	users, err := s.Users(ctx)
	if err != nil {
		return models.User{}, err
	}

	name := normalize.Username(username)
	for _, u := range users {
		if u.Username == name {
			return u, nil
		}
	}

	return models.User{}, ErrNotFound
}

// Authenticate returns the account whose username and password both match.
// Passwords are stored and compared verbatim.
func (s *Storage) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.GetUser(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	if u.Password != password {
		return models.User{}, ErrNotFound
	}

	return u, nil
}

// CreateUser adds an account. Usernames are unique regardless of case.
func (s *Storage) CreateUser(ctx context.Context, username, password, role string) (models.User, error) {
	u := models.User{
		Username: normalize.Username(username),
		Password: password,
		Role:     normalize.Role(role),
	}

	var missing []string
	if u.Username == "" {
		missing = append(missing, "username")
	}

	if u.Password == "" {
		missing = append(missing, "password")
	}

	if u.Role == "" {
		missing = append(missing, "role")
	}

	if len(missing) > 0 {
		return models.User{}, &models.ValidationError{Fields: missing}
	}

	s.umx.Lock()
	defer s.umx.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return models.User{}, err
	}

	for _, existing := range users {
		if existing.Username == u.Username {
			return models.User{}, ErrConflict
		}
	}

	if err := s.keeper.SaveUsers(ctx, append(users, u)); err != nil {
		return models.User{}, fmt.Errorf("failed to save users: %w", err)
	}

	s.log.Info("user created", zap.String("username", u.Username), zap.String("role", u.Role))

	return u, nil
}

// DeleteUser removes an account. The admin account cannot be removed.
func (s *Storage) DeleteUser(ctx context.Context, username string) error {
	name := normalize.Username(username)
	if name == models.RoleAdmin {
		return ErrProtected
	}

	s.umx.Lock()
	defer s.umx.Unlock()

	users, err := s.loadUsers(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.User, 0, len(users))
	for _, u := range users {
		if u.Username != name {
			kept = append(kept, u)
		}
	}

	if len(kept) == len(users) {
		return ErrNotFound
	}

	if err := s.keeper.SaveUsers(ctx, kept); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}

	s.log.Info("user deleted", zap.String("username", name))

	return nil
}

// EnsureAdmin seeds the admin account when the user store is empty.
func (s *Storage) EnsureAdmin(ctx context.Context, password string) error {
	users, err := s.Users(ctx)
	if err != nil {
		return err
	}

	if len(users) > 0 || password == "" {
		return nil
	}

	_, err = s.CreateUser(ctx, models.RoleAdmin, password, models.RoleAdmin)

	return err
}
