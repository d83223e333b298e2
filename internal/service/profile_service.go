package service

import (
	"context"

	"postboard/internal/models"
	"postboard/internal/repository"
)

// ProfileService handles account reads and self-service updates.
type ProfileService struct {
	users repository.Users
}

func NewProfileService(users repository.Users) *ProfileService {
	return &ProfileService{users: users}
}

// List returns all users stripped of credentials.
func (s *ProfileService) List(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

// GetByID returns one public profile or ErrUserNotFound.
func (s *ProfileService) GetByID(ctx context.Context, id int) (*models.PublicUser, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	pub := u.Public()
	return &pub, nil
}

// Rename changes the caller's username. The new name must not be held by
// a different account. Existing posts keep the author snapshot they were
// created with; they are not rewritten here.
func (s *ProfileService) Rename(ctx context.Context, id int, username string) error {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != id {
		return ErrUsernameTaken
	}

	_, err = s.users.UpdateUsername(ctx, id, username)
	return err
}

// ChangePassword verifies the old password against the stored hash and
// replaces it with a hash of the new one.
func (s *ProfileService) ChangePassword(ctx context.Context, id int, oldPassword, newPassword string) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	if err := verifyPassword(u.PasswordHash, oldPassword); err != nil {
		return ErrInvalidPassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	_, err = s.users.UpdatePassword(ctx, id, hash)
	return err
}
