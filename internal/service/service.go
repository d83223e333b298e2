package service

import (
	"context"

	"postboard/internal/models"
	"postboard/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
	Identify(ctx context.Context, userID int) (*models.Identity, error)
}

// Profile exposes account operations beyond sign-up/sign-in.
type Profile interface {
	List(ctx context.Context) ([]models.PublicUser, error)
	GetByID(ctx context.Context, id int) (*models.PublicUser, error)
	Rename(ctx context.Context, id int, username string) error
	ChangePassword(ctx context.Context, id int, oldPassword, newPassword string) error
}

// PostPatch carries optional post fields; nil means "leave unchanged".
type PostPatch struct {
	Title       *string
	Description *string
}

// PostQuery narrows and windows post listings.
type PostQuery struct {
	Page   int
	Limit  int
	Author string
	Search string
}

// Posts exposes content CRUD. Update and Delete enforce ownership:
// only the caller whose username equals the post's author may mutate it.
type Posts interface {
	Create(ctx context.Context, author, title, description string) (models.Post, error)
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int) (models.Post, error)
	PageOf(ctx context.Context, q PostQuery) (models.PostPage, error)
	Update(ctx context.Context, caller string, id int, patch PostPatch) (int64, error)
	Delete(ctx context.Context, caller string, id int) (int64, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Profile
	Posts
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, auth AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, auth),
		Profile:       NewProfileService(repos.Users),
		Posts:         NewPostService(repos.Posts),
	}
}
