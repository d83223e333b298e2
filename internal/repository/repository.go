package repository

import (
	"context"
	"database/sql"

	"postboard/internal/models"
	"postboard/internal/repository/db"
)

// Users is the identity store contract.
type Users interface {
	Create(ctx context.Context, username, passwordHash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateUsername(ctx context.Context, id int, username string) (int64, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) (int64, error)
}

// PostFilter narrows Page results. Zero values mean "no filter";
// Page/Limit are defaulted by the caller.
type PostFilter struct {
	Page   int
	Limit  int
	Author string
	Search string
}

// Posts is the content store contract. Write operations report affected
// rows; zero affected rows is a valid outcome, not an error.
type Posts interface {
	Create(ctx context.Context, title, description, author string) (int, error)
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int) (*models.Post, error)
	UpdateByID(ctx context.Context, id int, title, description *string) (int64, error)
	DeleteByID(ctx context.Context, id int) (int64, error)
	Page(ctx context.Context, f PostFilter) ([]models.Post, int, error)
}

type Repository struct {
	Users Users
	Posts Posts
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(sqlDB),
		Posts: NewPostSQLite(sqlDB),
	}
}

// InitDB opens the SQLite file and ensures the schema exists.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
