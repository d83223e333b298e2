package service

import (
	"context"
	"errors"
	"strings"

	"postboard/internal/models"
	"postboard/internal/repository"
)

// Pagination defaults for windowed listings.
const (
	defaultPage  = 1
	defaultLimit = 10
)

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrNotPostOwner   = errors.New("caller is not the post author")
	ErrEmptyPostField = errors.New("title and description are required")
	ErrEmptyPatch     = errors.New("at least one of title or description must be set")
)

// PostService owns content CRUD and the ownership gate in front of
// mutations. Ownership is exact string equality between the post's
// author snapshot and the caller's current username.
type PostService struct {
	posts repository.Posts
}

func NewPostService(posts repository.Posts) *PostService {
	return &PostService{posts: posts}
}

// Create stores a post authored by the caller. The author is always the
// authenticated username; callers cannot choose it.
func (s *PostService) Create(ctx context.Context, author, title, description string) (models.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return models.Post{}, ErrEmptyPostField
	}
	id, err := s.posts.Create(ctx, title, description, author)
	if err != nil {
		return models.Post{}, err
	}
	return models.Post{ID: id, Title: title, Description: description, Author: author}, nil
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.List(ctx)
}

func (s *PostService) GetByID(ctx context.Context, id int) (models.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if p == nil {
		return models.Post{}, ErrPostNotFound
	}
	return *p, nil
}

// PageOf returns one pagination window, newest first, with the total
// count under the same filter. Page and limit default to 1 and 10.
func (s *PostService) PageOf(ctx context.Context, q PostQuery) (models.PostPage, error) {
	if q.Page < 1 {
		q.Page = defaultPage
	}
	if q.Limit < 1 {
		q.Limit = defaultLimit
	}

	items, total, err := s.posts.Page(ctx, repository.PostFilter{
		Page:   q.Page,
		Limit:  q.Limit,
		Author: q.Author,
		Search: q.Search,
	})
	if err != nil {
		return models.PostPage{}, err
	}
	return models.PostPage{Items: items, Page: q.Page, Limit: q.Limit, Total: total}, nil
}

// Update mutates title and/or description of the caller's own post and
// reports affected rows. Load-then-check: missing post → ErrPostNotFound,
// author mismatch → ErrNotPostOwner. The author column is never changed.
func (s *PostService) Update(ctx context.Context, caller string, id int, patch PostPatch) (int64, error) {
	if patch.Title == nil && patch.Description == nil {
		return 0, ErrEmptyPatch
	}
	if err := s.requireOwner(ctx, caller, id); err != nil {
		return 0, err
	}
	return s.posts.UpdateByID(ctx, id, patch.Title, patch.Description)
}

// Delete removes the caller's own post and reports affected rows.
func (s *PostService) Delete(ctx context.Context, caller string, id int) (int64, error) {
	if err := s.requireOwner(ctx, caller, id); err != nil {
		return 0, err
	}
	return s.posts.DeleteByID(ctx, id)
}

// requireOwner loads the target post and gates the mutation. There is no
// transaction around check-then-act; with the single-writer SQLite pool
// this is benign, but it is a known race if the store ever scales out.
func (s *PostService) requireOwner(ctx context.Context, caller string, id int) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	if p.Author != caller {
		return ErrNotPostOwner
	}
	return nil
}
