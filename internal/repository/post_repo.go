package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"postboard/internal/models"
)

type PostSQLite struct {
	db *sql.DB
}

func NewPostSQLite(db *sql.DB) *PostSQLite {
	return &PostSQLite{db: db}
}

var _ Posts = (*PostSQLite)(nil)

const (
	insertPostSQL     = `INSERT INTO posts (title, description, author) VALUES (?, ?, ?)`
	selectAllPostsSQL = `SELECT id, title, description, author FROM posts ORDER BY id`
	selectPostByIDSQL = `SELECT id, title, description, author FROM posts WHERE id = ?`
	deletePostSQL     = `DELETE FROM posts WHERE id = ?`
)

// Create inserts a post and returns its ID.
func (r *PostSQLite) Create(ctx context.Context, title, description, author string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertPostSQL, title, description, author)
	if err != nil {
		return 0, fmt.Errorf("insert post: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for post: %w", err)
	}
	return int(lastID), nil
}

// List returns all posts ordered by id ascending.
func (r *PostSQLite) List(ctx context.Context) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectAllPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer rows.Close()
	return scanPosts(rows)
}

// GetByID fetches a post by id. Returns (nil, nil) if not found.
func (r *PostSQLite) GetByID(ctx context.Context, id int) (*models.Post, error) {
	var p models.Post
	err := r.db.QueryRowContext(ctx, selectPostByIDSQL, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Author)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post id=%d: %w", id, err)
	}
	return &p, nil
}

// UpdateByID updates only the provided fields (nil means "leave as is")
// and reports affected rows. Author is never updatable here.
func (r *PostSQLite) UpdateByID(ctx context.Context, id int, title, description *string) (int64, error) {
	var (
		sets []string
		args []any
	)
	if title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *title)
	}
	if description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *description)
	}
	if len(sets) == 0 {
		return 0, nil
	}
	args = append(args, id)

	q := "UPDATE posts SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, fmt.Errorf("update post id=%d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for post update id=%d: %w", id, err)
	}
	return n, nil
}

// DeleteByID removes a post and reports affected rows.
func (r *PostSQLite) DeleteByID(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deletePostSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete post id=%d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for post delete id=%d: %w", id, err)
	}
	return n, nil
}

// Page returns one pagination window ordered by id descending (newest
// first) plus the total count of the full filtered set.
func (r *PostSQLite) Page(ctx context.Context, f PostFilter) ([]models.Post, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.Author != "" {
		conds = append(conds, "author = ?")
		args = append(args, f.Author)
	}
	if f.Search != "" {
		conds = append(conds, "(title LIKE ? OR description LIKE ?)")
		like := "%" + f.Search + "%"
		args = append(args, like, like)
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	// Total under the same filter, ignoring the window.
	var total int
	countQ := "SELECT COUNT(*) FROM posts" + where
	if err := r.db.QueryRowContext(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	pageQ := "SELECT id, title, description, author FROM posts" + where +
		" ORDER BY id DESC LIMIT ? OFFSET ?"
	pageArgs := append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := r.db.QueryContext(ctx, pageQ, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("select posts page: %w", err)
	}
	defer rows.Close()

	items, err := scanPosts(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	out := make([]models.Post, 0, 16)
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Author); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}
	return out, nil
}
