package repository

import (
	"errors"

	"board/internal/model"
)

// ErrPostNotFound is returned when a post does not exist or is soft-deleted.
var ErrPostNotFound = errors.New("post not found")

// PostRepository is the persistence gateway for posts. "Active" means
// deleted = false; soft-deleted rows are invisible through it.
type PostRepository interface {
	Create(post *model.Post) error
	FindActiveByID(id uint64) (*model.Post, error)
	ListActive(offset, limit int) ([]model.Post, int64, error)
	// UpdateActive and SoftDelete report rows affected; 0 means the
	// post vanished (or was deleted) since it was fetched.
	UpdateActive(id uint64, title, content string) (int64, error)
	SoftDelete(id uint64) (int64, error)
	IncrementViewCount(post *model.Post) error
	// Transaction runs fn against a repository bound to a single
	// transaction, committing on nil and rolling back on error.
	Transaction(fn func(PostRepository) error) error
}
