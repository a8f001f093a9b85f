package mysql

import (
	"errors"

	"board/internal/model"
	"board/internal/repository"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{DB: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindActiveByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, "id = ? AND deleted = 0", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// ListActive pages active posts newest-first, id as tiebreaker within
// the same second. Uses index (deleted, created_at DESC).
func (r *PostRepository) ListActive(offset, limit int) ([]model.Post, int64, error) {
	var total int64
	if err := r.DB.Model(&model.Post{}).Where("deleted = 0").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Post
	err := r.DB.
		Where("deleted = 0").
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, total, err
}

// UpdateActive guards on deleted = 0 so an update racing a delete can
// never touch an already-deleted row.
func (r *PostRepository) UpdateActive(id uint64, title, content string) (int64, error) {
	tx := r.DB.Model(&model.Post{}).
		Where("id = ? AND deleted = 0", id).
		Updates(map[string]any{"title": title, "content": content})
	return tx.RowsAffected, tx.Error
}

func (r *PostRepository) SoftDelete(id uint64) (int64, error) {
	tx := r.DB.Model(&model.Post{}).
		Where("id = ? AND deleted = 0", id).
		Update("deleted", true)
	return tx.RowsAffected, tx.Error
}

// IncrementViewCount bumps the counter with a SQL expression so
// concurrent detail reads never lose an increment.
func (r *PostRepository) IncrementViewCount(post *model.Post) error {
	err := r.DB.Model(post).
		Where("deleted = 0").
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	if err != nil {
		return err
	}
	post.ViewCount++
	return nil
}

func (r *PostRepository) Transaction(fn func(repository.PostRepository) error) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&PostRepository{DB: tx})
	})
}
