package service

import (
	"errors"
	"time"

	"board/internal/model"
	"board/internal/pkg"
	"board/internal/repository"
)

// PostListItem is the list projection: content omitted, password never
// leaves the service layer.
type PostListItem struct {
	ID        uint64    `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	ViewCount int       `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
}

// PostDetail is the single-post projection.
type PostDetail struct {
	ID        uint64    `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ViewCount int       `json:"view_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PostPage struct {
	Posts []PostListItem `json:"posts"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Total int64          `json:"total"`
}

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type PostService struct {
	repo   repository.PostRepository
	hasher pkg.PasswordHasher
}

func NewPostService(repo repository.PostRepository, hasher pkg.PasswordHasher) *PostService {
	return &PostService{repo: repo, hasher: hasher}
}

func (s *PostService) ListPosts(page, size int) (*PostPage, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > maxPageSize {
		size = defaultPageSize
	}

	offset := (page - 1) * size
	list, total, err := s.repo.ListActive(offset, size)
	if err != nil {
		return nil, err
	}

	items := make([]PostListItem, 0, len(list))
	for i := range list {
		items = append(items, listItemFrom(&list[i]))
	}
	return &PostPage{Posts: items, Page: page, Size: size, Total: total}, nil
}

// GetPost fetches a post and counts the view. The increment runs in
// the same transaction as the read so concurrent fetches don't lose
// updates.
func (s *PostService) GetPost(id uint64) (*PostDetail, error) {
	var detail *PostDetail
	err := s.repo.Transaction(func(r repository.PostRepository) error {
		post, err := fetchActive(r, id)
		if err != nil {
			return err
		}
		if err := r.IncrementViewCount(post); err != nil {
			return err
		}
		detail = detailFrom(post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *PostService) CreatePost(author, password, title, content string) (*PostDetail, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		Author:   author,
		Password: hash,
		Title:    title,
		Content:  content,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return detailFrom(post), nil
}

// UpdatePost rewrites title and content after the password gate.
// Author, password and view count are untouched.
func (s *PostService) UpdatePost(id uint64, password, title, content string) (*PostDetail, error) {
	var detail *PostDetail
	err := s.repo.Transaction(func(r repository.PostRepository) error {
		post, err := fetchActive(r, id)
		if err != nil {
			return err
		}
		if s.hasher.Compare(post.Password, password) != nil {
			return pkg.ErrPasswordMismatch
		}

		affected, err := r.UpdateActive(id, title, content)
		if err != nil {
			return err
		}
		if affected == 0 {
			return pkg.ErrPostNotFound
		}

		// reload for the store-maintained updated_at
		post, err = fetchActive(r, id)
		if err != nil {
			return err
		}
		detail = detailFrom(post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// DeletePost flips the soft-delete flag after the password gate. There
// is no undelete.
func (s *PostService) DeletePost(id uint64, password string) error {
	return s.repo.Transaction(func(r repository.PostRepository) error {
		post, err := fetchActive(r, id)
		if err != nil {
			return err
		}
		if s.hasher.Compare(post.Password, password) != nil {
			return pkg.ErrPasswordMismatch
		}

		affected, err := r.SoftDelete(id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return pkg.ErrPostNotFound
		}
		return nil
	})
}

func fetchActive(r repository.PostRepository, id uint64) (*model.Post, error) {
	post, err := r.FindActiveByID(id)
	if errors.Is(err, repository.ErrPostNotFound) {
		return nil, pkg.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func listItemFrom(p *model.Post) PostListItem {
	return PostListItem{
		ID:        p.ID,
		Author:    p.Author,
		Title:     p.Title,
		ViewCount: p.ViewCount,
		CreatedAt: p.CreatedAt,
	}
}

func detailFrom(p *model.Post) *PostDetail {
	return &PostDetail{
		ID:        p.ID,
		Author:    p.Author,
		Title:     p.Title,
		Content:   p.Content,
		ViewCount: p.ViewCount,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
