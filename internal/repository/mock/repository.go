package mock

import (
	"sort"
	"sync"
	"time"

	"board/internal/model"
	"board/internal/repository"
)

// PostRepository is an in-memory repository for tests. Writes get
// strictly increasing timestamps so ordering is deterministic.
type PostRepository struct {
	mu     sync.Mutex
	posts  map[uint64]*model.Post
	nextID uint64
	base   time.Time
	seq    int64
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[uint64]*model.Post),
		nextID: 1,
		base:   time.Now(),
	}
}

func (m *PostRepository) tick() time.Time {
	m.seq++
	return m.base.Add(time.Duration(m.seq) * time.Second)
}

func (m *PostRepository) Create(post *model.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	post.ID = m.nextID
	m.nextID++
	post.CreatedAt = m.tick()
	post.UpdatedAt = post.CreatedAt

	stored := *post
	m.posts[post.ID] = &stored
	return nil
}

func (m *PostRepository) FindActiveByID(id uint64) (*model.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.posts[id]
	if !ok || stored.Deleted {
		return nil, repository.ErrPostNotFound
	}
	post := *stored
	return &post, nil
}

func (m *PostRepository) ListActive(offset, limit int) ([]model.Post, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var active []model.Post
	for _, p := range m.posts {
		if !p.Deleted {
			active = append(active, *p)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		if !active[i].CreatedAt.Equal(active[j].CreatedAt) {
			return active[i].CreatedAt.After(active[j].CreatedAt)
		}
		return active[i].ID > active[j].ID
	})

	total := int64(len(active))
	if offset >= len(active) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(active) {
		end = len(active)
	}
	return active[offset:end], total, nil
}

func (m *PostRepository) UpdateActive(id uint64, title, content string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.posts[id]
	if !ok || stored.Deleted {
		return 0, nil
	}
	stored.Title = title
	stored.Content = content
	stored.UpdatedAt = m.tick()
	return 1, nil
}

func (m *PostRepository) SoftDelete(id uint64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.posts[id]
	if !ok || stored.Deleted {
		return 0, nil
	}
	stored.Deleted = true
	return 1, nil
}

func (m *PostRepository) IncrementViewCount(post *model.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.posts[post.ID]
	if !ok || stored.Deleted {
		return repository.ErrPostNotFound
	}
	stored.ViewCount++
	post.ViewCount = stored.ViewCount
	return nil
}

func (m *PostRepository) Transaction(fn func(repository.PostRepository) error) error {
	return fn(m)
}
