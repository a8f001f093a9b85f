package service

import (
	"testing"

	"board/internal/pkg"
	"board/internal/repository/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService() (*PostService, *mock.PostRepository) {
	repo := mock.NewPostRepository()
	svc := NewPostService(repo, &pkg.BcryptHasher{Cost: bcrypt.MinCost})
	return svc, repo
}

func TestCreatePost(t *testing.T) {
	svc, repo := newTestService()

	detail, err := svc.CreatePost("alice", "pass1", "Hello", "World")
	require.NoError(t, err)

	assert.Equal(t, uint64(1), detail.ID)
	assert.Equal(t, "alice", detail.Author)
	assert.Equal(t, "Hello", detail.Title)
	assert.Equal(t, "World", detail.Content)
	assert.Equal(t, 0, detail.ViewCount)

	// the stored password is a hash, never the raw secret
	stored, err := repo.FindActiveByID(detail.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "pass1", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestGetPostIncrementsViewCount(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreatePost("alice", "pass1", "Hello", "World")
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		detail, err := svc.GetPost(created.ID)
		require.NoError(t, err)
		assert.Equal(t, i, detail.ViewCount)
	}
}

func TestGetPostNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetPost(42)
	assert.ErrorIs(t, err, pkg.ErrPostNotFound)
}

func TestUpdatePost(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreatePost("alice", "pass1", "Hello", "World")
	require.NoError(t, err)

	// bump the view count so we can see update leaves it alone
	_, err = svc.GetPost(created.ID)
	require.NoError(t, err)

	updated, err := svc.UpdatePost(created.ID, "pass1", "Hi", "There")
	require.NoError(t, err)
	assert.Equal(t, "Hi", updated.Title)
	assert.Equal(t, "There", updated.Content)
	assert.Equal(t, "alice", updated.Author)
	assert.Equal(t, 1, updated.ViewCount)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestUpdatePostWrongPassword(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.CreatePost("alice", "pass1", "Hello", "World")
	require.NoError(t, err)

	_, err = svc.UpdatePost(created.ID, "wrong", "Hi", "There")
	assert.ErrorIs(t, err, pkg.ErrPasswordMismatch)

	// nothing changed
	stored, err := repo.FindActiveByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", stored.Title)
	assert.Equal(t, "World", stored.Content)
}

func TestUpdatePostNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdatePost(42, "pass1", "Hi", "There")
	assert.ErrorIs(t, err, pkg.ErrPostNotFound)
}

func TestDeletePost(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreatePost("alice", "pass1", "Hello", "World")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(created.ID, "pass1"))

	// permanently unreachable
	_, err = svc.GetPost(created.ID)
	assert.ErrorIs(t, err, pkg.ErrPostNotFound)

	page, err := svc.ListPosts(1, 10)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.Zero(t, page.Total)

	// a second delete reports not found, even with the right password
	err = svc.DeletePost(created.ID, "pass1")
	assert.ErrorIs(t, err, pkg.ErrPostNotFound)
}

func TestDeletePostWrongPassword(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreatePost("alice", "pass1", "Hello", "World")
	require.NoError(t, err)

	err = svc.DeletePost(created.ID, "wrong")
	assert.ErrorIs(t, err, pkg.ErrPasswordMismatch)

	// still visible
	detail, err := svc.GetPost(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", detail.Title)
}

func TestUpdateDoesNotTouchViewCount(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.CreatePost("alice", "pass1", "Hello", "World")
	require.NoError(t, err)
	_, err = svc.GetPost(created.ID)
	require.NoError(t, err)

	_, err = svc.UpdatePost(created.ID, "pass1", "Hi", "There")
	require.NoError(t, err)

	stored, err := repo.FindActiveByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.ViewCount)
}

func TestListPostsNewestFirst(t *testing.T) {
	svc, _ := newTestService()

	for _, title := range []string{"first", "second", "third"} {
		_, err := svc.CreatePost("alice", "pass1", title, "content")
		require.NoError(t, err)
	}

	page, err := svc.ListPosts(1, 10)
	require.NoError(t, err)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, "third", page.Posts[0].Title)
	assert.Equal(t, "second", page.Posts[1].Title)
	assert.Equal(t, "first", page.Posts[2].Title)
	assert.Equal(t, int64(3), page.Total)
}

func TestListPostsExcludesDeleted(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.CreatePost("alice", "pass1", "keep", "content")
	require.NoError(t, err)
	second, err := svc.CreatePost("bob", "pass2", "drop", "content")
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(second.ID, "pass2"))

	page, err := svc.ListPosts(1, 10)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, first.ID, page.Posts[0].ID)
	assert.Equal(t, int64(1), page.Total)
}

func TestListPostsPaging(t *testing.T) {
	svc, _ := newTestService()

	for i := 0; i < 5; i++ {
		_, err := svc.CreatePost("alice", "pass1", "title", "content")
		require.NoError(t, err)
	}

	page, err := svc.ListPosts(2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 2)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, int64(5), page.Total)

	// out-of-range pages and sizes fall back to defaults
	page, err = svc.ListPosts(0, 500)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Size)
	assert.Len(t, page.Posts, 5)
}
