package service

import (
	"testing"

	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlogService(t *testing.T) BlogService {
	return NewBlogService(repository.NewBlogRepository(t.TempDir()))
}

func TestBlogService_SavePost(t *testing.T) {
	svc := newTestBlogService(t)

	post, err := svc.SavePost(model.BlogPost{
		Title:   "風水入門指南",
		Content: "<p>正文</p>",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.NotEmpty(t, post.Date)

	posts, err := svc.GetPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "風水入門指南", posts[0].Title)
}

func TestBlogService_SavePost_MissingFields(t *testing.T) {
	svc := newTestBlogService(t)

	_, err := svc.SavePost(model.BlogPost{Title: "無內容"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.SavePost(model.BlogPost{Content: "無標題"})
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestBlogService_SavePost_SanitizesContent(t *testing.T) {
	svc := newTestBlogService(t)

	post, err := svc.SavePost(model.BlogPost{
		Title:   "測試",
		Content: `<p>安全內容</p><script>alert("x")</script>`,
	})
	require.NoError(t, err)

	assert.Contains(t, post.Content, "<p>安全內容</p>")
	assert.NotContains(t, post.Content, "<script>")
}

func TestBlogService_SavePosts_SanitizesContent(t *testing.T) {
	svc := newTestBlogService(t)

	err := svc.SavePosts([]model.BlogPost{
		{ID: "1", Title: "a", Content: `<img src=x onerror=alert(1)>text`},
	})
	require.NoError(t, err)

	posts, err := svc.GetPosts()
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.NotContains(t, posts[0].Content, "onerror")
}

func TestBlogService_GetPostBySlug(t *testing.T) {
	svc := newTestBlogService(t)

	saved, err := svc.SavePost(model.BlogPost{
		Title:   "Feng Shui Basics",
		Content: "<p>正文</p>",
	})
	require.NoError(t, err)

	post, err := svc.GetPostBySlug("feng-shui-basics")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, post.ID)

	_, err = svc.GetPostBySlug("missing-post")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestBlogService_DeletePost(t *testing.T) {
	svc := newTestBlogService(t)

	saved, err := svc.SavePost(model.BlogPost{Title: "a", Content: "b"})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(saved.ID))

	posts, err := svc.GetPosts()
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestBlogService_CategoriesAndTags(t *testing.T) {
	svc := newTestBlogService(t)

	require.NoError(t, svc.SaveCategories([]string{"風水", "塔羅"}))
	require.NoError(t, svc.SaveTags([]string{"運程", "開運"}))

	categories, err := svc.GetCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"風水", "塔羅"}, categories)

	tags, err := svc.GetTags()
	require.NoError(t, err)
	assert.Equal(t, []string{"運程", "開運"}, tags)
}
