package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/masterdu/masterdu-backend/pkg/logger"
	"github.com/microcosm-cc/bluemonday"
)

var ErrPostNotFound = errors.New("blog post not found")

type BlogService interface {
	GetPosts() ([]model.BlogPost, error)
	SavePosts(posts []model.BlogPost) error
	SavePost(post model.BlogPost) (*model.BlogPost, error)
	DeletePost(id string) error
	GetPostBySlug(slug string) (*model.BlogPost, error)

	GetCategories() ([]string, error)
	SaveCategories(categories []string) error
	GetTags() ([]string, error)
	SaveTags(tags []string) error
}

type blogService struct {
	repo     repository.BlogRepository
	sanitize *bluemonday.Policy
}

func NewBlogService(repo repository.BlogRepository) BlogService {
	return &blogService{
		repo: repo,
		// Post content is CMS-authored rich text rendered as HTML.
		// Sanitizing on save keeps stored documents safe to serve
		// without a read-side filter.
		sanitize: bluemonday.UGCPolicy(),
	}
}

func (s *blogService) GetPosts() ([]model.BlogPost, error) {
	return s.repo.GetAll()
}

func (s *blogService) SavePosts(posts []model.BlogPost) error {
	for i := range posts {
		posts[i].Content = s.sanitize.Sanitize(posts[i].Content)
	}
	return s.repo.SaveAll(posts)
}

func (s *blogService) SavePost(post model.BlogPost) (*model.BlogPost, error) {
	if post.Title == "" || post.Content == "" {
		return nil, ErrMissingFields
	}
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if post.Date == "" {
		post.Date = time.Now().Format("2006-01-02")
	}
	post.Content = s.sanitize.Sanitize(post.Content)

	if err := s.repo.SaveOne(post); err != nil {
		logger.Error("Failed to save blog post", err, map[string]interface{}{
			"post_id": post.ID,
		})
		return nil, err
	}
	logger.Info("Blog post saved", map[string]interface{}{
		"post_id": post.ID,
		"title":   post.Title,
	})
	return &post, nil
}

func (s *blogService) DeletePost(id string) error {
	return s.repo.DeleteOne(id)
}

func (s *blogService) GetPostBySlug(slug string) (*model.BlogPost, error) {
	post, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *blogService) GetCategories() ([]string, error) {
	return s.repo.GetCategories()
}

func (s *blogService) SaveCategories(categories []string) error {
	return s.repo.SaveCategories(categories)
}

func (s *blogService) GetTags() ([]string, error) {
	return s.repo.GetTags()
}

func (s *blogService) SaveTags(tags []string) error {
	return s.repo.SaveTags(tags)
}
