package repository

import (
	"github.com/masterdu/masterdu-backend/internal/jsonstore"
	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/pkg/util"
)

type BlogRepository interface {
	GetAll() ([]model.BlogPost, error)
	SaveAll(posts []model.BlogPost) error
	SaveOne(post model.BlogPost) error
	DeleteOne(id string) error
	FindByID(id string) (*model.BlogPost, error)
	FindBySlug(slug string) (*model.BlogPost, error)

	GetCategories() ([]string, error)
	SaveCategories(categories []string) error
	GetTags() ([]string, error)
	SaveTags(tags []string) error
}

type blogRepository struct {
	posts      *jsonstore.Collection[model.BlogPost]
	categories *jsonstore.Collection[string]
	tags       *jsonstore.Collection[string]
}

func NewBlogRepository(dataDir string) BlogRepository {
	return &blogRepository{
		posts:      jsonstore.NewCollection[model.BlogPost](dataDir, "blog.json"),
		categories: jsonstore.NewCollection[string](dataDir, "blogCategories.json"),
		tags:       jsonstore.NewCollection[string](dataDir, "blogTags.json"),
	}
}

func (r *blogRepository) GetAll() ([]model.BlogPost, error) {
	return r.posts.Load()
}

func (r *blogRepository) SaveAll(posts []model.BlogPost) error {
	return r.posts.Save(posts)
}

// SaveOne replaces the post with a matching id or appends it, then
// rewrites the whole collection.
func (r *blogRepository) SaveOne(post model.BlogPost) error {
	posts, err := r.posts.Load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range posts {
		if posts[i].ID == post.ID {
			posts[i] = post
			replaced = true
			break
		}
	}
	if !replaced {
		posts = append(posts, post)
	}
	return r.posts.Save(posts)
}

// DeleteOne filters the post out and rewrites the collection. It is
// idempotent: deleting an absent id rewrites the same content.
func (r *blogRepository) DeleteOne(id string) error {
	posts, err := r.posts.Load()
	if err != nil {
		return err
	}
	filtered := posts[:0]
	for _, p := range posts {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	return r.posts.Save(filtered)
}

func (r *blogRepository) FindByID(id string) (*model.BlogPost, error) {
	posts, err := r.posts.Load()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i], nil
		}
	}
	return nil, nil
}

func (r *blogRepository) FindBySlug(slug string) (*model.BlogPost, error) {
	posts, err := r.posts.Load()
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if util.Slugify(posts[i].Title) == slug {
			return &posts[i], nil
		}
	}
	return nil, nil
}

func (r *blogRepository) GetCategories() ([]string, error) {
	return r.categories.Load()
}

func (r *blogRepository) SaveCategories(categories []string) error {
	return r.categories.Save(categories)
}

func (r *blogRepository) GetTags() ([]string, error) {
	return r.tags.Load()
}

func (r *blogRepository) SaveTags(tags []string) error {
	return r.tags.Save(tags)
}
