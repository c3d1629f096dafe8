package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/masterdu/masterdu-backend/internal/errors"
	"github.com/masterdu/masterdu-backend/internal/middleware"
	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/service"
)

type BlogController struct {
	blogService service.BlogService
}

func NewBlogController(blogService service.BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

// GetPosts returns the blog collection
// GET /api/blog
func (ctrl *BlogController) GetPosts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	posts, err := ctrl.blogService.GetPosts()
	if err != nil {
		log.Error("Failed to load blog posts", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPostBySlug resolves a post by its title slug
// GET /api/blog/slug/:slug
func (ctrl *BlogController) GetPostBySlug(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	post, err := ctrl.blogService.GetPostBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "找不到此文章")
			return
		}
		log.Error("Failed to resolve blog post by slug", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, post)
}

// ReplacePosts replaces the whole blog collection (CMS bulk save)
// POST /api/blog
func (ctrl *BlogController) ReplacePosts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var posts []model.BlogPost
	if err := c.ShouldBindJSON(&posts); err != nil {
		log.Warn("Invalid blog collection payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "文章資料格式不正確")
		return
	}

	if err := ctrl.blogService.SavePosts(posts); err != nil {
		log.Error("Failed to save blog collection", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog posts saved successfully",
		"count":   len(posts),
	})
}

// SavePost creates or updates a single post
// PUT /api/blog/:id
func (ctrl *BlogController) SavePost(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var post model.BlogPost
	if err := c.ShouldBindJSON(&post); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "文章資料格式不正確")
		return
	}
	post.ID = c.Param("id")

	saved, err := ctrl.blogService.SavePost(post)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "請填寫標題及內容")
			return
		}
		log.Error("Failed to save blog post", err, map[string]interface{}{
			"post_id": post.ID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// DeletePost removes a post by id
// DELETE /api/blog/:id
func (ctrl *BlogController) DeletePost(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.blogService.DeletePost(id); err != nil {
		log.Error("Failed to delete blog post", err, map[string]interface{}{
			"post_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCategories returns the blog category list
// GET /api/blog/categories
func (ctrl *BlogController) GetCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	categories, err := ctrl.blogService.GetCategories()
	if err != nil {
		log.Error("Failed to load blog categories", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// ReplaceCategories replaces the category list
// POST /api/blog/categories
func (ctrl *BlogController) ReplaceCategories(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var categories []string
	if err := c.ShouldBindJSON(&categories); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "分類資料格式不正確")
		return
	}

	if err := ctrl.blogService.SaveCategories(categories); err != nil {
		log.Error("Failed to save blog categories", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog categories saved successfully",
		"count":   len(categories),
	})
}

// GetTags returns the blog tag list
// GET /api/blog/tags
func (ctrl *BlogController) GetTags(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	tags, err := ctrl.blogService.GetTags()
	if err != nil {
		log.Error("Failed to load blog tags", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, tags)
}

// ReplaceTags replaces the tag list
// POST /api/blog/tags
func (ctrl *BlogController) ReplaceTags(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var tags []string
	if err := c.ShouldBindJSON(&tags); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "標籤資料格式不正確")
		return
	}

	if err := ctrl.blogService.SaveTags(tags); err != nil {
		log.Error("Failed to save blog tags", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog tags saved successfully",
		"count":   len(tags),
	})
}
