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

// CatalogController serves the ritual-service and course collections.
type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetServices returns the ritual-service collection
// GET /api/services
func (ctrl *CatalogController) GetServices(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	items, err := ctrl.catalogService.ListServices()
	if err != nil {
		log.Error("Failed to load services", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, items)
}

// ReplaceServices replaces the whole service collection (CMS bulk save)
// POST /api/services
func (ctrl *CatalogController) ReplaceServices(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var items []model.ServiceItem
	if err := c.ShouldBindJSON(&items); err != nil {
		log.Warn("Invalid service collection payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "服務資料格式不正確")
		return
	}

	if err := ctrl.catalogService.SaveServices(items); err != nil {
		log.Error("Failed to save service collection", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Services saved successfully",
		"count":   len(items),
	})
}

// SaveService creates or updates a single service
// PUT /api/services/:id
func (ctrl *CatalogController) SaveService(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var item model.ServiceItem
	if err := c.ShouldBindJSON(&item); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "服務資料格式不正確")
		return
	}
	item.ID = c.Param("id")

	saved, err := ctrl.catalogService.SaveService(item)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "請填寫名稱及介紹")
			return
		}
		log.Error("Failed to save service", err, map[string]interface{}{
			"service_id": item.ID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// DeleteService removes a service by id
// DELETE /api/services/:id
func (ctrl *CatalogController) DeleteService(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.catalogService.DeleteService(id); err != nil {
		log.Error("Failed to delete service", err, map[string]interface{}{
			"service_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetCourses returns the course collection
// GET /api/courses
func (ctrl *CatalogController) GetCourses(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	items, err := ctrl.catalogService.ListCourses()
	if err != nil {
		log.Error("Failed to load courses", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, items)
}

// ReplaceCourses replaces the whole course collection (CMS bulk save)
// POST /api/courses
func (ctrl *CatalogController) ReplaceCourses(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var items []model.CourseItem
	if err := c.ShouldBindJSON(&items); err != nil {
		log.Warn("Invalid course collection payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "課程資料格式不正確")
		return
	}

	if err := ctrl.catalogService.SaveCourses(items); err != nil {
		log.Error("Failed to save course collection", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Courses saved successfully",
		"count":   len(items),
	})
}

// SaveCourse creates or updates a single course
// PUT /api/courses/:id
func (ctrl *CatalogController) SaveCourse(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var item model.CourseItem
	if err := c.ShouldBindJSON(&item); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "課程資料格式不正確")
		return
	}
	item.ID = c.Param("id")

	saved, err := ctrl.catalogService.SaveCourse(item)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			apperrors.BadRequest(c, apperrors.ValidationRequired, "請填寫名稱及介紹")
			return
		}
		log.Error("Failed to save course", err, map[string]interface{}{
			"course_id": item.ID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// DeleteCourse removes a course by id
// DELETE /api/courses/:id
func (ctrl *CatalogController) DeleteCourse(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.catalogService.DeleteCourse(id); err != nil {
		log.Error("Failed to delete course", err, map[string]interface{}{
			"course_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
