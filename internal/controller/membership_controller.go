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

type MembershipController struct {
	membershipService service.MembershipService
}

func NewMembershipController(membershipService service.MembershipService) *MembershipController {
	return &MembershipController{
		membershipService: membershipService,
	}
}

type ApplyRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`
	DOB   string `json:"dob" binding:"required"`
	Time  string `json:"time"`
	Tier  string `json:"tier" binding:"required"`
}

// GetTiers returns the published membership tier table
// GET /api/tiers
func (ctrl *MembershipController) GetTiers(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.membershipService.Tiers())
}

// Apply submits a membership application form
// POST /api/memberships/apply
func (ctrl *MembershipController) Apply(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid membership application", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "請填妥申請表格")
		return
	}

	app, err := ctrl.membershipService.Apply(req.Name, req.Email, req.Phone, req.DOB, req.Time, req.Tier)
	if err != nil {
		if errors.Is(err, service.ErrTierNotFound) {
			apperrors.BadRequest(c, apperrors.MembershipInvalidTier, "請選擇有效的會員計劃")
			return
		}
		log.Error("Failed to create membership application", err, map[string]interface{}{
			"tier": req.Tier,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, app)
}

// GetApplications returns all applications (CMS)
// GET /api/memberships
func (ctrl *MembershipController) GetApplications(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	apps, err := ctrl.membershipService.GetAll()
	if err != nil {
		log.Error("Failed to load membership applications", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, apps)
}

// ReplaceApplications replaces the whole collection (CMS bulk save)
// POST /api/memberships
func (ctrl *MembershipController) ReplaceApplications(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var apps []model.MembershipApplication
	if err := c.ShouldBindJSON(&apps); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "會員資料格式不正確")
		return
	}

	if err := ctrl.membershipService.SaveAll(apps); err != nil {
		log.Error("Failed to save membership applications", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Memberships saved successfully",
		"count":   len(apps),
	})
}

// GetApplication returns one application by id
// GET /api/memberships/:id
func (ctrl *MembershipController) GetApplication(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	app, err := ctrl.membershipService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrMembershipNotFound) {
			apperrors.NotFound(c, apperrors.MembershipNotFound, "找不到此申請")
			return
		}
		log.Error("Failed to load membership application", err, map[string]interface{}{
			"application_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, app)
}

// SaveApplication updates one application (CMS status changes)
// PUT /api/memberships/:id
func (ctrl *MembershipController) SaveApplication(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var app model.MembershipApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "會員資料格式不正確")
		return
	}
	app.ID = c.Param("id")

	saved, err := ctrl.membershipService.SaveOne(app)
	if err != nil {
		log.Error("Failed to save membership application", err, map[string]interface{}{
			"application_id": app.ID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// DeleteApplication removes one application
// DELETE /api/memberships/:id
func (ctrl *MembershipController) DeleteApplication(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	if err := ctrl.membershipService.Delete(id); err != nil {
		log.Error("Failed to delete membership application", err, map[string]interface{}{
			"application_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
