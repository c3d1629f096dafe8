package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/masterdu/masterdu-backend/config"
	apperrors "github.com/masterdu/masterdu-backend/internal/errors"
	"github.com/masterdu/masterdu-backend/internal/middleware"
	"github.com/masterdu/masterdu-backend/internal/qrcode"
	"github.com/masterdu/masterdu-backend/internal/service"
)

// PaymentController serves the payment-instructions page for a
// membership application. Payments are settled offline; this only
// shows the transfer targets and placeholder QR codes.
type PaymentController struct {
	membershipService service.MembershipService
	contact           config.ContactConfig
}

func NewPaymentController(membershipService service.MembershipService, contact config.ContactConfig) *PaymentController {
	return &PaymentController{
		membershipService: membershipService,
		contact:           contact,
	}
}

// GetPayment returns the payment instructions for an application
// GET /api/payments/:id
func (ctrl *PaymentController) GetPayment(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")

	details, err := ctrl.membershipService.PaymentDetails(id)
	if err != nil {
		if errors.Is(err, service.ErrMembershipNotFound) {
			apperrors.NotFound(c, apperrors.MembershipNotFound, "找不到此申請")
			return
		}
		if errors.Is(err, service.ErrTierNotFound) {
			apperrors.BadRequest(c, apperrors.MembershipInvalidTier, "此申請的會員計劃已不存在")
			return
		}
		log.Error("Failed to load payment details", err, map[string]interface{}{
			"application_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"application": details.Application,
		"tier":        details.Tier,
		"amount":      details.AmountDisplay,
		"fpsNumber":   ctrl.contact.FPSNumber,
		"paymeLink":   ctrl.contact.PayMeLink,
	})
}

// GetPaymentQR renders the payment QR image for one method
// GET /api/payments/:id/qr/:method
func (ctrl *PaymentController) GetPaymentQR(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	id := c.Param("id")
	method := strings.ToLower(c.Param("method"))

	if method != "fps" && method != "payme" {
		apperrors.BadRequest(c, apperrors.PaymentInvalidMethod, "不支援此付款方式")
		return
	}

	// 404 for unknown applications before rendering anything.
	if _, err := ctrl.membershipService.GetByID(id); err != nil {
		if errors.Is(err, service.ErrMembershipNotFound) {
			apperrors.NotFound(c, apperrors.MembershipNotFound, "找不到此申請")
			return
		}
		log.Error("Failed to load application for QR", err, map[string]interface{}{
			"application_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	payload := qrcode.PaymentPayload(strings.ToUpper(method), id)
	png, err := qrcode.GeneratePNG(payload)
	if err != nil {
		log.Error("Failed to render payment QR", err, map[string]interface{}{
			"application_id": id,
			"method":         method,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
