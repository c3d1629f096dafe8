package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/masterdu/masterdu-backend/internal/errors"
	"github.com/masterdu/masterdu-backend/internal/middleware"
	"github.com/masterdu/masterdu-backend/internal/model"
	"github.com/masterdu/masterdu-backend/internal/service"
)

// SessionHeader carries the anonymous cart session id. The server
// mints one on first contact and echoes it on every cart response.
const SessionHeader = "X-Cart-Session"

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	ID       string             `json:"id" binding:"required"`
	Name     string             `json:"name" binding:"required"`
	Price    float64            `json:"price"`
	Quantity int                `json:"quantity"`
	Type     model.CartItemType `json:"type" binding:"required"`
}

func (ctrl *CartController) session(c *gin.Context) string {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	c.Header(SessionHeader, sessionID)
	return sessionID
}

func (ctrl *CartController) cartResponse(sessionID string) gin.H {
	items, drawerOpen := ctrl.cartService.GetCart(sessionID)
	return gin.H{
		"items":      items,
		"total":      ctrl.cartService.GetCartTotal(sessionID),
		"drawerOpen": drawerOpen,
	}
}

// GetCart returns the session cart
// GET /api/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	sessionID := ctrl.session(c)
	c.JSON(http.StatusOK, ctrl.cartResponse(sessionID))
}

// AddItem adds one line to the cart. Re-adding the same id
// increments the existing line instead of duplicating it.
// POST /api/cart/items
func (ctrl *CartController) AddItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sessionID := ctrl.session(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid cart item payload", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "購物車項目資料不正確")
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	ctrl.cartService.AddToCart(sessionID, model.CartItem{
		ID:       req.ID,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: quantity,
		Type:     req.Type,
	})

	c.JSON(http.StatusOK, ctrl.cartResponse(sessionID))
}

// RemoveItem removes one line from the cart
// DELETE /api/cart/items/:id
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	sessionID := ctrl.session(c)
	ctrl.cartService.RemoveFromCart(sessionID, c.Param("id"))
	c.JSON(http.StatusOK, ctrl.cartResponse(sessionID))
}

// ClearCart empties the session cart
// DELETE /api/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	sessionID := ctrl.session(c)
	ctrl.cartService.ClearCart(sessionID)
	c.JSON(http.StatusOK, ctrl.cartResponse(sessionID))
}

// ToggleDrawer flips the cart drawer visibility flag
// POST /api/cart/drawer
func (ctrl *CartController) ToggleDrawer(c *gin.Context) {
	sessionID := ctrl.session(c)
	open := ctrl.cartService.ToggleDrawer(sessionID)
	c.JSON(http.StatusOK, gin.H{"drawerOpen": open})
}

// Checkout builds the WhatsApp handoff link for the current cart.
// The cart is intentionally left intact until the order is confirmed
// over WhatsApp.
// POST /api/cart/checkout
func (ctrl *CartController) Checkout(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	sessionID := ctrl.session(c)

	link, err := ctrl.cartService.CheckoutLink(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrCartEmpty) {
			apperrors.BadRequest(c, apperrors.CartEmpty, "購物車是空的")
			return
		}
		log.Error("Failed to build checkout link", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": link})
}
