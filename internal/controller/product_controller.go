package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/masterdu/masterdu-backend/internal/errors"
	"github.com/masterdu/masterdu-backend/internal/middleware"
	"github.com/masterdu/masterdu-backend/internal/service"
)

// ProductController serves the spiritual-item catalog. The catalog is
// ingested from a workbook by the seeder and is read-only over HTTP.
type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// GetProducts returns the normalized product list
// GET /api/products
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	items, err := ctrl.productService.List()
	if err != nil {
		log.Error("Failed to load products", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, items)
}
