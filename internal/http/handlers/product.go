package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/skinsage/skinsage-backend/internal/http/response"
	perrors "github.com/skinsage/skinsage-backend/internal/pkg/errors"
	"github.com/skinsage/skinsage-backend/internal/pkg/logger"
	"github.com/skinsage/skinsage-backend/internal/services"
)

type ProductHandler struct {
	log            *logger.Logger
	productService services.ProductService
}

func NewProductHandler(log *logger.Logger, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		log:            log.With("handler", "ProductHandler"),
		productService: productService,
	}
}

// GET /api/products?limit=&offset=
func (ph *ProductHandler) ListProducts(c *gin.Context) {
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	products, err := ph.productService.ListProducts(c.Request.Context(), limit, offset)
	if err != nil {
		ph.log.Error("List products failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "list_products_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"products": products})
}

// GET /api/products/:id
func (ph *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := ph.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, "get_product_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"product": product})
}

// POST /api/products
func (ph *ProductHandler) CreateProduct(c *gin.Context) {
	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	product, err := ph.productService.CreateProduct(c.Request.Context(), input)
	if err != nil {
		respondServiceError(c, "create_product_failed", err)
		return
	}
	response.RespondCreated(c, gin.H{"product": product})
}

// PUT /api/products/:id
func (ph *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	product, err := ph.productService.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		respondServiceError(c, "update_product_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"product": product})
}

// DELETE /api/products/:id
func (ph *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ph.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		respondServiceError(c, "delete_product_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", err)
		return uuid.Nil, false
	}
	return id, true
}

func respondServiceError(c *gin.Context, code string, err error) {
	switch {
	case errors.Is(err, perrors.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, code, err)
	case errors.Is(err, perrors.ErrInvalidArgument):
		response.RespondError(c, http.StatusBadRequest, code, err)
	default:
		response.RespondError(c, http.StatusInternalServerError, code, err)
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
