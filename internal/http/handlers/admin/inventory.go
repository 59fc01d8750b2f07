package admin

import (
	"errors"

	"github.com/cayro-uniformes/internal/http/handlers/shared"
	"github.com/cayro-uniformes/internal/http/response"
	"github.com/cayro-uniformes/internal/repository"
	"github.com/cayro-uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

// StockAdjustmentRequest ajuste manual de stock sobre una variante
type StockAdjustmentRequest struct {
	AdjustmentType string `json:"adjustment_type" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	Reason         string `json:"reason"`
}

func respondInventoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVariantNotFound):
		shared.RespondError(c, response.CodeNotFound, "inventory.variant_not_found", nil)
	case errors.Is(err, service.ErrInvalidAdjustment):
		shared.RespondError(c, response.CodeBadRequest, "inventory.invalid_adjustment", nil)
	case errors.Is(err, service.ErrInvalidQuantity):
		shared.RespondError(c, response.CodeBadRequest, "inventory.invalid_quantity", nil)
	default:
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
	}
}

// ListInventory reporte paginado con agregados por producto
func (h *Handler) ListInventory(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(
		shared.QueryInt(c, "page", 1),
		shared.QueryInt(c, "limit", 20),
	)

	rows, total, err := h.InventoryService.List(repository.InventoryListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, rows, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: shared.TotalPages(total, pageSize),
	})
}

// GetInventoryStats estadísticas globales del inventario
func (h *Handler) GetInventoryStats(c *gin.Context) {
	stats, err := h.InventoryService.GetStats(c.Request.Context())
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, stats)
}

// AdjustVariantStock aplica un ajuste ADD o SUBTRACT sobre la variante
func (h *Handler) AdjustVariantStock(c *gin.Context) {
	variantID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	var req StockAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
		return
	}

	result, err := h.InventoryService.AdjustStock(c.Request.Context(), service.StockAdjustmentInput{
		VariantID:      variantID,
		AdjustmentType: req.AdjustmentType,
		Quantity:       req.Quantity,
		Reason:         req.Reason,
	})
	if err != nil {
		respondInventoryError(c, err)
		return
	}
	response.Success(c, result)
}

// GetInventoryProduct ficha de inventario de un producto con sus variantes
func (h *Handler) GetInventoryProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, product)
}

// ListInventoryProductVariants variantes de un producto con su disponibilidad
func (h *Handler) ListInventoryProductVariants(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	product, err := h.ProductService.Get(id)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, product.Variants)
}

// ListLowStock variantes bajo el umbral; ?threshold= lo sobreescribe
func (h *Handler) ListLowStock(c *gin.Context) {
	variants, err := h.InventoryService.LowStock(shared.QueryInt(c, "threshold", 0))
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, variants)
}
