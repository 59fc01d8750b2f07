package admin

import (
	"errors"

	"github.com/cayro-uniformes/internal/http/handlers/shared"
	"github.com/cayro-uniformes/internal/http/response"
	"github.com/cayro-uniformes/internal/repository"
	"github.com/cayro-uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

func respondProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		shared.RespondError(c, response.CodeNotFound, "product.not_found", nil)
	case errors.Is(err, service.ErrNameConflict), errors.Is(err, service.ErrVariantConflict):
		shared.RespondError(c, response.CodeConflict, "catalog.name_conflict", nil)
	case errors.Is(err, service.ErrProductInUse):
		shared.RespondError(c, response.CodeConflict, "product.in_use", nil)
	case errors.Is(err, service.ErrInvalidInput):
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
	default:
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
	}
}

// ListProducts listado administrativo (incluye inactivos)
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(
		shared.QueryInt(c, "page", 1),
		shared.QueryInt(c, "limit", 20),
	)

	products, total, err := h.ProductService.List(repository.ProductListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: uint(shared.QueryInt(c, "category_id", 0)),
		Search:     c.Query("search"),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, products, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: shared.TotalPages(total, pageSize),
	})
}

// GetProduct detalle administrativo
func (h *Handler) GetProduct(c *gin.Context) {
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

// CreateProduct alta de producto con variantes anidadas
func (h *Handler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
		return
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProduct edición de producto y sincronización de variantes
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
		return
	}

	product, err := h.ProductService.Update(id, input)
	if err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, product)
}

// ActivateProduct visibiliza el producto en tienda
func (h *Handler) ActivateProduct(c *gin.Context) {
	h.setProductActive(c, true)
}

// DeactivateProduct oculta el producto de la tienda
func (h *Handler) DeactivateProduct(c *gin.Context) {
	h.setProductActive(c, false)
}

func (h *Handler) setProductActive(c *gin.Context, active bool) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	if err := h.ProductService.SetActive(id, active); err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, gin.H{"is_active": active})
}

// DeleteProduct elimina el producto salvo que tenga ventas asociadas
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondProductError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
