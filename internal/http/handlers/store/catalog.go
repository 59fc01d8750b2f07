package store

import (
	"errors"

	"github.com/cayro-uniformes/internal/http/handlers/shared"
	"github.com/cayro-uniformes/internal/http/response"
	"github.com/cayro-uniformes/internal/repository"
	"github.com/cayro-uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

// ListProducts catálogo público: paginado, búsqueda por nombre y filtro
// por categoría; solo productos activos
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
		OnlyActive: true,
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

// GetProduct detalle público con variantes, colores y tallas
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}

	product, err := h.ProductService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			shared.RespondError(c, response.CodeNotFound, "product.not_found", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, product)
}

// ListFaqs preguntas frecuentes publicadas
func (h *Handler) ListFaqs(c *gin.Context) {
	faqs, err := h.FaqService.List()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, faqs)
}
