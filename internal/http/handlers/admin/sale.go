package admin

import (
	"errors"

	"github.com/cayro-uniformes/internal/http/handlers/shared"
	"github.com/cayro-uniformes/internal/http/response"
	"github.com/cayro-uniformes/internal/repository"
	"github.com/cayro-uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

// ListSales listado administrativo de ventas con filtros opcionales
func (h *Handler) ListSales(c *gin.Context) {
	page, pageSize := shared.NormalizePagination(
		shared.QueryInt(c, "page", 1),
		shared.QueryInt(c, "limit", 20),
	)

	sales, total, err := h.SaleService.List(repository.SaleListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   uint(shared.QueryInt(c, "user_id", 0)),
		Status:   c.Query("status"),
	})
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, sales, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: shared.TotalPages(total, pageSize),
	})
}

// ListActiveOrders pedidos en curso; excluye entregadas y canceladas
func (h *Handler) ListActiveOrders(c *gin.Context) {
	sales, err := h.SaleService.ActiveOrders()
	if err != nil {
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, sales)
}

// GetSale detalle completo de una venta
func (h *Handler) GetSale(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	sale, err := h.SaleService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrSaleNotFound) {
			shared.RespondError(c, response.CodeNotFound, "sale.not_found", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, sale)
}
