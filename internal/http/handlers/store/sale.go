package store

import (
	"errors"

	"github.com/cayro-uniformes/internal/http/handlers/shared"
	"github.com/cayro-uniformes/internal/http/response"
	"github.com/cayro-uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateSaleStatusRequest cambio de estado a nombre del comprador
type UpdateSaleStatusRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// ConfirmSaleRequest confirmación de entrega
type ConfirmSaleRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

func respondSaleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSaleNotFound):
		shared.RespondError(c, response.CodeNotFound, "sale.not_found", nil)
	case errors.Is(err, service.ErrInvalidSaleStatus):
		shared.RespondError(c, response.CodeBadRequest, "sale.invalid_status", nil)
	case errors.Is(err, service.ErrInvalidInput):
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
	default:
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
	}
}

// ListUserSales compras de un usuario con detalle completo
func (h *Handler) ListUserSales(c *gin.Context) {
	userID, ok := shared.ParseUintParam(c, "user_id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}

	sales, err := h.SaleService.ListByUser(userID)
	if err != nil {
		respondSaleError(c, err)
		return
	}
	response.Success(c, sales)
}

// UpdateSaleStatus asigna un estado a la venta del usuario; no hay
// matriz de transiciones
func (h *Handler) UpdateSaleStatus(c *gin.Context) {
	saleID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	var req UpdateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
		return
	}

	sale, err := h.SaleService.UpdateStatus(saleID, req.UserID, req.Status)
	if err != nil {
		respondSaleError(c, err)
		return
	}
	response.Success(c, sale)
}

// ConfirmSale marca la venta como entregada
func (h *Handler) ConfirmSale(c *gin.Context) {
	saleID, ok := shared.ParseUintParam(c, "id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	var req ConfirmSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
		return
	}

	sale, err := h.SaleService.Confirm(saleID, req.UserID)
	if err != nil {
		respondSaleError(c, err)
		return
	}
	response.Success(c, sale)
}
