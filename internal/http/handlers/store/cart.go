package store

import (
	"errors"

	"github.com/cayro-uniformes/internal/http/handlers/shared"
	"github.com/cayro-uniformes/internal/http/response"
	"github.com/cayro-uniformes/internal/i18n"
	"github.com/cayro-uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCartRequest petición de creación/recuperación del carrito
type CreateCartRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// AddCartItemRequest petición para agregar una variante
type AddCartItemRequest struct {
	CartID           uint `json:"cart_id" binding:"required"`
	ProductVariantID uint `json:"product_variant_id" binding:"required"`
	Quantity         int  `json:"quantity" binding:"required"`
}

// UpdateCartItemRequest petición para fijar la cantidad de una línea
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		shared.RespondError(c, response.CodeNotFound, "cart.user_not_found", nil)
	case errors.Is(err, service.ErrCartNotFound):
		shared.RespondError(c, response.CodeNotFound, "cart.not_found", nil)
	case errors.Is(err, service.ErrCartItemNotFound):
		shared.RespondError(c, response.CodeNotFound, "cart.item_not_found", nil)
	case errors.Is(err, service.ErrVariantNotFound):
		shared.RespondError(c, response.CodeNotFound, "cart.variant_not_found", nil)
	case errors.Is(err, service.ErrStockExceeded):
		shared.RespondError(c, response.CodeBadRequest, "cart.stock_exceeded", nil)
	case errors.Is(err, service.ErrInvalidQuantity):
		shared.RespondError(c, response.CodeBadRequest, "inventory.invalid_quantity", nil)
	case errors.Is(err, service.ErrInvalidInput):
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
	default:
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
	}
}

// CreateCart devuelve el carrito del usuario, creándolo si hace falta;
// repetir la petición devuelve el mismo carrito
func (h *Handler) CreateCart(c *gin.Context) {
	var req CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
		return
	}

	cart, err := h.CartService.GetOrCreate(req.UserID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cart)
}

// GetCartByUser carrito completo del usuario; data null si aún no tiene
func (h *Handler) GetCartByUser(c *gin.Context) {
	userID, ok := shared.ParseUintParam(c, "user_id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}

	cart, err := h.CartService.GetByUser(userID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	if cart == nil {
		response.Success(c, nil)
		return
	}
	response.Success(c, cart)
}

// AddCartItem agrega una variante; repetir variante fusiona cantidades
func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
		return
	}

	item, err := h.CartService.AddItem(service.AddCartItemInput{
		CartID:           req.CartID,
		ProductVariantID: req.ProductVariantID,
		Quantity:         req.Quantity,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, item)
}

// UpdateCartItem fija la cantidad exacta de una línea
func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID, ok := shared.ParseUintParam(c, "item_id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
		return
	}

	item, err := h.CartService.UpdateItemQuantity(itemID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, item)
}

// DeleteCartItem elimina una línea del carrito
func (h *Handler) DeleteCartItem(c *gin.Context) {
	itemID, ok := shared.ParseUintParam(c, "item_id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	if err := h.CartService.RemoveItem(itemID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart vacía el carrito conservándolo
func (h *Handler) ClearCart(c *gin.Context) {
	cartID, ok := shared.ParseUintParam(c, "cart_id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	if err := h.CartService.Clear(cartID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"message": i18n.T(shared.Locale(c), "cart.cleared")})
}

// DeleteCart elimina líneas y carrito en una sola transacción
func (h *Handler) DeleteCart(c *gin.Context) {
	cartID, ok := shared.ParseUintParam(c, "cart_id")
	if !ok {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
		return
	}
	if err := h.CartService.Delete(cartID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"message": i18n.T(shared.Locale(c), "cart.deleted")})
}
