package store

import (
	"errors"

	"github.com/cayro-uniformes/internal/http/handlers/shared"
	"github.com/cayro-uniformes/internal/http/response"
	"github.com/cayro-uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductRecommendationRequest petición de recomendación por producto
type ProductRecommendationRequest struct {
	Producto string `json:"producto" binding:"required"`
}

// CartRecommendationRequest petición de recomendación por carrito
type CartRecommendationRequest struct {
	Productos []string `json:"productos" binding:"required"`
}

// RecommendForProduct recomendaciones por reglas de asociación; un
// producto desconocido produce lista vacía
func (h *Handler) RecommendForProduct(c *gin.Context) {
	var req ProductRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
		return
	}

	recommendations, err := h.RecommendationService.ForProduct(req.Producto)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"recomendaciones": recommendations})
}

// RecommendForCart recomendaciones acumuladas sobre el carrito completo
func (h *Handler) RecommendForCart(c *gin.Context) {
	var req CartRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
		return
	}

	recommendations, err := h.RecommendationService.ForCart(req.Productos)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
			return
		}
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"recomendaciones": recommendations})
}
