package admin

import (
	"github.com/cayro-uniformes/internal/models"

	"github.com/gin-gonic/gin"
)

type nameRequest struct {
	Name string `json:"name" binding:"required"`
}

type namePatch struct {
	Name *string `json:"name"`
}

type describedRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type describedPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type colorRequest struct {
	Name     string `json:"name" binding:"required"`
	HexValue string `json:"hex_value" binding:"required"`
}

type colorPatch struct {
	Name     *string `json:"name"`
	HexValue *string `json:"hex_value"`
}

type faqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type faqPatch struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// nameOnlyBinding vínculo para atributos cuyo único campo editable es
// el nombre (tallas, categorías, marcas, cortes, mangas, hilos)
func nameOnlyBinding[T any](set func(*T, string)) CatalogBinding[T] {
	return CatalogBinding[T]{
		Create: func(c *gin.Context) (*T, error) {
			var req nameRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			var entity T
			set(&entity, req.Name)
			return &entity, nil
		},
		Apply: func(c *gin.Context) (func(*T), error) {
			var req namePatch
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return func(e *T) {
				if req.Name != nil {
					set(e, *req.Name)
				}
			}, nil
		},
	}
}

// describedBinding vínculo para atributos con nombre y descripción
// (materiales, telas, cuellos)
func describedBinding[T any](setName func(*T, string), setDescription func(*T, string)) CatalogBinding[T] {
	return CatalogBinding[T]{
		Create: func(c *gin.Context) (*T, error) {
			var req describedRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			var entity T
			setName(&entity, req.Name)
			setDescription(&entity, req.Description)
			return &entity, nil
		},
		Apply: func(c *gin.Context) (func(*T), error) {
			var req describedPatch
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return func(e *T) {
				if req.Name != nil {
					setName(e, *req.Name)
				}
				if req.Description != nil {
					setDescription(e, *req.Description)
				}
			}, nil
		},
	}
}

func colorBinding() CatalogBinding[models.Color] {
	return CatalogBinding[models.Color]{
		Create: func(c *gin.Context) (*models.Color, error) {
			var req colorRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &models.Color{Name: req.Name, HexValue: req.HexValue}, nil
		},
		Apply: func(c *gin.Context) (func(*models.Color), error) {
			var req colorPatch
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return func(e *models.Color) {
				if req.Name != nil {
					e.Name = *req.Name
				}
				if req.HexValue != nil {
					e.HexValue = *req.HexValue
				}
			}, nil
		},
	}
}

func faqBinding() CatalogBinding[models.Faq] {
	return CatalogBinding[models.Faq]{
		Create: func(c *gin.Context) (*models.Faq, error) {
			var req faqRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return &models.Faq{Question: req.Question, Answer: req.Answer}, nil
		},
		Apply: func(c *gin.Context) (func(*models.Faq), error) {
			var req faqPatch
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			return func(e *models.Faq) {
				if req.Question != nil {
					e.Question = *req.Question
				}
				if req.Answer != nil {
					e.Answer = *req.Answer
				}
			}, nil
		},
	}
}

// RegisterCatalogResources monta los once atributos administrables
func (h *Handler) RegisterCatalogResources(rg *gin.RouterGroup) {
	RegisterCatalogRoutes(rg, "/colors", h.ColorService, colorBinding())
	RegisterCatalogRoutes(rg, "/size", h.SizeService,
		nameOnlyBinding(func(e *models.Size, v string) { e.Name = v }))
	RegisterCatalogRoutes(rg, "/material", h.MaterialService,
		describedBinding(
			func(e *models.Material, v string) { e.Name = v },
			func(e *models.Material, v string) { e.Description = v },
		))
	RegisterCatalogRoutes(rg, "/category", h.CategoryService,
		nameOnlyBinding(func(e *models.Category, v string) { e.Name = v }))
	RegisterCatalogRoutes(rg, "/brands", h.BrandService,
		nameOnlyBinding(func(e *models.Brand, v string) { e.Name = v }))
	RegisterCatalogRoutes(rg, "/genders", h.GenderService,
		nameOnlyBinding(func(e *models.Gender, v string) { e.Name = v }))
	RegisterCatalogRoutes(rg, "/sleeves", h.SleeveService,
		nameOnlyBinding(func(e *models.Sleeve, v string) { e.Name = v }))
	RegisterCatalogRoutes(rg, "/fabric-type", h.FabricTypeService,
		describedBinding(
			func(e *models.FabricType, v string) { e.Name = v },
			func(e *models.FabricType, v string) { e.Description = v },
		))
	RegisterCatalogRoutes(rg, "/neck-type", h.NeckTypeService,
		describedBinding(
			func(e *models.NeckType, v string) { e.Name = v },
			func(e *models.NeckType, v string) { e.Description = v },
		))
	RegisterCatalogRoutes(rg, "/sewing-thread", h.SewingThreadService,
		nameOnlyBinding(func(e *models.SewingThread, v string) { e.Name = v }))
	RegisterCatalogRoutes(rg, "/faqs/questions", h.FaqService, faqBinding())
}
