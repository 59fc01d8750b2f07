package admin

import (
	"errors"

	"github.com/cayro-uniformes/internal/http/handlers/shared"
	"github.com/cayro-uniformes/internal/http/response"
	"github.com/cayro-uniformes/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogBinding vínculo entre las peticiones HTTP y una entidad de
// catálogo: Create construye la entidad nueva y Apply produce la
// mutación parcial para PATCH.
type CatalogBinding[T any] struct {
	Create func(c *gin.Context) (*T, error)
	Apply  func(c *gin.Context) (func(*T), error)
}

func respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		shared.RespondError(c, response.CodeNotFound, "catalog.not_found", nil)
	case errors.Is(err, service.ErrNameConflict):
		shared.RespondError(c, response.CodeConflict, "catalog.name_conflict", nil)
	case errors.Is(err, service.ErrInUse):
		shared.RespondError(c, response.CodeConflict, "catalog.in_use", nil)
	default:
		shared.RespondError(c, response.CodeInternal, "error.internal", err)
	}
}

// RegisterCatalogRoutes registra el CRUD completo de un atributo de
// catálogo bajo la ruta dada. Las once familias de atributos comparten
// exactamente estos cinco handlers.
func RegisterCatalogRoutes[T any](rg *gin.RouterGroup, path string, svc *service.CatalogService[T], binding CatalogBinding[T]) {
	grp := rg.Group(path)

	grp.GET("", func(c *gin.Context) {
		items, err := svc.List()
		if err != nil {
			shared.RespondError(c, response.CodeInternal, "error.internal", err)
			return
		}
		response.Success(c, items)
	})

	grp.GET("/:id", func(c *gin.Context) {
		id, ok := shared.ParseUintParam(c, "id")
		if !ok {
			shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
			return
		}
		item, err := svc.Get(id)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		response.Success(c, item)
	})

	grp.POST("", func(c *gin.Context) {
		entity, err := binding.Create(c)
		if err != nil {
			shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
			return
		}
		created, err := svc.Create(entity)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		response.Success(c, created)
	})

	grp.PATCH("/:id", func(c *gin.Context) {
		id, ok := shared.ParseUintParam(c, "id")
		if !ok {
			shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
			return
		}
		mutate, err := binding.Apply(c)
		if err != nil {
			shared.RespondError(c, response.CodeBadRequest, "error.validation", err)
			return
		}
		updated, err := svc.Update(id, mutate)
		if err != nil {
			respondCatalogError(c, err)
			return
		}
		response.Success(c, updated)
	})

	grp.DELETE("/:id", func(c *gin.Context) {
		id, ok := shared.ParseUintParam(c, "id")
		if !ok {
			shared.RespondError(c, response.CodeBadRequest, "error.validation", nil)
			return
		}
		if err := svc.Delete(id); err != nil {
			respondCatalogError(c, err)
			return
		}
		response.Success(c, gin.H{"deleted": true})
	})
}
