package admin

import "github.com/cayro-uniformes/internal/provider"

// Handler endpoints de administración: atributos de catálogo,
// productos, inventario y gestión de ventas.
type Handler struct {
	*provider.Container
}

// New crea el handler de administración
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
