package store

import "github.com/cayro-uniformes/internal/provider"

// Handler endpoints de la tienda: carrito, catálogo público,
// recomendaciones y compras del usuario.
type Handler struct {
	*provider.Container
}

// New crea el handler de tienda
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
