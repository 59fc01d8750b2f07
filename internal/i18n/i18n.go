package i18n

import (
	"fmt"
	"strings"

	"github.com/cayro-uniformes/internal/constants"
)

// Catálogos de mensajes por idioma. El mercado del negocio es México,
// por lo que es-MX es el idioma por defecto y en-US el respaldo.
var catalogs = map[string]map[string]string{
	constants.LocaleEsMX: {
		"error.internal":          "Ocurrió un error interno, inténtalo de nuevo más tarde",
		"error.bad_request":       "Petición inválida",
		"error.validation":        "Los datos enviados no son válidos",
		"error.not_found":         "Recurso no encontrado",
		"error.too_many_requests": "Demasiadas peticiones, espera un momento",

		"catalog.not_found":     "Registro no encontrado",
		"catalog.name_conflict": "Ya existe un registro con ese nombre",
		"catalog.in_use":        "No se puede eliminar: el registro está en uso",

		"product.not_found": "Producto no encontrado",
		"product.in_use":    "No se puede eliminar: el producto tiene ventas asociadas",

		"cart.user_not_found":    "Usuario no encontrado",
		"cart.not_found":         "Carrito no encontrado",
		"cart.item_not_found":    "Artículo del carrito no encontrado",
		"cart.variant_not_found": "Variante de producto no encontrada",
		"cart.stock_exceeded":    "La cantidad solicitada supera el stock disponible",
		"cart.cleared":           "Carrito vaciado correctamente",
		"cart.deleted":           "Carrito eliminado correctamente",

		"inventory.variant_not_found":  "Variante de producto no encontrada",
		"inventory.invalid_adjustment": "Tipo de ajuste inválido, usa ADD o SUBTRACT",
		"inventory.invalid_quantity":   "La cantidad debe ser mayor que cero",

		"sale.not_found":      "Venta no encontrada",
		"sale.invalid_status": "Estado de venta inválido",
	},
	constants.LocaleEnUS: {
		"error.internal":          "An internal error occurred, please try again later",
		"error.bad_request":       "Invalid request",
		"error.validation":        "The submitted data is not valid",
		"error.not_found":         "Resource not found",
		"error.too_many_requests": "Too many requests, please wait a moment",

		"catalog.not_found":     "Record not found",
		"catalog.name_conflict": "A record with that name already exists",
		"catalog.in_use":        "Cannot delete: the record is in use",

		"product.not_found": "Product not found",
		"product.in_use":    "Cannot delete: the product has associated sales",

		"cart.user_not_found":    "User not found",
		"cart.not_found":         "Cart not found",
		"cart.item_not_found":    "Cart item not found",
		"cart.variant_not_found": "Product variant not found",
		"cart.stock_exceeded":    "Requested quantity exceeds the available stock",
		"cart.cleared":           "Cart cleared successfully",
		"cart.deleted":           "Cart deleted successfully",

		"inventory.variant_not_found":  "Product variant not found",
		"inventory.invalid_adjustment": "Invalid adjustment type, use ADD or SUBTRACT",
		"inventory.invalid_quantity":   "Quantity must be greater than zero",

		"sale.not_found":      "Sale not found",
		"sale.invalid_status": "Invalid sale status",
	},
}

// ResolveLocale resuelve el idioma a partir del encabezado Accept-Language
func ResolveLocale(acceptLanguage string) string {
	for _, part := range strings.Split(acceptLanguage, ",") {
		tag := strings.TrimSpace(part)
		if idx := strings.Index(tag, ";"); idx >= 0 {
			tag = tag[:idx]
		}
		if tag == "" {
			continue
		}
		lower := strings.ToLower(tag)
		switch {
		case strings.HasPrefix(lower, "es"):
			return constants.LocaleEsMX
		case strings.HasPrefix(lower, "en"):
			return constants.LocaleEnUS
		}
	}
	return constants.LocaleEsMX
}

// T devuelve el mensaje traducido; cae a es-MX y después a la clave
func T(locale, key string) string {
	if catalog, ok := catalogs[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := catalogs[constants.LocaleEsMX][key]; ok {
		return msg
	}
	return key
}

// Sprintf traduce y aplica formato
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
