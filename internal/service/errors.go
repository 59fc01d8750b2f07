package service

import "errors"

// Errores centinela del dominio; los handlers los traducen a códigos
// de respuesta y mensajes localizados.
var (
	ErrNotFound     = errors.New("registro no encontrado")
	ErrNameConflict = errors.New("nombre duplicado")
	ErrInUse        = errors.New("registro en uso")

	ErrProductNotFound = errors.New("producto no encontrado")
	ErrProductInUse    = errors.New("producto con ventas asociadas")
	ErrVariantNotFound = errors.New("variante no encontrada")
	ErrVariantConflict = errors.New("variante duplicada para el producto")

	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrCartNotFound     = errors.New("carrito no encontrado")
	ErrCartItemNotFound = errors.New("línea del carrito no encontrada")
	ErrStockExceeded    = errors.New("cantidad mayor al stock disponible")

	ErrInvalidInput      = errors.New("datos inválidos")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInvalidAdjustment = errors.New("tipo de ajuste inválido")

	ErrSaleNotFound      = errors.New("venta no encontrada")
	ErrInvalidSaleStatus = errors.New("estado de venta inválido")

	ErrEmailServiceDisabled      = errors.New("servicio de correo deshabilitado")
	ErrEmailServiceNotConfigured = errors.New("servicio de correo sin configurar")
	ErrInvalidEmail              = errors.New("correo inválido")
)
