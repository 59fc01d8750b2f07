package service

// ValidateStockBound regla única de cantidad contra stock. La aplican
// por igual agregar-al-carrito (sobre la cantidad ya fusionada) y la
// actualización directa de una línea, para que ambas rutas rechacen lo
// mismo.
func ValidateStockBound(quantity, stock int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > stock {
		return ErrStockExceeded
	}
	return nil
}
