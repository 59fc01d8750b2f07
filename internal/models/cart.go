package models

import (
	"time"
)

// Cart carrito de compras; a lo más uno por usuario
type Cart struct {
	ID        uint      `gorm:"primarykey" json:"id"`               // clave primaria
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"` // un carrito por usuario
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User  *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
}

// TableName nombre de tabla
func (Cart) TableName() string {
	return "carts"
}

// CartItem línea del carrito. El índice único sobre (cart_id,
// product_variant_id) garantiza una sola fila por variante; agregar la
// misma variante fusiona cantidades en lugar de duplicar la fila.
// Sin borrado lógico: una línea eliminada debe poder recrearse.
type CartItem struct {
	ID               uint      `gorm:"primarykey" json:"id"`                                                   // clave primaria
	CartID           uint      `gorm:"not null;uniqueIndex:idx_cart_item_variant" json:"cart_id"`              // carrito
	ProductVariantID uint      `gorm:"not null;uniqueIndex:idx_cart_item_variant" json:"product_variant_id"`   // variante
	Quantity         int       `gorm:"not null" json:"quantity"`                                               // cantidad
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	ProductVariant *ProductVariant `gorm:"foreignKey:ProductVariantID" json:"product_variant,omitempty"`
}

// TableName nombre de tabla
func (CartItem) TableName() string {
	return "cart_items"
}
