package models

import (
	"time"

	"gorm.io/gorm"
)

// Sale venta registrada
type Sale struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                    // clave primaria
	Reference string         `gorm:"uniqueIndex;not null" json:"reference"`                   // folio de venta
	UserID    uint           `gorm:"not null;index" json:"user_id"`                           // comprador
	AddressID *uint          `gorm:"index" json:"address_id"`                                 // dirección de envío
	Status    string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"` // estado actual
	Subtotal  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`   // suma de líneas
	Shipping  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"shipping"`   // costo de envío
	Total     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total"`      // importe final
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User    *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Address *Address     `gorm:"foreignKey:AddressID" json:"address,omitempty"`
	Details []SaleDetail `gorm:"foreignKey:SaleID" json:"details,omitempty"`
}

// TableName nombre de tabla
func (Sale) TableName() string {
	return "sales"
}

// SaleDetail línea de una venta; el precio unitario se congela al vender
type SaleDetail struct {
	ID               uint      `gorm:"primarykey" json:"id"`                        // clave primaria
	SaleID           uint      `gorm:"not null;index" json:"sale_id"`               // venta
	ProductVariantID uint      `gorm:"not null;index" json:"product_variant_id"`    // variante vendida
	Quantity         int       `gorm:"not null" json:"quantity"`                    // unidades
	UnitPrice        Money     `gorm:"type:decimal(20,2);not null" json:"unit_price"` // precio al momento de la venta
	CreatedAt        time.Time `gorm:"index" json:"created_at"`

	ProductVariant *ProductVariant `gorm:"foreignKey:ProductVariantID" json:"product_variant,omitempty"`
}

// TableName nombre de tabla
func (SaleDetail) TableName() string {
	return "sale_details"
}
