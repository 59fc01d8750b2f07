package models

import (
	"time"

	"gorm.io/gorm"
)

// Product producto del catálogo (p. ej. camisa escolar)
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                   // clave primaria
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`       // nombre único
	Description string         `gorm:"type:text" json:"description"`           // descripción
	CategoryID  uint           `gorm:"not null;index" json:"category_id"`      // categoría
	BrandID     *uint          `gorm:"index" json:"brand_id"`                  // marca (opcional)
	GenderID    *uint          `gorm:"index" json:"gender_id"`                 // corte (opcional)
	SleeveID    *uint          `gorm:"index" json:"sleeve_id"`                 // tipo de manga (opcional)
	IsActive    bool           `gorm:"index" json:"is_active"`                 // visible en tienda; siempre se asigna explícito
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	Category Category         `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Brand    *Brand           `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Gender   *Gender          `gorm:"foreignKey:GenderID" json:"gender,omitempty"`
	Sleeve   *Sleeve          `gorm:"foreignKey:SleeveID" json:"sleeve,omitempty"`
	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

// TableName nombre de tabla
func (Product) TableName() string {
	return "products"
}

// ProductVariant variante color×talla de un producto.
// Available nunca se persiste: siempre se recalcula como Stock - Reserved.
type ProductVariant struct {
	ID        uint        `gorm:"primarykey" json:"id"`                                                  // clave primaria
	ProductID uint        `gorm:"not null;uniqueIndex:idx_variant_product_color_size" json:"product_id"` // producto
	ColorID   uint        `gorm:"not null;uniqueIndex:idx_variant_product_color_size" json:"color_id"`   // color
	SizeID    uint        `gorm:"not null;uniqueIndex:idx_variant_product_color_size" json:"size_id"`    // talla
	Price     Money       `gorm:"type:decimal(20,2);not null;default:0" json:"price"`                    // precio unitario
	Stock     int         `gorm:"not null;default:0" json:"stock"`                                       // existencias físicas
	Reserved  int         `gorm:"not null;default:0" json:"reserved"`                                    // apartadas en pedidos
	Available int         `gorm:"-" json:"available"`                                                    // stock - reserved, derivado
	Barcode   string      `gorm:"type:varchar(64);index" json:"barcode"`                                 // código de barras
	Images    StringArray `gorm:"type:json" json:"images"`                                               // imágenes en orden de galería
	CreatedAt time.Time   `gorm:"index" json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Color   Color    `gorm:"foreignKey:ColorID" json:"color,omitempty"`
	Size    Size     `gorm:"foreignKey:SizeID" json:"size,omitempty"`
}

// TableName nombre de tabla
func (ProductVariant) TableName() string {
	return "product_variants"
}

// ComputeAvailable recalcula la disponibilidad derivada
func (v *ProductVariant) ComputeAvailable() {
	v.Available = v.Stock - v.Reserved
}

// AfterFind gorm hook: la disponibilidad nunca viene de la base
func (v *ProductVariant) AfterFind(tx *gorm.DB) error {
	v.ComputeAvailable()
	return nil
}
