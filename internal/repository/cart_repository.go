package repository

import (
	"errors"
	"time"

	"github.com/cayro-uniformes/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository acceso a datos del carrito
type CartRepository interface {
	GetByID(id uint) (*models.Cart, error)
	GetByUserID(userID uint) (*models.Cart, error)
	GetDeepByUserID(userID uint) (*models.Cart, error)
	Create(cart *models.Cart) error
	GetItem(itemID uint) (*models.CartItem, error)
	FindItem(cartID, variantID uint) (*models.CartItem, error)
	MergeAddItem(cartID, variantID uint, quantity int, validate func(merged int) error) (*models.CartItem, error)
	UpdateItemQuantity(itemID uint, quantity int) error
	DeleteItem(itemID uint) error
	ClearItems(cartID uint) error
	DeleteCart(cartID uint) error
}

// GormCartRepository implementación GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository crea el repositorio del carrito
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// GetByID obtiene el carrito por id; nil cuando no existe
func (r *GormCartRepository) GetByID(id uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.First(&cart, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetByUserID obtiene el carrito del usuario sin asociaciones
func (r *GormCartRepository) GetByUserID(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetDeepByUserID obtiene el carrito con líneas, variantes, producto y
// atributos, listo para pintar la página del carrito en una sola llamada
func (r *GormCartRepository) GetDeepByUserID(userID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.created_at ASC")
		}).
		Preload("Items.ProductVariant").
		Preload("Items.ProductVariant.Product").
		Preload("Items.ProductVariant.Product.Brand").
		Preload("Items.ProductVariant.Product.Category").
		Preload("Items.ProductVariant.Color").
		Preload("Items.ProductVariant.Size").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// Create inserta el carrito
func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// GetItem obtiene una línea con su variante; nil cuando no existe
func (r *GormCartRepository) GetItem(itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.
		Preload("ProductVariant").
		First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// FindItem busca la línea de una variante dentro del carrito
func (r *GormCartRepository) FindItem(cartID, variantID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.
		Where("cart_id = ? AND product_variant_id = ?", cartID, variantID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// MergeAddItem agrega una variante fusionando cantidades: la línea
// existente suma la cantidad nueva y nunca se crea una fila duplicada.
// La validación recibe la cantidad ya fusionada; si falla, la
// transacción completa se revierte. Una carrera perdida degrada a
// fusión de cantidades gracias al índice único (cart_id, variant_id).
func (r *GormCartRepository) MergeAddItem(cartID, variantID uint, quantity int, validate func(merged int) error) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.Transaction(func(tx *gorm.DB) error {
		merged := quantity
		var existing models.CartItem
		err := tx.Where("cart_id = ? AND product_variant_id = ?", cartID, variantID).
			First(&existing).Error
		switch {
		case err == nil:
			merged += existing.Quantity
		case errors.Is(err, gorm.ErrRecordNotFound):
			// primera vez que la variante entra al carrito
		default:
			return err
		}

		if validate != nil {
			if err := validate(merged); err != nil {
				return err
			}
		}

		item = models.CartItem{
			CartID:           cartID,
			ProductVariantID: variantID,
			Quantity:         merged,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_variant_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   merged,
				"updated_at": time.Now(),
			}),
		}).Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItemQuantity fija la cantidad exacta de la línea
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) error {
	return r.db.Model(&models.CartItem{}).Where("id = ?", itemID).
		Update("quantity", quantity).Error
}

// DeleteItem elimina la línea
func (r *GormCartRepository) DeleteItem(itemID uint) error {
	return r.db.Delete(&models.CartItem{}, itemID).Error
}

// ClearItems vacía el carrito conservando el registro del carrito
func (r *GormCartRepository) ClearItems(cartID uint) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}

// DeleteCart elimina líneas y carrito en una sola transacción
func (r *GormCartRepository) DeleteCart(cartID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Cart{}, cartID).Error
	})
}
