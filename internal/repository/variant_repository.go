package repository

import (
	"errors"

	"github.com/cayro-uniformes/internal/models"

	"gorm.io/gorm"
)

// VariantRepository acceso a datos de variantes de producto
type VariantRepository interface {
	GetByID(id uint) (*models.ProductVariant, error)
	Create(variant *models.ProductVariant) error
	Update(variant *models.ProductVariant) error
	Delete(id uint) error
	AdjustStock(id uint, delta int) (previous int, updated *models.ProductVariant, err error)
	ListLowStock(threshold int) ([]models.ProductVariant, error)
	SyncForProduct(productID uint, variants []models.ProductVariant) error
}

// GormVariantRepository implementación GORM
type GormVariantRepository struct {
	db *gorm.DB
}

// NewVariantRepository crea el repositorio de variantes
func NewVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

// GetByID obtiene una variante con color, talla y producto; nil si no existe
func (r *GormVariantRepository) GetByID(id uint) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	err := r.db.
		Preload("Product").
		Preload("Color").
		Preload("Size").
		First(&variant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &variant, nil
}

// Create inserta la variante
func (r *GormVariantRepository) Create(variant *models.ProductVariant) error {
	return r.db.Create(variant).Error
}

// Update persiste la variante
func (r *GormVariantRepository) Update(variant *models.ProductVariant) error {
	return r.db.Save(variant).Error
}

// Delete elimina la variante
func (r *GormVariantRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProductVariant{}, id).Error
}

// AdjustStock aplica un delta al stock en un solo UPDATE; nunca baja de
// cero (el CASE es portable entre sqlite y postgres). Devuelve el stock
// previo y la variante ya actualizada.
func (r *GormVariantRepository) AdjustStock(id uint, delta int) (int, *models.ProductVariant, error) {
	var previous int
	var updated models.ProductVariant
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var current models.ProductVariant
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		previous = current.Stock

		result := tx.Model(&models.ProductVariant{}).Where("id = ?", id).
			Update("stock", gorm.Expr("CASE WHEN stock + ? < 0 THEN 0 ELSE stock + ? END", delta, delta))
		if result.Error != nil {
			return result.Error
		}

		return tx.
			Preload("Product").
			Preload("Color").
			Preload("Size").
			First(&updated, id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil, nil
		}
		return 0, nil, err
	}
	return previous, &updated, nil
}

// SyncForProduct sincroniza las variantes de un producto en una
// transacción: actualiza las que traen id, crea las nuevas y elimina
// las que ya no aparecen (junto con sus líneas de carrito huérfanas).
func (r *GormVariantRepository) SyncForProduct(productID uint, variants []models.ProductVariant) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		keep := make([]uint, 0, len(variants))
		for i := range variants {
			variants[i].ProductID = productID
			if variants[i].ID != 0 {
				keep = append(keep, variants[i].ID)
				if err := tx.Save(&variants[i]).Error; err != nil {
					return err
				}
			} else {
				if err := tx.Create(&variants[i]).Error; err != nil {
					return err
				}
				keep = append(keep, variants[i].ID)
			}
		}

		removed := tx.Model(&models.ProductVariant{}).
			Select("id").Where("product_id = ?", productID)
		if len(keep) > 0 {
			removed = removed.Where("id NOT IN ?", keep)
		}
		if err := tx.Where("product_variant_id IN (?)", removed).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		query := tx.Where("product_id = ?", productID)
		if len(keep) > 0 {
			query = query.Where("id NOT IN ?", keep)
		}
		return query.Delete(&models.ProductVariant{}).Error
	})
}

// ListLowStock variantes con 0 < stock <= umbral, ordenadas por stock
func (r *GormVariantRepository) ListLowStock(threshold int) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	err := r.db.
		Preload("Product").
		Preload("Color").
		Preload("Size").
		Where("stock > 0 AND stock <= ?", threshold).
		Order("stock ASC, id ASC").
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}
