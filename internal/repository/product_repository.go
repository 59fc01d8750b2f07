package repository

import (
	"errors"

	"github.com/cayro-uniformes/internal/models"

	"gorm.io/gorm"
)

// ProductRepository acceso a datos de productos
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	SetActive(id uint, active bool) error
	CountByName(name string, excludeID *uint) (int64, error)
	CountSaleReferences(productID uint) (int64, error)
	GetByName(name string) (*models.Product, error)
	ListActiveByCategory(categoryID uint, excludeNames []string, limit int) ([]models.Product, error)
}

// GormProductRepository implementación GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository crea el repositorio de productos
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// List listado paginado con filtros; el total refleja el filtro aplicado
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name "+likeOperator(r.db)+" ?", like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	query = query.
		Preload("Category").
		Preload("Brand").
		Preload("Gender").
		Preload("Sleeve").
		Preload("Variants").
		Preload("Variants.Color").
		Preload("Variants.Size").
		Order("name ASC")
	if err := applyPagination(query, filter.Page, filter.PageSize).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID obtiene un producto con variantes; nil cuando no existe
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.
		Preload("Category").
		Preload("Brand").
		Preload("Gender").
		Preload("Sleeve").
		Preload("Variants").
		Preload("Variants.Color").
		Preload("Variants.Size").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create inserta el producto junto con sus variantes anidadas
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update persiste el producto; las variantes se gestionan aparte
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Omit("Variants").Save(product).Error
}

// Delete elimina el producto, sus variantes y las líneas de carrito
// que las referencian, todo en una transacción
func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		variantIDs := tx.Model(&models.ProductVariant{}).
			Select("id").Where("product_id = ?", id)
		if err := tx.Where("product_variant_id IN (?)", variantIDs).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductVariant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, id).Error
	})
}

// SetActive cambia la visibilidad en tienda
func (r *GormProductRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&models.Product{}).Where("id = ?", id).Update("is_active", active).Error
}

// CountByName cuenta productos con el nombre dado, excluyendo un id opcional
func (r *GormProductRepository) CountByName(name string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Product{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetByName busca un producto por nombre exacto; nil cuando no existe
func (r *GormProductRepository) GetByName(name string) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("name = ?", name).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListActiveByCategory productos activos de una categoría, excluyendo
// los nombres indicados; respaldo del recomendador
func (r *GormProductRepository) ListActiveByCategory(categoryID uint, excludeNames []string, limit int) ([]models.Product, error) {
	query := r.db.Model(&models.Product{}).
		Where("category_id = ? AND is_active = ?", categoryID, true)
	if len(excludeNames) > 0 {
		query = query.Where("name NOT IN ?", excludeNames)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	var products []models.Product
	if err := query.Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// CountSaleReferences cuenta líneas de venta que apuntan a variantes del producto
func (r *GormProductRepository) CountSaleReferences(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.SaleDetail{}).
		Joins("JOIN product_variants ON product_variants.id = sale_details.product_variant_id").
		Where("product_variants.product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
