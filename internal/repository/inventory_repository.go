package repository

import (
	"github.com/cayro-uniformes/internal/models"

	"gorm.io/gorm"
)

// InventoryRepository consultas agregadas del inventario
// Nota: solo agrega datos, las reglas de negocio viven en el servicio.
type InventoryRepository interface {
	ListProducts(filter InventoryListFilter) ([]models.Product, int64, error)
	ProductTotals(productIDs []uint) (map[uint]ProductStockTotalsRow, error)
	GetStats(lowStockThreshold int) (InventoryStatsRow, error)
}

// ProductStockTotalsRow sumas de stock por producto
type ProductStockTotalsRow struct {
	ProductID      uint
	TotalStock     int64
	TotalReserved  int64
	TotalAvailable int64
	TotalValue     float64
}

// InventoryStatsRow estadísticas globales del inventario
type InventoryStatsRow struct {
	ActiveProducts     int64
	VariantCount       int64
	LowStockVariants   int64
	OutOfStockVariants int64
	TotalStock         int64
	InventoryValue     float64
}

// GormInventoryRepository implementación GORM
type GormInventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository crea el repositorio de inventario
func NewInventoryRepository(db *gorm.DB) *GormInventoryRepository {
	return &GormInventoryRepository{db: db}
}

// ListProducts productos paginados para el reporte; la búsqueda por
// nombre es insensible a mayúsculas y el total refleja el filtro
func (r *GormInventoryRepository) ListProducts(filter InventoryListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})
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
		Preload("Variants").
		Preload("Variants.Color").
		Preload("Variants.Size").
		Order("name ASC")
	if err := applyPagination(query, filter.Page, filter.PageSize).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ProductTotals sumas de stock, apartado y valor por producto
func (r *GormInventoryRepository) ProductTotals(productIDs []uint) (map[uint]ProductStockTotalsRow, error) {
	totals := make(map[uint]ProductStockTotalsRow, len(productIDs))
	if len(productIDs) == 0 {
		return totals, nil
	}

	var rows []ProductStockTotalsRow
	err := r.db.Model(&models.ProductVariant{}).
		Select(`product_id AS product_id,
			COALESCE(SUM(stock), 0) AS total_stock,
			COALESCE(SUM(reserved), 0) AS total_reserved,
			COALESCE(SUM(stock - reserved), 0) AS total_available,
			COALESCE(SUM(price * stock), 0) AS total_value`).
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		totals[row.ProductID] = row
	}
	return totals, nil
}

// GetStats estadísticas globales del inventario
func (r *GormInventoryRepository) GetStats(lowStockThreshold int) (InventoryStatsRow, error) {
	result := InventoryStatsRow{}

	if err := r.db.Model(&models.Product{}).
		Where("is_active = ?", true).
		Count(&result.ActiveProducts).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.ProductVariant{}).
		Count(&result.VariantCount).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.ProductVariant{}).
		Where("stock > 0 AND stock <= ?", lowStockThreshold).
		Count(&result.LowStockVariants).Error; err != nil {
		return result, err
	}

	if err := r.db.Model(&models.ProductVariant{}).
		Where("stock = 0").
		Count(&result.OutOfStockVariants).Error; err != nil {
		return result, err
	}

	type sumsRow struct {
		TotalStock     int64
		InventoryValue float64
	}
	var sums sumsRow
	err := r.db.Model(&models.ProductVariant{}).
		Select(`COALESCE(SUM(stock), 0) AS total_stock,
			COALESCE(SUM(price * stock), 0) AS inventory_value`).
		Scan(&sums).Error
	if err != nil {
		return result, err
	}
	result.TotalStock = sums.TotalStock
	result.InventoryValue = sums.InventoryValue

	return result, nil
}
