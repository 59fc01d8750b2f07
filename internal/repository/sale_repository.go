package repository

import (
	"errors"

	"github.com/cayro-uniformes/internal/constants"
	"github.com/cayro-uniformes/internal/models"

	"gorm.io/gorm"
)

// SaleRepository acceso a datos de ventas
type SaleRepository interface {
	List(filter SaleListFilter) ([]models.Sale, int64, error)
	GetByID(id uint) (*models.Sale, error)
	Create(sale *models.Sale) error
	UpdateStatus(id, userID uint, status string) (int64, error)
}

// GormSaleRepository implementación GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository crea el repositorio de ventas
func NewSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

func (r *GormSaleRepository) withIncludes(query *gorm.DB) *gorm.DB {
	return query.
		Preload("User").
		Preload("User.Addresses").
		Preload("Address").
		Preload("Details").
		Preload("Details.ProductVariant").
		Preload("Details.ProductVariant.Product").
		Preload("Details.ProductVariant.Color").
		Preload("Details.ProductVariant.Size")
}

// List listado de ventas con asociaciones anidadas. OnlyActive excluye
// los estados terminales (entregada, cancelada).
func (r *GormSaleRepository) List(filter SaleListFilter) ([]models.Sale, int64, error) {
	query := r.db.Model(&models.Sale{})

	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OnlyActive {
		query = query.Where("status NOT IN ?", constants.TerminalSaleStatuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []models.Sale
	query = r.withIncludes(query).Order("created_at DESC, id DESC")
	if err := applyPagination(query, filter.Page, filter.PageSize).Find(&sales).Error; err != nil {
		return nil, 0, err
	}
	return sales, total, nil
}

// GetByID obtiene una venta con todas sus asociaciones; nil si no existe
func (r *GormSaleRepository) GetByID(id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := r.withIncludes(r.db).First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sale, nil
}

// Create inserta la venta con sus líneas
func (r *GormSaleRepository) Create(sale *models.Sale) error {
	return r.db.Create(sale).Error
}

// UpdateStatus cambia el estado de una venta del usuario indicado;
// devuelve las filas afectadas para distinguir venta ajena o inexistente
func (r *GormSaleRepository) UpdateStatus(id, userID uint, status string) (int64, error) {
	result := r.db.Model(&models.Sale{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", status)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
