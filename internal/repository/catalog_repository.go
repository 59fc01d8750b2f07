package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ReferenceSpec describe una tabla que referencia al atributo; se usa
// para bloquear el borrado mientras existan filas que lo apunten.
type ReferenceSpec struct {
	Table  string
	Column string
}

// CatalogRepository acceso a datos genérico de los atributos de catálogo
// (colores, tallas, materiales, categorías, telas, cuellos, hilos, FAQ).
// Una sola implementación reemplaza los ocho CRUD repetidos.
type CatalogRepository[T any] interface {
	List() ([]T, error)
	GetByID(id uint) (*T, error)
	Create(entity *T) error
	Update(entity *T) error
	Delete(id uint) error
	CountByColumn(column string, value interface{}, excludeID *uint) (int64, error)
	CountReferences(id uint) (int64, error)
}

// GormCatalogRepository implementación GORM
type GormCatalogRepository[T any] struct {
	db      *gorm.DB
	orderBy string
	refs    []ReferenceSpec
}

// NewCatalogRepository crea el repositorio; orderBy define el orden de
// listado (p. ej. "name ASC") y refs las tablas que bloquean el borrado.
func NewCatalogRepository[T any](db *gorm.DB, orderBy string, refs ...ReferenceSpec) *GormCatalogRepository[T] {
	if orderBy == "" {
		orderBy = "id ASC"
	}
	return &GormCatalogRepository[T]{db: db, orderBy: orderBy, refs: refs}
}

// List listado completo en el orden configurado
func (r *GormCatalogRepository[T]) List() ([]T, error) {
	var entities []T
	if err := r.db.Order(r.orderBy).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetByID obtiene por id; nil cuando no existe
func (r *GormCatalogRepository[T]) GetByID(id uint) (*T, error) {
	var entity T
	if err := r.db.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Create inserta el registro
func (r *GormCatalogRepository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

// Update persiste el registro completo
func (r *GormCatalogRepository[T]) Update(entity *T) error {
	return r.db.Save(entity).Error
}

// Delete elimina por id; el borrado es físico, la verificación de
// referencias corre antes en el servicio
func (r *GormCatalogRepository[T]) Delete(id uint) error {
	var entity T
	return r.db.Delete(&entity, id).Error
}

// CountByColumn cuenta registros con el valor dado en la columna,
// excluyendo opcionalmente un id (para unicidad al actualizar).
func (r *GormCatalogRepository[T]) CountByColumn(column string, value interface{}, excludeID *uint) (int64, error) {
	var entity T
	var count int64
	query := r.db.Model(&entity).Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountReferences cuenta filas en las tablas configuradas que apuntan
// al registro; cero tablas configuradas significa borrado libre.
func (r *GormCatalogRepository[T]) CountReferences(id uint) (int64, error) {
	var total int64
	for _, ref := range r.refs {
		var count int64
		if err := r.db.Table(ref.Table).Where(ref.Column+" = ?", id).Count(&count).Error; err != nil {
			return 0, err
		}
		total += count
	}
	return total, nil
}
