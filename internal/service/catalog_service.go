package service

import (
	"github.com/cayro-uniformes/internal/repository"
)

// UniqueRule regla de unicidad de un atributo: columna y extractor del
// valor a comprobar (p. ej. name, hex_value, question).
type UniqueRule[T any] struct {
	Column string
	Value  func(*T) interface{}
}

// CatalogService servicio CRUD genérico de atributos de catálogo. Un
// solo servicio parametrizado cubre colores, tallas, materiales,
// categorías, telas, cuellos, hilos y preguntas frecuentes con las
// mismas garantías: unicidad al crear, unicidad excluyendo el propio id
// al actualizar y bloqueo de borrado mientras haya referencias.
type CatalogService[T any] struct {
	repo    repository.CatalogRepository[T]
	uniques []UniqueRule[T]
}

// NewCatalogService crea el servicio con sus reglas de unicidad
func NewCatalogService[T any](repo repository.CatalogRepository[T], uniques ...UniqueRule[T]) *CatalogService[T] {
	return &CatalogService[T]{repo: repo, uniques: uniques}
}

// List listado completo
func (s *CatalogService[T]) List() ([]T, error) {
	return s.repo.List()
}

// Get obtiene por id
func (s *CatalogService[T]) Get(id uint) (*T, error) {
	entity, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrNotFound
	}
	return entity, nil
}

// Create crea el registro tras validar unicidad
func (s *CatalogService[T]) Create(entity *T) (*T, error) {
	if err := s.checkUniques(entity, nil); err != nil {
		return nil, err
	}
	if err := s.repo.Create(entity); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameConflict
		}
		return nil, err
	}
	return entity, nil
}

// Update aplica la mutación y revalida unicidad excluyendo el propio id
func (s *CatalogService[T]) Update(id uint, mutate func(*T)) (*T, error) {
	entity, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrNotFound
	}

	mutate(entity)

	if err := s.checkUniques(entity, &id); err != nil {
		return nil, err
	}
	if err := s.repo.Update(entity); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameConflict
		}
		return nil, err
	}
	return entity, nil
}

// Delete elimina el registro; se rechaza mientras existan referencias.
// La traducción de la violación de llave foránea actúa de respaldo si
// una referencia aparece entre el conteo y el borrado.
func (s *CatalogService[T]) Delete(id uint) error {
	entity, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if entity == nil {
		return ErrNotFound
	}

	refs, err := s.repo.CountReferences(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrInUse
	}

	if err := s.repo.Delete(id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return err
	}
	return nil
}

func (s *CatalogService[T]) checkUniques(entity *T, excludeID *uint) error {
	for _, rule := range s.uniques {
		count, err := s.repo.CountByColumn(rule.Column, rule.Value(entity), excludeID)
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrNameConflict
		}
	}
	return nil
}
