package repository

import (
	"errors"

	"github.com/cayro-uniformes/internal/models"

	"gorm.io/gorm"
)

// UserRepository acceso a datos de usuarios
type UserRepository interface {
	GetByID(id uint) (*models.User, error)
	GetWithAddresses(id uint) (*models.User, error)
	Exists(id uint) (bool, error)
}

// GormUserRepository implementación GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository crea el repositorio de usuarios
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByID obtiene un usuario por id; nil cuando no existe
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetWithAddresses obtiene un usuario con sus direcciones
func (r *GormUserRepository) GetWithAddresses(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Addresses").First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Exists indica si el usuario existe
func (r *GormUserRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
