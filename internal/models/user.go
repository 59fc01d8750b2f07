package models

import (
	"time"

	"gorm.io/gorm"
)

// User cliente de la tienda
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`                     // clave primaria
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`   // nombre
	Surname   string         `gorm:"type:varchar(100)" json:"surname"`         // apellidos
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`        // correo electrónico
	Phone     string         `gorm:"type:varchar(20)" json:"phone"`            // teléfono
	IsActive  bool           `gorm:"index" json:"is_active"`                   // cuenta activa; siempre se asigna explícito
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                  // fecha de alta
	UpdatedAt time.Time      `json:"updated_at"`                               // última actualización
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                           // borrado lógico

	Addresses []Address `gorm:"foreignKey:UserID" json:"addresses,omitempty"` // direcciones registradas
}

// TableName nombre de tabla
func (User) TableName() string {
	return "users"
}

// Address dirección de envío de un usuario
type Address struct {
	ID         uint      `gorm:"primarykey" json:"id"`                        // clave primaria
	UserID     uint      `gorm:"not null;index" json:"user_id"`               // usuario propietario
	Street     string    `gorm:"type:varchar(200);not null" json:"street"`    // calle y número
	Colony     string    `gorm:"type:varchar(100)" json:"colony"`             // colonia
	City       string    `gorm:"type:varchar(100);not null" json:"city"`      // ciudad
	State      string    `gorm:"type:varchar(100);not null" json:"state"`     // estado
	PostalCode string    `gorm:"type:varchar(10);not null" json:"postal_code"` // código postal
	Country    string    `gorm:"type:varchar(100);default:'México'" json:"country"`
	IsDefault  bool      `gorm:"default:false;index" json:"is_default"` // dirección predeterminada
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName nombre de tabla
func (Address) TableName() string {
	return "addresses"
}

// DefaultAddress devuelve la dirección predeterminada, o nil si no hay
func (u *User) DefaultAddress() *Address {
	for i := range u.Addresses {
		if u.Addresses[i].IsDefault {
			return &u.Addresses[i]
		}
	}
	return nil
}
