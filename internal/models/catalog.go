package models

import "time"

// Atributos de catálogo de los uniformes. Todos comparten la misma forma
// CRUD con unicidad por nombre; el recomendador y las variantes los
// referencian por id. El borrado es físico: los índices únicos deben
// liberar el nombre para poder darlo de alta otra vez.

// Color color disponible para variantes
type Color struct {
	ID        uint           `gorm:"primarykey" json:"id"`                       // clave primaria
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`           // nombre único
	HexValue  string         `gorm:"type:varchar(9);uniqueIndex" json:"hex_value"` // valor hexadecimal único
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (Color) TableName() string {
	return "colors"
}

// Size talla disponible para variantes
type Size struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (Size) TableName() string {
	return "sizes"
}

// Material material de confección
type Material struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (Material) TableName() string {
	return "materials"
}

// Category categoría de producto (escolar, deportivo, industrial...)
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (Category) TableName() string {
	return "categories"
}

// Brand marca del producto
type Brand struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (Brand) TableName() string {
	return "brands"
}

// Gender corte del uniforme (caballero, dama, unisex)
type Gender struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (Gender) TableName() string {
	return "genders"
}

// Sleeve tipo de manga
type Sleeve struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (Sleeve) TableName() string {
	return "sleeves"
}

// FabricType tipo de tela
type FabricType struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (FabricType) TableName() string {
	return "fabric_types"
}

// NeckType tipo de cuello
type NeckType struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (NeckType) TableName() string {
	return "neck_types"
}

// SewingThread hilo de costura
type SewingThread struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (SewingThread) TableName() string {
	return "sewing_threads"
}

// Faq pregunta frecuente; la unicidad aplica sobre la pregunta
type Faq struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Question  string         `gorm:"uniqueIndex;not null" json:"question"`
	Answer    string         `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`}

// TableName nombre de tabla
func (Faq) TableName() string {
	return "faqs"
}
