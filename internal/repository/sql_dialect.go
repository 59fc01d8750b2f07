package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// dbDialectName nombre del dialecto en uso; sqlite por defecto.
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// likeOperator operador LIKE insensible a mayúsculas según dialecto.
func likeOperator(db *gorm.DB) string {
	switch dbDialectName(db) {
	case "postgres", "postgresql":
		return "ILIKE"
	default:
		// LIKE de sqlite ya es insensible a mayúsculas en ASCII
		return "LIKE"
	}
}

// IsForeignKeyViolation detecta violaciones de llave foránea en sqlite
// (mensaje del driver) y postgres (SQLSTATE 23503). Respaldo para los
// guardas explícitos de borrado.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "FOREIGN KEY constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23503")
}

// IsUniqueViolation detecta violaciones de índice único en ambos dialectos.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
