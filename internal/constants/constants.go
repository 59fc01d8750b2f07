package constants

// Estados de venta. El esquema no impone una matriz de transiciones:
// cualquier estado puede asignarse, pero los terminales salen de la
// vista de pedidos activos.
const (
	SaleStatusPending    = "pending"
	SaleStatusProcessing = "processing"
	SaleStatusShipped    = "shipped"
	SaleStatusDelivered  = "delivered"
	SaleStatusCancelled  = "cancelled"
)

// SaleStatuses estados válidos de una venta
var SaleStatuses = []string{
	SaleStatusPending,
	SaleStatusProcessing,
	SaleStatusShipped,
	SaleStatusDelivered,
	SaleStatusCancelled,
}

// TerminalSaleStatuses estados que excluyen una venta de los pedidos activos
var TerminalSaleStatuses = []string{
	SaleStatusDelivered,
	SaleStatusCancelled,
}

// Tipos de ajuste de inventario
const (
	AdjustmentTypeAdd      = "ADD"
	AdjustmentTypeSubtract = "SUBTRACT"
)

// DefaultLowStockThreshold umbral por defecto de stock bajo (0 < stock <= umbral)
const DefaultLowStockThreshold = 5

// Colas y tareas asíncronas
const (
	QueueDefault = "default"

	TaskSaleStatusEmail = "sale:status_email"
	TaskLowStockAlert   = "inventory:low_stock_alert"
)

// Claves de caché
const (
	RedisPrefixDefault     = "cayro"
	CacheKeyInventoryStats = "inventory:stats"
)

// Idiomas soportados
const (
	LocaleEsMX = "es-MX"
	LocaleEnUS = "en-US"
)

// SupportedLocales idiomas disponibles para mensajes al cliente
var SupportedLocales = []string{LocaleEsMX, LocaleEnUS}

// IsValidSaleStatus indica si el estado pertenece al conjunto válido
func IsValidSaleStatus(status string) bool {
	for _, s := range SaleStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminalSaleStatus indica si el estado es terminal
func IsTerminalSaleStatus(status string) bool {
	for _, s := range TerminalSaleStatuses {
		if s == status {
			return true
		}
	}
	return false
}
