package repository

// ProductListFilter filtros del listado de productos
type ProductListFilter struct {
	Page       int
	PageSize   int
	CategoryID uint
	Search     string
	OnlyActive bool
}

// InventoryListFilter filtros del reporte de inventario
type InventoryListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// SaleListFilter filtros del listado de ventas
type SaleListFilter struct {
	Page       int
	PageSize   int
	UserID     uint
	Status     string
	OnlyActive bool // excluye estados terminales
}
