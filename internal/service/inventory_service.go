package service

import (
	"context"
	"strings"
	"time"

	"github.com/cayro-uniformes/internal/cache"
	"github.com/cayro-uniformes/internal/constants"
	"github.com/cayro-uniformes/internal/logger"
	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/queue"
	"github.com/cayro-uniformes/internal/repository"

	"github.com/shopspring/decimal"
)

// InventoryProductRow producto anotado con los agregados de sus variantes
type InventoryProductRow struct {
	models.Product
	TotalStock     int64        `json:"totalStock"`
	TotalReserved  int64        `json:"totalReserved"`
	TotalAvailable int64        `json:"totalAvailable"`
	TotalValue     models.Money `json:"totalValue"`
}

// InventoryStats estadísticas globales del inventario
type InventoryStats struct {
	ActiveProducts     int64        `json:"active_products"`
	VariantCount       int64        `json:"variant_count"`
	LowStockVariants   int64        `json:"low_stock_variants"`
	OutOfStockVariants int64        `json:"out_of_stock_variants"`
	TotalStock         int64        `json:"total_stock"`
	InventoryValue     models.Money `json:"inventory_value"`
}

// StockAdjustmentInput ajuste manual de stock de una variante
type StockAdjustmentInput struct {
	VariantID      uint
	AdjustmentType string
	Quantity       int
	Reason         string
}

// StockAdjustmentResult resultado del ajuste; Adjustment es el delta
// efectivamente aplicado (SUBTRACT recortado en cero puede aplicar menos
// de lo pedido)
type StockAdjustmentResult struct {
	Variant       *models.ProductVariant `json:"variant"`
	PreviousStock int                    `json:"previous_stock"`
	NewStock      int                    `json:"new_stock"`
	Adjustment    int                    `json:"adjustment"`
	Available     int                    `json:"available"`
	Reason        string                 `json:"reason,omitempty"`
}

// InventoryService reporte de inventario y ajustes de stock
type InventoryService struct {
	invRepo           repository.InventoryRepository
	variantRepo       repository.VariantRepository
	queueClient       *queue.Client
	lowStockThreshold int
	statsCacheTTL     time.Duration
}

// NewInventoryService crea el servicio de inventario
func NewInventoryService(invRepo repository.InventoryRepository, variantRepo repository.VariantRepository, queueClient *queue.Client, lowStockThreshold, statsCacheSeconds int) *InventoryService {
	if lowStockThreshold <= 0 {
		lowStockThreshold = constants.DefaultLowStockThreshold
	}
	if statsCacheSeconds <= 0 {
		statsCacheSeconds = 60
	}
	return &InventoryService{
		invRepo:           invRepo,
		variantRepo:       variantRepo,
		queueClient:       queueClient,
		lowStockThreshold: lowStockThreshold,
		statsCacheTTL:     time.Duration(statsCacheSeconds) * time.Second,
	}
}

// List reporte paginado; cada producto lleva las sumas de sus variantes
func (s *InventoryService) List(filter repository.InventoryListFilter) ([]InventoryProductRow, int64, error) {
	products, total, err := s.invRepo.ListProducts(filter)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	totals, err := s.invRepo.ProductTotals(ids)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]InventoryProductRow, 0, len(products))
	for _, p := range products {
		row := InventoryProductRow{Product: p}
		if t, ok := totals[p.ID]; ok {
			row.TotalStock = t.TotalStock
			row.TotalReserved = t.TotalReserved
			row.TotalAvailable = t.TotalAvailable
			row.TotalValue = models.NewMoneyFromDecimal(decimal.NewFromFloat(t.TotalValue))
		}
		rows = append(rows, row)
	}
	return rows, total, nil
}

// GetStats estadísticas globales con caché de corta vida en Redis
func (s *InventoryService) GetStats(ctx context.Context) (*InventoryStats, error) {
	var cached InventoryStats
	hit, err := cache.GetJSON(ctx, constants.CacheKeyInventoryStats, &cached)
	if err != nil {
		logger.Warnw("inventory_stats_cache_read_failed", "error", err)
	}
	if hit {
		return &cached, nil
	}

	row, err := s.invRepo.GetStats(s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	stats := InventoryStats{
		ActiveProducts:     row.ActiveProducts,
		VariantCount:       row.VariantCount,
		LowStockVariants:   row.LowStockVariants,
		OutOfStockVariants: row.OutOfStockVariants,
		TotalStock:         row.TotalStock,
		InventoryValue:     models.NewMoneyFromDecimal(decimal.NewFromFloat(row.InventoryValue)),
	}

	if err := cache.SetJSON(ctx, constants.CacheKeyInventoryStats, stats, s.statsCacheTTL); err != nil {
		logger.Warnw("inventory_stats_cache_write_failed", "error", err)
	}
	return &stats, nil
}

// AdjustStock aplica un ajuste ADD o SUBTRACT en un solo UPDATE; restar
// nunca deja el stock por debajo de cero. Cuando el resultado cruza el
// umbral de stock bajo se encola una alerta.
func (s *InventoryService) AdjustStock(ctx context.Context, input StockAdjustmentInput) (*StockAdjustmentResult, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var delta int
	switch strings.ToUpper(strings.TrimSpace(input.AdjustmentType)) {
	case constants.AdjustmentTypeAdd:
		delta = input.Quantity
	case constants.AdjustmentTypeSubtract:
		delta = -input.Quantity
	default:
		return nil, ErrInvalidAdjustment
	}

	previous, updated, err := s.variantRepo.AdjustStock(input.VariantID, delta)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrVariantNotFound
	}

	// el agregado de valor cambió, la caché de estadísticas ya no sirve
	if err := cache.Del(ctx, constants.CacheKeyInventoryStats); err != nil {
		logger.Warnw("inventory_stats_cache_invalidate_failed", "error", err)
	}

	if previous > s.lowStockThreshold && updated.Stock <= s.lowStockThreshold {
		if err := s.queueClient.EnqueueLowStockAlert(queue.LowStockAlertPayload{
			ProductVariantID: updated.ID,
			Stock:            updated.Stock,
			Threshold:        s.lowStockThreshold,
		}); err != nil {
			logger.Warnw("low_stock_alert_enqueue_failed",
				"variant_id", updated.ID,
				"error", err,
			)
		}
	}

	return &StockAdjustmentResult{
		Variant:       updated,
		PreviousStock: previous,
		NewStock:      updated.Stock,
		Adjustment:    updated.Stock - previous,
		Available:     updated.Stock - updated.Reserved,
		Reason:        strings.TrimSpace(input.Reason),
	}, nil
}

// LowStock variantes con 0 < stock <= umbral; sin umbral usa el configurado
func (s *InventoryService) LowStock(threshold int) ([]models.ProductVariant, error) {
	if threshold <= 0 {
		threshold = s.lowStockThreshold
	}
	return s.variantRepo.ListLowStock(threshold)
}
