package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newInventoryService(db *gorm.DB, threshold int) *InventoryService {
	return NewInventoryService(
		repository.NewInventoryRepository(db),
		repository.NewVariantRepository(db),
		nil, // sin cola en pruebas: la alerta se descarta en silencio
		threshold,
		60,
	)
}

func TestInventoryAdjustStockAddAndSubtract(t *testing.T) {
	db := openTestDB(t)
	svc := newInventoryService(db, 5)
	variant := seedVariant(t, db, "Camisa Ajuste", 10)

	result, err := svc.AdjustStock(context.Background(), StockAdjustmentInput{
		VariantID:      variant.ID,
		AdjustmentType: "ADD",
		Quantity:       5,
		Reason:         "recepción de proveedor",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if result.PreviousStock != 10 || result.NewStock != 15 || result.Adjustment != 5 {
		t.Fatalf("add want 10->15 (+5) got %d->%d (%+d)", result.PreviousStock, result.NewStock, result.Adjustment)
	}

	result, err = svc.AdjustStock(context.Background(), StockAdjustmentInput{
		VariantID:      variant.ID,
		AdjustmentType: "SUBTRACT",
		Quantity:       3,
	})
	if err != nil {
		t.Fatalf("subtract failed: %v", err)
	}
	if result.PreviousStock != 15 || result.NewStock != 12 || result.Adjustment != -3 {
		t.Fatalf("subtract want 15->12 (-3) got %d->%d (%+d)", result.PreviousStock, result.NewStock, result.Adjustment)
	}
}

func TestInventorySubtractFloorsAtZero(t *testing.T) {
	db := openTestDB(t)
	svc := newInventoryService(db, 5)
	variant := seedVariant(t, db, "Camisa Piso", 4)

	result, err := svc.AdjustStock(context.Background(), StockAdjustmentInput{
		VariantID:      variant.ID,
		AdjustmentType: "SUBTRACT",
		Quantity:       10,
	})
	if err != nil {
		t.Fatalf("subtract failed: %v", err)
	}
	if result.NewStock != 0 {
		t.Fatalf("floored stock want 0 got %d", result.NewStock)
	}
	// el delta reportado es el efectivamente aplicado, no el pedido
	if result.Adjustment != -4 {
		t.Fatalf("applied adjustment want -4 got %d", result.Adjustment)
	}

	var got models.ProductVariant
	if err := db.First(&got, variant.ID).Error; err != nil {
		t.Fatalf("reload variant failed: %v", err)
	}
	if got.Stock != 0 {
		t.Fatalf("persisted stock want 0 got %d", got.Stock)
	}
}

func TestInventoryAdjustStockRejectsBadInput(t *testing.T) {
	db := openTestDB(t)
	svc := newInventoryService(db, 5)
	variant := seedVariant(t, db, "Camisa Errores", 4)

	if _, err := svc.AdjustStock(context.Background(), StockAdjustmentInput{
		VariantID: variant.ID, AdjustmentType: "MULTIPLY", Quantity: 2,
	}); !errors.Is(err, ErrInvalidAdjustment) {
		t.Fatalf("bad type want ErrInvalidAdjustment got %v", err)
	}
	if _, err := svc.AdjustStock(context.Background(), StockAdjustmentInput{
		VariantID: variant.ID, AdjustmentType: "ADD", Quantity: 0,
	}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity want ErrInvalidQuantity got %v", err)
	}
	if _, err := svc.AdjustStock(context.Background(), StockAdjustmentInput{
		VariantID: 999, AdjustmentType: "ADD", Quantity: 1,
	}); !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("unknown variant want ErrVariantNotFound got %v", err)
	}
}

func TestInventoryDerivedAvailability(t *testing.T) {
	db := openTestDB(t)
	variant := seedVariant(t, db, "Camisa Apartado", 10)

	if err := db.Model(&models.ProductVariant{}).Where("id = ?", variant.ID).
		Update("reserved", 3).Error; err != nil {
		t.Fatalf("set reserved failed: %v", err)
	}

	var got models.ProductVariant
	if err := db.First(&got, variant.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.Available != 7 {
		t.Fatalf("available want 7 got %d", got.Available)
	}
}

func TestInventoryListPaginationAndTotals(t *testing.T) {
	db := openTestDB(t)
	svc := newInventoryService(db, 5)

	category := models.Category{Name: "Inventario"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	color := models.Color{Name: "Color Inventario", HexValue: "#101010"}
	if err := db.Create(&color).Error; err != nil {
		t.Fatalf("create color failed: %v", err)
	}
	var sizes []models.Size
	for i := 0; i < 2; i++ {
		size := models.Size{Name: fmt.Sprintf("Talla Inv %d", i)}
		if err := db.Create(&size).Error; err != nil {
			t.Fatalf("create size failed: %v", err)
		}
		sizes = append(sizes, size)
	}

	for i := 0; i < 25; i++ {
		product := models.Product{
			Name:       fmt.Sprintf("Prenda %02d", i),
			CategoryID: category.ID,
			IsActive:   true,
			Variants: []models.ProductVariant{
				{
					ColorID: color.ID,
					SizeID:  sizes[0].ID,
					Price:   models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
					Stock:   3,
				},
				{
					ColorID: color.ID,
					SizeID:  sizes[1].ID,
					Price:   models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
					Stock:   4,
				},
			},
		}
		if err := db.Create(&product).Error; err != nil {
			t.Fatalf("create product %d failed: %v", i, err)
		}
	}

	rows, total, err := svc.List(repository.InventoryListFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("total want 25 got %d", total)
	}
	if len(rows) != 10 {
		t.Fatalf("page 2 rows want 10 got %d", len(rows))
	}
	for _, row := range rows {
		if row.TotalStock != 7 {
			t.Fatalf("product %s total stock want 7 got %d", row.Name, row.TotalStock)
		}
		if row.TotalAvailable != 7 {
			t.Fatalf("product %s total available want 7 got %d", row.Name, row.TotalAvailable)
		}
	}

	// búsqueda por nombre
	rows, total, err = svc.List(repository.InventoryListFilter{Page: 1, PageSize: 10, Search: "Prenda 03"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("search want 1 row got total=%d rows=%d", total, len(rows))
	}
}

func TestInventoryLowStockListing(t *testing.T) {
	db := openTestDB(t)
	svc := newInventoryService(db, 5)

	seedVariant(t, db, "Prenda Agotada", 0)
	low := seedVariant(t, db, "Prenda Baja", 2)
	seedVariant(t, db, "Prenda Sana", 20)

	variants, err := svc.LowStock(0) // usa el umbral configurado
	if err != nil {
		t.Fatalf("low stock failed: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("low stock want 1 got %d", len(variants))
	}
	if variants[0].ID != low.ID {
		t.Fatalf("low stock want variant %d got %d", low.ID, variants[0].ID)
	}
}

func TestInventoryStatsWithoutCache(t *testing.T) {
	db := openTestDB(t)
	svc := newInventoryService(db, 5)

	seedVariant(t, db, "Prenda Stats A", 2)  // stock bajo
	seedVariant(t, db, "Prenda Stats B", 0)  // agotada
	seedVariant(t, db, "Prenda Stats C", 30) // sana

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.ActiveProducts != 3 {
		t.Fatalf("active products want 3 got %d", stats.ActiveProducts)
	}
	if stats.VariantCount != 3 {
		t.Fatalf("variants want 3 got %d", stats.VariantCount)
	}
	if stats.LowStockVariants != 1 {
		t.Fatalf("low stock variants want 1 got %d", stats.LowStockVariants)
	}
	if stats.OutOfStockVariants != 1 {
		t.Fatalf("out of stock variants want 1 got %d", stats.OutOfStockVariants)
	}
	if stats.TotalStock != 32 {
		t.Fatalf("total stock want 32 got %d", stats.TotalStock)
	}
}
