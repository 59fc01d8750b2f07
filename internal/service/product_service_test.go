package service

import (
	"errors"
	"testing"

	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newProductService(db *gorm.DB) *ProductService {
	return NewProductService(
		repository.NewProductRepository(db),
		repository.NewVariantRepository(db),
	)
}

type productFixture struct {
	categoryID uint
	colorID    uint
	sizeA      uint
	sizeB      uint
}

func seedProductFixture(t *testing.T, db *gorm.DB) productFixture {
	t.Helper()
	category := models.Category{Name: "Camisas Fixture"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	color := models.Color{Name: "Azul Fixture", HexValue: "#0000FE"}
	if err := db.Create(&color).Error; err != nil {
		t.Fatalf("create color failed: %v", err)
	}
	sizeA := models.Size{Name: "Fixture 8"}
	if err := db.Create(&sizeA).Error; err != nil {
		t.Fatalf("create size A failed: %v", err)
	}
	sizeB := models.Size{Name: "Fixture 10"}
	if err := db.Create(&sizeB).Error; err != nil {
		t.Fatalf("create size B failed: %v", err)
	}
	return productFixture{categoryID: category.ID, colorID: color.ID, sizeA: sizeA.ID, sizeB: sizeB.ID}
}

func TestProductCreateWithNestedVariants(t *testing.T) {
	db := openTestDB(t)
	svc := newProductService(db)
	fx := seedProductFixture(t, db)

	product, err := svc.Create(ProductInput{
		Name:       "Camisa Nueva",
		CategoryID: fx.categoryID,
		Variants: []VariantInput{
			{ColorID: fx.colorID, SizeID: fx.sizeA, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(219)), Stock: 10},
			{ColorID: fx.colorID, SizeID: fx.sizeB, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(239)), Stock: 8},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(product.Variants) != 2 {
		t.Fatalf("variants want 2 got %d", len(product.Variants))
	}
	if !product.IsActive {
		t.Fatalf("new product should default to active")
	}

	// segundo producto con el mismo nombre
	if _, err := svc.Create(ProductInput{Name: "Camisa Nueva", CategoryID: fx.categoryID}); !errors.Is(err, ErrNameConflict) {
		t.Fatalf("duplicate name want ErrNameConflict got %v", err)
	}
}

func TestProductCreateHonorsInactiveFlag(t *testing.T) {
	db := openTestDB(t)
	svc := newProductService(db)
	fx := seedProductFixture(t, db)

	inactive := false
	product, err := svc.Create(ProductInput{
		Name:       "Camisa Oculta",
		CategoryID: fx.categoryID,
		IsActive:   &inactive,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.IsActive {
		t.Fatalf("product created inactive came back active")
	}

	var stored models.Product
	if err := db.First(&stored, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("inactive flag lost on insert")
	}

	// el respaldo por categoría solo considera activos
	fallback, err := repository.NewProductRepository(db).ListActiveByCategory(fx.categoryID, nil, 8)
	if err != nil {
		t.Fatalf("list active by category failed: %v", err)
	}
	for _, p := range fallback {
		if p.ID == product.ID {
			t.Fatalf("inactive product leaked into category fallback")
		}
	}
}

func TestProductCreateRejectsDuplicateColorSizePair(t *testing.T) {
	db := openTestDB(t)
	svc := newProductService(db)
	fx := seedProductFixture(t, db)

	_, err := svc.Create(ProductInput{
		Name:       "Camisa Duplicada",
		CategoryID: fx.categoryID,
		Variants: []VariantInput{
			{ColorID: fx.colorID, SizeID: fx.sizeA, Stock: 5},
			{ColorID: fx.colorID, SizeID: fx.sizeA, Stock: 7},
		},
	})
	if !errors.Is(err, ErrVariantConflict) {
		t.Fatalf("duplicate pair want ErrVariantConflict got %v", err)
	}
}

func TestProductUpdateSyncsVariants(t *testing.T) {
	db := openTestDB(t)
	svc := newProductService(db)
	fx := seedProductFixture(t, db)

	product, err := svc.Create(ProductInput{
		Name:       "Camisa Sincronizada",
		CategoryID: fx.categoryID,
		Variants: []VariantInput{
			{ColorID: fx.colorID, SizeID: fx.sizeA, Stock: 10},
			{ColorID: fx.colorID, SizeID: fx.sizeB, Stock: 8},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	kept := product.Variants[0]
	updated, err := svc.Update(product.ID, ProductInput{
		Variants: []VariantInput{
			{ID: kept.ID, ColorID: kept.ColorID, SizeID: kept.SizeID, Stock: 12},
		},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(updated.Variants) != 1 {
		t.Fatalf("variants after sync want 1 got %d", len(updated.Variants))
	}
	if updated.Variants[0].Stock != 12 {
		t.Fatalf("kept variant stock want 12 got %d", updated.Variants[0].Stock)
	}

	var count int64
	if err := db.Model(&models.ProductVariant{}).Where("product_id = ?", product.ID).Count(&count).Error; err != nil {
		t.Fatalf("count variants failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("persisted variants want 1 got %d", count)
	}
}

func TestProductSetActiveTogglesVisibility(t *testing.T) {
	db := openTestDB(t)
	svc := newProductService(db)
	fx := seedProductFixture(t, db)

	product, err := svc.Create(ProductInput{Name: "Camisa Visible", CategoryID: fx.categoryID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.SetActive(product.ID, false); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	got, err := svc.Get(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.IsActive {
		t.Fatalf("product should be inactive")
	}

	// listado de tienda solo activos
	listed, total, err := svc.List(repository.ProductListFilter{Page: 1, PageSize: 10, OnlyActive: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 || len(listed) != 0 {
		t.Fatalf("inactive product leaked into store listing: total=%d", total)
	}
}

func TestProductDeleteBlockedBySaleHistory(t *testing.T) {
	db := openTestDB(t)
	svc := newProductService(db)
	fx := seedProductFixture(t, db)
	user := seedUser(t, db, "historial@example.com")

	product, err := svc.Create(ProductInput{
		Name:       "Camisa Vendida",
		CategoryID: fx.categoryID,
		Variants: []VariantInput{
			{ColorID: fx.colorID, SizeID: fx.sizeA, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(219)), Stock: 10},
		},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	sale := models.Sale{
		Reference: "CU-DEL-0001",
		UserID:    user.ID,
		Status:    "delivered",
		Details: []models.SaleDetail{
			{
				ProductVariantID: product.Variants[0].ID,
				Quantity:         1,
				UnitPrice:        product.Variants[0].Price,
			},
		},
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("create sale failed: %v", err)
	}

	if err := svc.Delete(product.ID); !errors.Is(err, ErrProductInUse) {
		t.Fatalf("delete sold product want ErrProductInUse got %v", err)
	}

	fresh, err := svc.Create(ProductInput{Name: "Camisa Sin Ventas", CategoryID: fx.categoryID})
	if err != nil {
		t.Fatalf("create fresh failed: %v", err)
	}
	if err := svc.Delete(fresh.ID); err != nil {
		t.Fatalf("delete fresh failed: %v", err)
	}
	if _, err := svc.Get(fresh.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("deleted product should be gone, got %v", err)
	}
}

func TestProductDeleteFreesName(t *testing.T) {
	db := openTestDB(t)
	svc := newProductService(db)
	fx := seedProductFixture(t, db)

	product, err := svc.Create(ProductInput{Name: "Camisa Reciclada", CategoryID: fx.categoryID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// el nombre queda libre para una nueva alta
	if _, err := svc.Create(ProductInput{Name: "Camisa Reciclada", CategoryID: fx.categoryID}); err != nil {
		t.Fatalf("re-create after delete failed: %v", err)
	}
}
