package admin

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cayro-uniformes/internal/http/response"
	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/provider"
	"github.com/cayro-uniformes/internal/repository"
	"github.com/cayro-uniformes/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupInventoryRouter(t *testing.T) (*gin.Engine, *models.Product) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Color{}, &models.Size{}, &models.Category{},
		&models.Product{}, &models.ProductVariant{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	color := models.Color{Name: "Blanco Inventario", HexValue: "#FEFEFE"}
	if err := db.Create(&color).Error; err != nil {
		t.Fatalf("create color failed: %v", err)
	}
	size := models.Size{Name: "8 Inventario"}
	if err := db.Create(&size).Error; err != nil {
		t.Fatalf("create size failed: %v", err)
	}
	category := models.Category{Name: "Camisas Inventario"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		Name:       "Camisa Inventario",
		CategoryID: category.ID,
		IsActive:   true,
		Variants: []models.ProductVariant{
			{
				ColorID:  color.ID,
				SizeID:   size.ID,
				Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(219)),
				Stock:    9,
				Reserved: 2,
			},
		},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	h := New(&provider.Container{
		ProductService: service.NewProductService(
			repository.NewProductRepository(db),
			repository.NewVariantRepository(db),
		),
	})
	r := gin.New()
	r.GET("/admin/inventory/product/:id", h.GetInventoryProduct)
	r.GET("/admin/inventory/product/:id/variants", h.ListInventoryProductVariants)
	return r, &product
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (int, json.RawMessage) {
	t.Helper()
	var envelope struct {
		StatusCode int             `json:"status_code"`
		Data       json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response failed: %v", err)
	}
	return envelope.StatusCode, envelope.Data
}

func TestGetInventoryProduct(t *testing.T) {
	r, product := setupInventoryRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/inventory/product/1", nil)
	r.ServeHTTP(w, req)

	code, data := decodeEnvelope(t, w)
	if code != 0 {
		t.Fatalf("status code want 0 got %d", code)
	}
	var got models.Product
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode product failed: %v", err)
	}
	if got.Name != product.Name {
		t.Fatalf("product name want %s got %s", product.Name, got.Name)
	}
	if len(got.Variants) != 1 {
		t.Fatalf("variants want 1 got %d", len(got.Variants))
	}
}

func TestListInventoryProductVariants(t *testing.T) {
	r, _ := setupInventoryRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/inventory/product/1/variants", nil)
	r.ServeHTTP(w, req)

	code, data := decodeEnvelope(t, w)
	if code != 0 {
		t.Fatalf("status code want 0 got %d", code)
	}
	var variants []models.ProductVariant
	if err := json.Unmarshal(data, &variants); err != nil {
		t.Fatalf("decode variants failed: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("variants want 1 got %d", len(variants))
	}
	if variants[0].Available != 7 {
		t.Fatalf("available want 7 got %d", variants[0].Available)
	}
}

func TestGetInventoryProductMissing(t *testing.T) {
	r, _ := setupInventoryRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/inventory/product/404", nil)
	r.ServeHTTP(w, req)

	code, _ := decodeEnvelope(t, w)
	if code != response.CodeNotFound {
		t.Fatalf("status code want %d got %d", response.CodeNotFound, code)
	}
}
