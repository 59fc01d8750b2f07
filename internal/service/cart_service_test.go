package service

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Address{},
		&models.Color{}, &models.Size{}, &models.Category{},
		&models.Product{}, &models.ProductVariant{},
		&models.Cart{}, &models.CartItem{},
		&models.Sale{}, &models.SaleDetail{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

var seedColorSeq uint32

func seedVariant(t *testing.T, db *gorm.DB, productName string, stock int) *models.ProductVariant {
	t.Helper()
	// hex_value lleva índice único; cada siembra usa uno distinto
	seq := atomic.AddUint32(&seedColorSeq, 1)
	color := models.Color{Name: "Blanco " + productName, HexValue: fmt.Sprintf("#%06X", seq)}
	if err := db.Create(&color).Error; err != nil {
		t.Fatalf("create color failed: %v", err)
	}
	size := models.Size{Name: "8 " + productName}
	if err := db.Create(&size).Error; err != nil {
		t.Fatalf("create size failed: %v", err)
	}
	category := models.Category{Name: "Camisas " + productName}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	product := models.Product{
		Name:       productName,
		CategoryID: category.ID,
		IsActive:   true,
		Variants: []models.ProductVariant{
			{
				ColorID: color.ID,
				SizeID:  size.ID,
				Price:   models.NewMoneyFromDecimal(decimal.NewFromInt(219)),
				Stock:   stock,
			},
		},
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return &product.Variants[0]
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Name: "Prueba", Surname: "Usuario", Email: email, IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return &user
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(
		repository.NewCartRepository(db),
		repository.NewUserRepository(db),
		repository.NewVariantRepository(db),
	)
}

func TestCartGetOrCreateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "carrito@example.com")

	first, err := svc.GetOrCreate(user.ID)
	if err != nil {
		t.Fatalf("first get-or-create failed: %v", err)
	}
	second, err := svc.GetOrCreate(user.ID)
	if err != nil {
		t.Fatalf("second get-or-create failed: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("cart id want %d got %d", first.ID, second.ID)
	}

	var count int64
	if err := db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("carts want 1 got %d", count)
	}
}

func TestCartGetOrCreateUnknownUser(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)

	if _, err := svc.GetOrCreate(999); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound got %v", err)
	}
}

func TestCartAddItemMergesQuantities(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "fusion@example.com")
	variant := seedVariant(t, db, "Camisa Fusión", 10)

	cart, err := svc.GetOrCreate(user.ID)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}

	if _, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: variant.ID, Quantity: 2}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	item, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: variant.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("merged quantity want 5 got %d", item.Quantity)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("cart lines want 1 got %d", count)
	}
}

func TestCartAddItemStockBoundOnMergedQuantity(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "cota@example.com")
	variant := seedVariant(t, db, "Camisa Cota", 5)

	cart, err := svc.GetOrCreate(user.ID)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}

	if _, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: variant.ID, Quantity: 4}); err != nil {
		t.Fatalf("add within stock failed: %v", err)
	}
	// 4 + 2 > 5: la fusión rebasa el stock
	if _, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: variant.ID, Quantity: 2}); !errors.Is(err, ErrStockExceeded) {
		t.Fatalf("want ErrStockExceeded got %v", err)
	}

	item, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: variant.ID, Quantity: 1})
	if err != nil {
		t.Fatalf("add up to stock failed: %v", err)
	}
	if item.Quantity != 5 {
		t.Fatalf("quantity want 5 got %d", item.Quantity)
	}
}

func TestCartAddItemInvalidInputs(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "invalido@example.com")
	variant := seedVariant(t, db, "Camisa Inválida", 5)

	cart, err := svc.GetOrCreate(user.ID)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}

	if _, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: variant.ID, Quantity: 0}); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity want ErrInvalidQuantity got %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{CartID: 999, ProductVariantID: variant.ID, Quantity: 1}); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("unknown cart want ErrCartNotFound got %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: 999, Quantity: 1}); !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("unknown variant want ErrVariantNotFound got %v", err)
	}
}

func TestCartUpdateItemQuantitySharesStockBound(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "actualiza@example.com")
	variant := seedVariant(t, db, "Camisa Actualiza", 5)

	cart, err := svc.GetOrCreate(user.ID)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}
	item, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: variant.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := svc.UpdateItemQuantity(item.ID, 6); !errors.Is(err, ErrStockExceeded) {
		t.Fatalf("over stock want ErrStockExceeded got %v", err)
	}
	if _, err := svc.UpdateItemQuantity(item.ID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("zero quantity want ErrInvalidQuantity got %v", err)
	}

	updated, err := svc.UpdateItemQuantity(item.ID, 4)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Quantity != 4 {
		t.Fatalf("quantity want 4 got %d", updated.Quantity)
	}
}

func TestCartRemoveItemAllowsReAdd(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "readd@example.com")
	variant := seedVariant(t, db, "Camisa ReAdd", 5)

	cart, err := svc.GetOrCreate(user.ID)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}
	item, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: variant.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.RemoveItem(item.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := svc.RemoveItem(item.ID); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("double remove want ErrCartItemNotFound got %v", err)
	}

	again, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: variant.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("re-add failed: %v", err)
	}
	if again.Quantity != 3 {
		t.Fatalf("re-add quantity want 3 got %d", again.Quantity)
	}
}

func TestCartClearKeepsCartDeleteRemovesIt(t *testing.T) {
	db := openTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "limpieza@example.com")
	variant := seedVariant(t, db, "Camisa Limpieza", 5)

	cart, err := svc.GetOrCreate(user.ID)
	if err != nil {
		t.Fatalf("get-or-create failed: %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{CartID: cart.ID, ProductVariantID: variant.ID, Quantity: 2}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := svc.Clear(cart.ID); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	got, err := svc.GetByUser(user.ID)
	if err != nil {
		t.Fatalf("get by user failed: %v", err)
	}
	if got == nil {
		t.Fatalf("cart should survive clear")
	}
	if len(got.Items) != 0 {
		t.Fatalf("items after clear want 0 got %d", len(got.Items))
	}

	if err := svc.Delete(cart.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	got, err = svc.GetByUser(user.ID)
	if err != nil {
		t.Fatalf("get by user after delete failed: %v", err)
	}
	if got != nil {
		t.Fatalf("cart should be gone after delete")
	}
}
