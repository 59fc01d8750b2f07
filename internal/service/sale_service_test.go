package service

import (
	"errors"
	"testing"

	"github.com/cayro-uniformes/internal/constants"
	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newSaleService(db *gorm.DB) *SaleService {
	return NewSaleService(repository.NewSaleRepository(db), nil)
}

func seedSale(t *testing.T, db *gorm.DB, reference string, userID uint, status string) *models.Sale {
	t.Helper()
	sale := models.Sale{
		Reference: reference,
		UserID:    userID,
		Status:    status,
		Subtotal:  models.NewMoneyFromDecimal(decimal.NewFromInt(438)),
		Shipping:  models.NewMoneyFromDecimal(decimal.NewFromInt(79)),
		Total:     models.NewMoneyFromDecimal(decimal.NewFromInt(517)),
	}
	if err := db.Create(&sale).Error; err != nil {
		t.Fatalf("create sale failed: %v", err)
	}
	return &sale
}

func TestSaleUpdateStatusValidatesStatus(t *testing.T) {
	db := openTestDB(t)
	svc := newSaleService(db)
	user := seedUser(t, db, "ventas@example.com")
	sale := seedSale(t, db, "CU-TEST-0001", user.ID, constants.SaleStatusPending)

	if _, err := svc.UpdateStatus(sale.ID, user.ID, "extraviado"); !errors.Is(err, ErrInvalidSaleStatus) {
		t.Fatalf("bad status want ErrInvalidSaleStatus got %v", err)
	}

	updated, err := svc.UpdateStatus(sale.ID, user.ID, constants.SaleStatusShipped)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != constants.SaleStatusShipped {
		t.Fatalf("status want %s got %s", constants.SaleStatusShipped, updated.Status)
	}
}

func TestSaleUpdateStatusScopedToOwner(t *testing.T) {
	db := openTestDB(t)
	svc := newSaleService(db)
	owner := seedUser(t, db, "dueno@example.com")
	other := seedUser(t, db, "ajeno@example.com")
	sale := seedSale(t, db, "CU-TEST-0002", owner.ID, constants.SaleStatusPending)

	// venta de otro usuario: mismo resultado que inexistente
	if _, err := svc.UpdateStatus(sale.ID, other.ID, constants.SaleStatusShipped); !errors.Is(err, ErrSaleNotFound) {
		t.Fatalf("foreign sale want ErrSaleNotFound got %v", err)
	}
	if _, err := svc.UpdateStatus(999, owner.ID, constants.SaleStatusShipped); !errors.Is(err, ErrSaleNotFound) {
		t.Fatalf("missing sale want ErrSaleNotFound got %v", err)
	}

	var got models.Sale
	if err := db.First(&got, sale.ID).Error; err != nil {
		t.Fatalf("reload sale failed: %v", err)
	}
	if got.Status != constants.SaleStatusPending {
		t.Fatalf("status should stay pending, got %s", got.Status)
	}
}

func TestSaleConfirmMarksDelivered(t *testing.T) {
	db := openTestDB(t)
	svc := newSaleService(db)
	user := seedUser(t, db, "confirma@example.com")
	sale := seedSale(t, db, "CU-TEST-0003", user.ID, constants.SaleStatusShipped)

	confirmed, err := svc.Confirm(sale.ID, user.ID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if confirmed.Status != constants.SaleStatusDelivered {
		t.Fatalf("status want delivered got %s", confirmed.Status)
	}
}

func TestSaleActiveOrdersExcludeTerminalStatuses(t *testing.T) {
	db := openTestDB(t)
	svc := newSaleService(db)
	user := seedUser(t, db, "pedidos@example.com")

	seedSale(t, db, "CU-ACT-0001", user.ID, constants.SaleStatusPending)
	seedSale(t, db, "CU-ACT-0002", user.ID, constants.SaleStatusProcessing)
	seedSale(t, db, "CU-ACT-0003", user.ID, constants.SaleStatusShipped)
	seedSale(t, db, "CU-ACT-0004", user.ID, constants.SaleStatusDelivered)
	seedSale(t, db, "CU-ACT-0005", user.ID, constants.SaleStatusCancelled)

	active, err := svc.ActiveOrders()
	if err != nil {
		t.Fatalf("active orders failed: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("active orders want 3 got %d", len(active))
	}
	for _, sale := range active {
		if constants.IsTerminalSaleStatus(sale.Status) {
			t.Fatalf("terminal sale %s leaked into active orders", sale.Reference)
		}
	}
}

func TestSaleListByUserReturnsOnlyOwnSales(t *testing.T) {
	db := openTestDB(t)
	svc := newSaleService(db)
	maria := seedUser(t, db, "maria@example.com")
	jose := seedUser(t, db, "jose@example.com")

	seedSale(t, db, "CU-USR-0001", maria.ID, constants.SaleStatusPending)
	seedSale(t, db, "CU-USR-0002", maria.ID, constants.SaleStatusDelivered)
	seedSale(t, db, "CU-USR-0003", jose.ID, constants.SaleStatusPending)

	sales, err := svc.ListByUser(maria.ID)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("sales want 2 got %d", len(sales))
	}
	for _, sale := range sales {
		if sale.UserID != maria.ID {
			t.Fatalf("foreign sale %s leaked into listing", sale.Reference)
		}
	}
}
