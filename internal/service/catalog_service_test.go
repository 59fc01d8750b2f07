package service

import (
	"errors"
	"testing"

	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/repository"

	"gorm.io/gorm"
)

func newColorService(db *gorm.DB) *CatalogService[models.Color] {
	repo := repository.NewCatalogRepository[models.Color](db, "name ASC",
		repository.ReferenceSpec{Table: "product_variants", Column: "color_id"})
	return NewCatalogService(repo,
		UniqueRule[models.Color]{Column: "name", Value: func(e *models.Color) interface{} { return e.Name }},
		UniqueRule[models.Color]{Column: "hex_value", Value: func(e *models.Color) interface{} { return e.HexValue }},
	)
}

func TestCatalogCreateRejectsDuplicates(t *testing.T) {
	db := openTestDB(t)
	svc := newColorService(db)

	if _, err := svc.Create(&models.Color{Name: "Rojo", HexValue: "#C62828"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(&models.Color{Name: "Rojo", HexValue: "#FF0000"}); !errors.Is(err, ErrNameConflict) {
		t.Fatalf("duplicate name want ErrNameConflict got %v", err)
	}
	if _, err := svc.Create(&models.Color{Name: "Escarlata", HexValue: "#C62828"}); !errors.Is(err, ErrNameConflict) {
		t.Fatalf("duplicate hex want ErrNameConflict got %v", err)
	}
}

func TestCatalogUpdateExcludesOwnRow(t *testing.T) {
	db := openTestDB(t)
	svc := newColorService(db)

	rojo, err := svc.Create(&models.Color{Name: "Rojo", HexValue: "#C62828"})
	if err != nil {
		t.Fatalf("create rojo failed: %v", err)
	}
	if _, err := svc.Create(&models.Color{Name: "Azul", HexValue: "#1F3A5F"}); err != nil {
		t.Fatalf("create azul failed: %v", err)
	}

	// conservar su propio nombre no es conflicto
	updated, err := svc.Update(rojo.ID, func(c *models.Color) {
		c.Name = "Rojo"
		c.HexValue = "#B71C1C"
	})
	if err != nil {
		t.Fatalf("update keeping own name failed: %v", err)
	}
	if updated.HexValue != "#B71C1C" {
		t.Fatalf("hex want #B71C1C got %s", updated.HexValue)
	}

	// tomar el nombre de otro registro sí lo es
	if _, err := svc.Update(rojo.ID, func(c *models.Color) { c.Name = "Azul" }); !errors.Is(err, ErrNameConflict) {
		t.Fatalf("taking another name want ErrNameConflict got %v", err)
	}
}

func TestCatalogGetAndUpdateMissing(t *testing.T) {
	db := openTestDB(t)
	svc := newColorService(db)

	if _, err := svc.Get(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get missing want ErrNotFound got %v", err)
	}
	if _, err := svc.Update(404, func(c *models.Color) { c.Name = "X" }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update missing want ErrNotFound got %v", err)
	}
	if err := svc.Delete(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing want ErrNotFound got %v", err)
	}
}

func TestCatalogDeleteBlockedWhileReferenced(t *testing.T) {
	db := openTestDB(t)
	svc := newColorService(db)

	variant := seedVariant(t, db, "Camisa Referencia", 5)

	// la variante sembrada referencia este color
	if err := svc.Delete(variant.ColorID); !errors.Is(err, ErrInUse) {
		t.Fatalf("delete referenced color want ErrInUse got %v", err)
	}

	libre, err := svc.Create(&models.Color{Name: "Sin uso", HexValue: "#ABCDEF"})
	if err != nil {
		t.Fatalf("create free color failed: %v", err)
	}
	if err := svc.Delete(libre.ID); err != nil {
		t.Fatalf("delete free color failed: %v", err)
	}
	if _, err := svc.Get(libre.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted color should be gone, got %v", err)
	}
}

func TestCatalogDeleteFreesUniqueName(t *testing.T) {
	db := openTestDB(t)
	svc := newColorService(db)

	rojo, err := svc.Create(&models.Color{Name: "Rojo", HexValue: "#C62828"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(rojo.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// el índice único libera nombre y hex tras el borrado
	again, err := svc.Create(&models.Color{Name: "Rojo", HexValue: "#C62828"})
	if err != nil {
		t.Fatalf("re-create after delete failed: %v", err)
	}
	if again.ID == rojo.ID {
		t.Fatalf("re-created color should be a new row")
	}
}
