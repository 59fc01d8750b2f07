package service

import (
	"errors"
	"testing"

	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/repository"

	"gorm.io/gorm"
)

func testRules() []AssociationRule {
	return []AssociationRule{
		{Antecedents: []string{"Camisa"}, Consequents: []string{"Pantalón"}, Confidence: 0.70, Lift: 2.4},
		{Antecedents: []string{"Camisa"}, Consequents: []string{"Corbata"}, Confidence: 0.45, Lift: 3.1},
		{Antecedents: []string{"Camisa"}, Consequents: []string{"Suéter"}, Confidence: 0.30, Lift: 1.9},
		{Antecedents: []string{"Pantalón"}, Consequents: []string{"Camisa"}, Confidence: 0.65, Lift: 2.4},
		{Antecedents: []string{"Playera"}, Consequents: []string{"Short"}, Confidence: 0.78, Lift: 3.5},
	}
}

func newRecommenderWithDB(t *testing.T, rules []AssociationRule, topN int) (*RecommendationService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	return NewRecommendationServiceFromRules(rules, topN, 8, repository.NewProductRepository(db)), db
}

func TestRecommendOrdersByLiftThenConfidence(t *testing.T) {
	svc, _ := newRecommenderWithDB(t, testRules(), 5)

	got, err := svc.ForProduct("Camisa")
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	want := []string{"Corbata", "Pantalón", "Suéter"}
	if len(got) != len(want) {
		t.Fatalf("recommendations want %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d want %s got %s", i, want[i], got[i])
		}
	}
}

func TestRecommendEqualLiftDecidedByConfidence(t *testing.T) {
	rules := []AssociationRule{
		{Antecedents: []string{"Camisa"}, Consequents: []string{"Cinturón"}, Confidence: 0.40, Lift: 2.0},
		{Antecedents: []string{"Camisa"}, Consequents: []string{"Calcetas"}, Confidence: 0.60, Lift: 2.0},
	}
	svc, _ := newRecommenderWithDB(t, rules, 5)

	got, err := svc.ForProduct("Camisa")
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(got) != 2 || got[0] != "Calcetas" || got[1] != "Cinturón" {
		t.Fatalf("want [Calcetas Cinturón] got %v", got)
	}
}

func TestRecommendForCartDeduplicatesAndExcludesInputs(t *testing.T) {
	svc, _ := newRecommenderWithDB(t, testRules(), 5)

	// Camisa y Pantalón se recomiendan mutuamente; ninguno debe aparecer
	got, err := svc.ForCart([]string{"Camisa", "Pantalón"})
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	for _, name := range got {
		if name == "Camisa" || name == "Pantalón" {
			t.Fatalf("input product leaked into recommendations: %v", got)
		}
	}
	seen := map[string]int{}
	for _, name := range got {
		seen[name]++
		if seen[name] > 1 {
			t.Fatalf("duplicated recommendation %s in %v", name, got)
		}
	}
}

func TestRecommendCapsAtTopN(t *testing.T) {
	svc, _ := newRecommenderWithDB(t, testRules(), 2)

	got, err := svc.ForProduct("Camisa")
	if err != nil {
		t.Fatalf("recommend failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("topN cap want 2 got %d (%v)", len(got), got)
	}
	if got[0] != "Corbata" || got[1] != "Pantalón" {
		t.Fatalf("want best two by lift got %v", got)
	}
}

func TestRecommendFallsBackToCategory(t *testing.T) {
	svc, db := newRecommenderWithDB(t, nil, 5)

	category := models.Category{Name: "Deportivos"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	products := []models.Product{
		{Name: "Playera Deportiva", CategoryID: category.ID, IsActive: true},
		{Name: "Short Deportivo", CategoryID: category.ID, IsActive: true},
		{Name: "Pants Deportivo", CategoryID: category.ID, IsActive: true},
		{Name: "Sudadera Descontinuada", CategoryID: category.ID, IsActive: false},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("create product failed: %v", err)
		}
	}

	got, err := svc.ForProduct("Playera Deportiva")
	if err != nil {
		t.Fatalf("fallback failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("fallback want 2 got %v", got)
	}
	for _, name := range got {
		if name == "Playera Deportiva" {
			t.Fatalf("input product leaked into fallback: %v", got)
		}
		if name == "Sudadera Descontinuada" {
			t.Fatalf("inactive product leaked into fallback: %v", got)
		}
	}
}

func TestRecommendUnknownProductReturnsEmpty(t *testing.T) {
	svc, _ := newRecommenderWithDB(t, testRules(), 5)

	got, err := svc.ForProduct("Producto Fantasma")
	if err != nil {
		t.Fatalf("unknown product should not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("unknown product want empty got %v", got)
	}
}

func TestRecommendRejectsEmptyInput(t *testing.T) {
	svc, _ := newRecommenderWithDB(t, testRules(), 5)

	if _, err := svc.ForProduct(""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty product want ErrInvalidInput got %v", err)
	}
	if _, err := svc.ForCart(nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty cart want ErrInvalidInput got %v", err)
	}
}
