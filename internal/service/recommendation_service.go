package service

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/cayro-uniformes/internal/logger"
	"github.com/cayro-uniformes/internal/repository"
)

// AssociationRule regla de asociación minada fuera de línea sobre el
// histórico de ventas; el servicio solo la consulta, nunca la recalcula.
type AssociationRule struct {
	Antecedents []string `json:"antecedents"`
	Consequents []string `json:"consequents"`
	Support     float64  `json:"support"`
	Confidence  float64  `json:"confidence"`
	Lift        float64  `json:"lift"`
}

// RecommendationService recomendador por reglas de asociación. Las
// reglas se cargan una sola vez al construir el servicio y son
// inmutables después; todas las peticiones leen la misma tabla.
type RecommendationService struct {
	rules        []AssociationRule
	topN         int
	fallbackSize int
	productRepo  repository.ProductRepository
}

// NewRecommendationService carga las reglas desde el archivo JSON
func NewRecommendationService(rulesFile string, topN, fallbackSize int, productRepo repository.ProductRepository) (*RecommendationService, error) {
	if topN <= 0 {
		topN = 5
	}
	if fallbackSize <= 0 {
		fallbackSize = 8
	}

	data, err := os.ReadFile(rulesFile)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer el archivo de reglas %s: %w", rulesFile, err)
	}
	var rules []AssociationRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("archivo de reglas inválido %s: %w", rulesFile, err)
	}

	logger.Infow("association_rules_loaded",
		"file", rulesFile,
		"rules", len(rules),
	)

	return NewRecommendationServiceFromRules(rules, topN, fallbackSize, productRepo), nil
}

// NewRecommendationServiceFromRules construye el servicio con una tabla
// de reglas ya en memoria
func NewRecommendationServiceFromRules(rules []AssociationRule, topN, fallbackSize int, productRepo repository.ProductRepository) *RecommendationService {
	if topN <= 0 {
		topN = 5
	}
	if fallbackSize <= 0 {
		fallbackSize = 8
	}
	return &RecommendationService{
		rules:        rules,
		topN:         topN,
		fallbackSize: fallbackSize,
		productRepo:  productRepo,
	}
}

// ForProduct recomendaciones para un producto. Un producto desconocido
// (sin reglas y sin fila en catálogo) devuelve lista vacía, nunca error.
func (s *RecommendationService) ForProduct(productName string) ([]string, error) {
	if productName == "" {
		return nil, ErrInvalidInput
	}
	return s.recommend([]string{productName})
}

// ForCart recomendaciones acumuladas sobre todos los productos del
// carrito; el respaldo por categoría usa el primer producto.
func (s *RecommendationService) ForCart(productNames []string) ([]string, error) {
	if len(productNames) == 0 {
		return nil, ErrInvalidInput
	}
	return s.recommend(productNames)
}

func (s *RecommendationService) recommend(inputs []string) ([]string, error) {
	inputSet := make(map[string]bool, len(inputs))
	for _, name := range inputs {
		inputSet[name] = true
	}

	matched := make([]AssociationRule, 0)
	for _, rule := range s.rules {
		for _, antecedent := range rule.Antecedents {
			if inputSet[antecedent] {
				matched = append(matched, rule)
				break
			}
		}
	}

	// mejor lift primero; a igual lift decide la confianza
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Lift != matched[j].Lift {
			return matched[i].Lift > matched[j].Lift
		}
		return matched[i].Confidence > matched[j].Confidence
	})

	seen := make(map[string]bool)
	recommendations := make([]string, 0, s.topN)
	for _, rule := range matched {
		for _, consequent := range rule.Consequents {
			if inputSet[consequent] || seen[consequent] {
				continue
			}
			seen[consequent] = true
			recommendations = append(recommendations, consequent)
			if len(recommendations) >= s.topN {
				return recommendations, nil
			}
		}
	}

	if len(recommendations) > 0 {
		return recommendations, nil
	}
	return s.categoryFallback(inputs)
}

// categoryFallback productos activos de la categoría del primer
// producto, excluyendo los de entrada
func (s *RecommendationService) categoryFallback(inputs []string) ([]string, error) {
	product, err := s.productRepo.GetByName(inputs[0])
	if err != nil {
		return nil, err
	}
	if product == nil {
		// producto desconocido: lista vacía
		return []string{}, nil
	}

	products, err := s.productRepo.ListActiveByCategory(product.CategoryID, inputs, s.fallbackSize)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names, nil
}
