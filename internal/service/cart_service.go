package service

import (
	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/repository"
)

// AddCartItemInput entrada para agregar una variante al carrito
type AddCartItemInput struct {
	CartID           uint `json:"cart_id"`
	ProductVariantID uint `json:"product_variant_id"`
	Quantity         int  `json:"quantity"`
}

// CartService motor del carrito: un carrito por usuario, fusión de
// cantidades al repetir variante y cota de stock compartida entre
// agregar y actualizar.
type CartService struct {
	cartRepo    repository.CartRepository
	userRepo    repository.UserRepository
	variantRepo repository.VariantRepository
}

// NewCartService crea el servicio del carrito
func NewCartService(cartRepo repository.CartRepository, userRepo repository.UserRepository, variantRepo repository.VariantRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		variantRepo: variantRepo,
	}
}

// GetOrCreate devuelve el carrito del usuario, creándolo si no existe.
// Repetir la llamada devuelve el mismo carrito.
func (s *CartService) GetOrCreate(userID uint) (*models.Cart, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	exists, err := s.userRepo.Exists(userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	cart, err := s.cartRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	cart = &models.Cart{UserID: userID}
	if err := s.cartRepo.Create(cart); err != nil {
		// carrera con otra petición del mismo usuario: el índice único
		// ya creó el carrito, se devuelve el existente
		if repository.IsUniqueViolation(err) {
			return s.cartRepo.GetByUserID(userID)
		}
		return nil, err
	}
	return cart, nil
}

// GetByUser carrito completo del usuario, o nil si aún no tiene
func (s *CartService) GetByUser(userID uint) (*models.Cart, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.cartRepo.GetDeepByUserID(userID)
}

// AddItem agrega una variante fusionando cantidades; la cota de stock
// se valida sobre la cantidad ya fusionada
func (s *CartService) AddItem(input AddCartItemInput) (*models.CartItem, error) {
	if input.CartID == 0 || input.ProductVariantID == 0 {
		return nil, ErrInvalidInput
	}
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.cartRepo.GetByID(input.CartID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}

	variant, err := s.variantRepo.GetByID(input.ProductVariantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrVariantNotFound
	}

	item, err := s.cartRepo.MergeAddItem(input.CartID, input.ProductVariantID, input.Quantity, func(merged int) error {
		return ValidateStockBound(merged, variant.Stock)
	})
	if err != nil {
		return nil, err
	}

	return s.cartRepo.GetItem(item.ID)
}

// UpdateItemQuantity fija la cantidad exacta de la línea, con la misma
// cota de stock que agregar
func (s *CartService) UpdateItemQuantity(itemID uint, quantity int) (*models.CartItem, error) {
	item, err := s.cartRepo.GetItem(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	variant, err := s.variantRepo.GetByID(item.ProductVariantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, ErrVariantNotFound
	}

	if err := ValidateStockBound(quantity, variant.Stock); err != nil {
		return nil, err
	}
	if err := s.cartRepo.UpdateItemQuantity(itemID, quantity); err != nil {
		return nil, err
	}
	return s.cartRepo.GetItem(itemID)
}

// RemoveItem elimina una línea del carrito
func (s *CartService) RemoveItem(itemID uint) error {
	item, err := s.cartRepo.GetItem(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrCartItemNotFound
	}
	return s.cartRepo.DeleteItem(itemID)
}

// Clear vacía el carrito conservándolo
func (s *CartService) Clear(cartID uint) error {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return err
	}
	if cart == nil {
		return ErrCartNotFound
	}
	return s.cartRepo.ClearItems(cartID)
}

// Delete elimina líneas y carrito en una transacción
func (s *CartService) Delete(cartID uint) error {
	cart, err := s.cartRepo.GetByID(cartID)
	if err != nil {
		return err
	}
	if cart == nil {
		return ErrCartNotFound
	}
	return s.cartRepo.DeleteCart(cartID)
}
