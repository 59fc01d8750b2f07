package service

import (
	"github.com/cayro-uniformes/internal/models"
	"github.com/cayro-uniformes/internal/repository"
)

// VariantInput variante anidada al crear o actualizar un producto
type VariantInput struct {
	ID       uint         `json:"id"`
	ColorID  uint         `json:"color_id"`
	SizeID   uint         `json:"size_id"`
	Price    models.Money `json:"price"`
	Stock    int          `json:"stock"`
	Reserved int          `json:"reserved"`
	Barcode  string       `json:"barcode"`
	Images   []string     `json:"images"`
}

// ProductInput datos de alta o edición de un producto
type ProductInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CategoryID  uint           `json:"category_id"`
	BrandID     *uint          `json:"brand_id"`
	GenderID    *uint          `json:"gender_id"`
	SleeveID    *uint          `json:"sleeve_id"`
	IsActive    *bool          `json:"is_active"`
	Variants    []VariantInput `json:"variants"`
}

// ProductService catálogo de productos con variantes color×talla
type ProductService struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
}

// NewProductService crea el servicio de productos
func NewProductService(productRepo repository.ProductRepository, variantRepo repository.VariantRepository) *ProductService {
	return &ProductService{productRepo: productRepo, variantRepo: variantRepo}
}

// List listado paginado con filtros
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get detalle de producto con variantes
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create da de alta un producto con sus variantes anidadas
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if input.Name == "" || input.CategoryID == 0 {
		return nil, ErrInvalidInput
	}
	count, err := s.productRepo.CountByName(input.Name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameConflict
	}

	if err := validateVariantInputs(input.Variants); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		BrandID:     input.BrandID,
		GenderID:    input.GenderID,
		SleeveID:    input.SleeveID,
		IsActive:    true,
		Variants:    buildVariants(input.Variants),
	}
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Create(&product); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrVariantConflict
		}
		return nil, err
	}
	return s.Get(product.ID)
}

// Update edita el producto y sincroniza sus variantes
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if input.Name != "" {
		count, err := s.productRepo.CountByName(input.Name, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrNameConflict
		}
		product.Name = input.Name
	}
	if err := validateVariantInputs(input.Variants); err != nil {
		return nil, err
	}

	product.Description = input.Description
	if input.CategoryID != 0 {
		product.CategoryID = input.CategoryID
	}
	product.BrandID = input.BrandID
	product.GenderID = input.GenderID
	product.SleeveID = input.SleeveID
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}

	if err := s.productRepo.Update(product); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrNameConflict
		}
		return nil, err
	}

	if input.Variants != nil {
		if err := s.variantRepo.SyncForProduct(id, buildVariants(input.Variants)); err != nil {
			if repository.IsUniqueViolation(err) {
				return nil, ErrVariantConflict
			}
			return nil, err
		}
	}
	return s.Get(id)
}

// SetActive activa o desactiva el producto en tienda
func (s *ProductService) SetActive(id uint, active bool) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.SetActive(id, active)
}

// Delete elimina el producto; se rechaza si alguna variante aparece en ventas
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}

	refs, err := s.productRepo.CountSaleReferences(id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return ErrProductInUse
	}

	if err := s.productRepo.Delete(id); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return ErrProductInUse
		}
		return err
	}
	return nil
}

func validateVariantInputs(variants []VariantInput) error {
	seen := make(map[[2]uint]bool, len(variants))
	for _, v := range variants {
		if v.ColorID == 0 || v.SizeID == 0 {
			return ErrInvalidInput
		}
		if v.Stock < 0 || v.Reserved < 0 {
			return ErrInvalidInput
		}
		key := [2]uint{v.ColorID, v.SizeID}
		if seen[key] {
			return ErrVariantConflict
		}
		seen[key] = true
	}
	return nil
}

func buildVariants(inputs []VariantInput) []models.ProductVariant {
	variants := make([]models.ProductVariant, 0, len(inputs))
	for _, v := range inputs {
		variants = append(variants, models.ProductVariant{
			ID:       v.ID,
			ColorID:  v.ColorID,
			SizeID:   v.SizeID,
			Price:    v.Price,
			Stock:    v.Stock,
			Reserved: v.Reserved,
			Barcode:  v.Barcode,
			Images:   models.StringArray(v.Images),
		})
	}
	return variants
}
