package catalog

import (
	"context"
	"errors"

	"github.com/granhotel/backend/internal/domain/catalog"
	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductService handles catalog CRUD. The catalog is a collaborator for
// the stock and procurement modules; pricing and activation live here.
type ProductService struct {
	products catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(products catalog.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create registers a product. SKUs are unique.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	existing, err := s.products.FindBySKU(ctx, req.SKU)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Product with SKU %q already exists", req.SKU)
	}

	product, err := catalog.NewProduct(req.SKU, req.Name, req.Price)
	if err != nil {
		return nil, err
	}
	product.Description = req.Description
	if req.Taxable != nil {
		product.Taxable = *req.Taxable
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// Update changes a product's details and price
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Update(req.Name, req.Description); err != nil {
		return nil, err
	}
	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.Taxable != nil {
		product.Taxable = *req.Taxable
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// SetActive activates or retires a product
func (s *ProductService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if active {
		product.Activate()
	} else {
		product.Deactivate()
	}
	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID returns one product
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) ([]ProductResponse, int64, error) {
	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.products.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToProductResponses(products), total, nil
}

// CreateProductRequest registers a catalog product
type CreateProductRequest struct {
	SKU         string          `json:"sku" binding:"required,max=50"`
	Name        string          `json:"name" binding:"required,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Taxable     *bool           `json:"taxable"`
}

// UpdateProductRequest changes a catalog product
type UpdateProductRequest struct {
	Name        string           `json:"name" binding:"required,max=200"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Taxable     *bool            `json:"taxable"`
}
