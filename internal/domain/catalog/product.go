package catalog

import (
	"strings"
	"time"

	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable or stockable item in the hotel catalog:
// minibar goods, spa products, restaurant supplies and the like.
type Product struct {
	shared.BaseEntity
	SKU         string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Taxable     bool            `gorm:"not null;default:true"`
	IsActive    bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product
func NewProduct(sku, name string, price decimal.Decimal) (*Product, error) {
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		SKU:        strings.ToUpper(sku),
		Name:       name,
		Price:      price,
		Taxable:    true,
		IsActive:   true,
	}, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()

	return nil
}

// SetPrice updates the catalog price
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}

	p.Price = price
	p.UpdatedAt = time.Now()

	return nil
}

// Activate makes the product available again
func (p *Product) Activate() {
	p.IsActive = true
	p.UpdatedAt = time.Now()
}

// Deactivate retires the product from sale without deleting its history
func (p *Product) Deactivate() {
	p.IsActive = false
	p.UpdatedAt = time.Now()
}

func validateSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product SKU is required")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_INPUT", "Product SKU cannot exceed 50 characters")
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Product name cannot exceed 200 characters")
	}
	return nil
}
