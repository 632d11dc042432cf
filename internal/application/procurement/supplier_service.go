package procurement

import (
	"context"
	"errors"

	"github.com/granhotel/backend/internal/domain/procurement"
	"github.com/granhotel/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierService handles supplier CRUD
type SupplierService struct {
	suppliers procurement.SupplierRepository
	orders    procurement.PurchaseOrderRepository
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(suppliers procurement.SupplierRepository, orders procurement.PurchaseOrderRepository) *SupplierService {
	return &SupplierService{suppliers: suppliers, orders: orders}
}

// Create registers a new supplier. Names are unique.
func (s *SupplierService) Create(ctx context.Context, req SupplierRequest) (*SupplierResponse, error) {
	existing, err := s.suppliers.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "Supplier %q already exists", req.Name)
	}

	supplier, err := procurement.NewSupplier(req.Name, req.ContactPerson, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Update changes a supplier's details
func (s *SupplierService) Update(ctx context.Context, id uuid.UUID, req SupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := supplier.Update(req.Name, req.ContactPerson, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}
	if err := s.suppliers.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID returns one supplier
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.suppliers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List returns suppliers matching the filter
func (s *SupplierService) List(ctx context.Context, filter shared.Filter) ([]SupplierResponse, int64, error) {
	suppliers, err := s.suppliers.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.suppliers.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierResponses(suppliers), total, nil
}

// Delete removes a supplier. Suppliers that own purchase orders cannot be
// deleted; their order history has to stay explainable.
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.suppliers.FindByID(ctx, id); err != nil {
		return err
	}

	owned, err := s.orders.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if owned > 0 {
		return shared.NewDomainErrorf("INVALID_STATE",
			"Supplier has %d purchase orders and cannot be deleted", owned)
	}

	return s.suppliers.Delete(ctx, id)
}
