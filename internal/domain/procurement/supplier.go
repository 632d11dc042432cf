package procurement

import (
	"strings"
	"time"

	"github.com/granhotel/backend/internal/domain/shared"
)

// Supplier represents a vendor the hotel purchases stock from
type Supplier struct {
	shared.BaseEntity
	Name          string `gorm:"type:varchar(200);not null;uniqueIndex"`
	ContactPerson string `gorm:"type:varchar(100)"`
	Email         string `gorm:"type:varchar(200);index"`
	Phone         string `gorm:"type:varchar(50)"`
	Address       string `gorm:"type:text"`
	Notes         string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(name, contactPerson, email, phone, address string) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}

	return &Supplier{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		ContactPerson: contactPerson,
		Email:         email,
		Phone:         phone,
		Address:       address,
	}, nil
}

// Update updates the supplier's contact details
func (s *Supplier) Update(name, contactPerson, email, phone, address string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}

	s.Name = name
	s.ContactPerson = contactPerson
	s.Email = email
	s.Phone = phone
	s.Address = address
	s.UpdatedAt = time.Now()

	return nil
}

func validateSupplierName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Supplier name is required")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Supplier name cannot exceed 200 characters")
	}
	return nil
}
