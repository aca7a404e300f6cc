package catalog

import (
	"errors"
	"strings"
	"time"

	"bagtrack/internal/domain/location"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errors.New("service name is required")
	ErrEmptyCategory      = errors.New("service category is required")
	ErrNegativePrice      = errors.New("unit price cannot be negative")
	ErrUnknownServiceItem = errors.New("unknown service item")
)

// ServiceItem is an administrator-managed catalog entry. Its unit price is
// read at order time and snapshotted into the bag; edits here never change
// an already-priced order.
type ServiceItem struct {
	id           uuid.UUID
	name         location.LocalizedText
	category     string
	unitPrice    decimal.Decimal
	displayOrder int
	isActive     bool
	createdAt    time.Time
}

func NewServiceItem(
	name location.LocalizedText,
	category string,
	unitPrice decimal.Decimal,
	displayOrder int,
) (*ServiceItem, error) {
	if name.IsEmpty() {
		return nil, ErrEmptyName
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}

	return &ServiceItem{
		id:           uuid.New(),
		name:         name,
		category:     category,
		unitPrice:    unitPrice,
		displayOrder: displayOrder,
		isActive:     true,
	}, nil
}

func ReconstructServiceItem(
	id uuid.UUID,
	name location.LocalizedText,
	category string,
	unitPrice decimal.Decimal,
	displayOrder int,
	isActive bool,
	createdAt time.Time,
) *ServiceItem {
	return &ServiceItem{
		id:           id,
		name:         name,
		category:     category,
		unitPrice:    unitPrice,
		displayOrder: displayOrder,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (s *ServiceItem) ID() uuid.UUID                { return s.id }
func (s *ServiceItem) Name() location.LocalizedText { return s.name }
func (s *ServiceItem) Category() string             { return s.category }
func (s *ServiceItem) UnitPrice() decimal.Decimal   { return s.unitPrice }
func (s *ServiceItem) DisplayOrder() int            { return s.displayOrder }
func (s *ServiceItem) IsActive() bool               { return s.isActive }
func (s *ServiceItem) CreatedAt() time.Time         { return s.createdAt }
