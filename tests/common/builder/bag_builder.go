//go:build unit || e2e

package builder

import (
	"time"

	"bagtrack/internal/domain/bag"
	"bagtrack/internal/domain/catalog"
	"bagtrack/internal/domain/location"
	"bagtrack/internal/pkg/clock"
	"bagtrack/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BagBuilder assembles a bag through the domain factory with a deterministic
// clock, one active pickup/delivery pair and a small catalog.
type BagBuilder struct {
	CustomerID uuid.UUID
	TaxRate    string
	Now        time.Time
	Items      []ItemSpec

	pickup   *location.Location
	delivery *location.Location
	services map[uuid.UUID]*catalog.ServiceItem
}

type ItemSpec struct {
	UnitPrice string
	Quantity  int
}

func NewBagBuilder() *BagBuilder {
	return &BagBuilder{
		CustomerID: uuid.New(),
		TaxRate:    "0.15",
		Now:        time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Items: []ItemSpec{
			{UnitPrice: "10.00", Quantity: 2},
			{UnitPrice: "5.00", Quantity: 1},
		},
	}
}

func (b *BagBuilder) With(mutate func(*BagBuilder)) *BagBuilder {
	mutate(b)
	return b
}

func (b *BagBuilder) WithItems(items ...ItemSpec) *BagBuilder {
	b.Items = items
	return b
}

func (b *BagBuilder) Pickup() *location.Location   { return b.pickup }
func (b *BagBuilder) Delivery() *location.Location { return b.delivery }

func (b *BagBuilder) BuildDomain() (*bag.Bag, error) {
	var err error
	if b.pickup == nil {
		b.pickup, err = NewLocationBuilder().With(func(lb *LocationBuilder) { lb.NameEn = "Pickup point" }).BuildDomain()
		if err != nil {
			return nil, err
		}
	}
	if b.delivery == nil {
		b.delivery, err = NewLocationBuilder().With(func(lb *LocationBuilder) { lb.NameEn = "Delivery point" }).BuildDomain()
		if err != nil {
			return nil, err
		}
	}

	b.services = make(map[uuid.UUID]*catalog.ServiceItem, len(b.Items))
	requests := make([]bag.ItemRequest, 0, len(b.Items))
	for _, spec := range b.Items {
		item, err := NewServiceItemBuilder().With(func(sb *ServiceItemBuilder) {
			sb.UnitPrice = spec.UnitPrice
		}).BuildDomain()
		if err != nil {
			return nil, err
		}
		b.services[item.ID()] = item
		requests = append(requests, bag.ItemRequest{ServiceItemID: item.ID(), Quantity: spec.Quantity})
	}

	factory := bag.NewFactory(
		clock.NewMockClock(b.Now),
		bag.NewTaxedCalculator(decimal.RequireFromString(b.TaxRate)),
	)
	return factory.CreateBag(b.CustomerID, b.pickup, b.delivery, requests, b.services)
}

// BuildView produces the read model the query side would return for a fresh
// bag, without touching a database.
func (b *BagBuilder) BuildView() *queries.BagView {
	tag := "B-ABC234"
	var subtotal float64
	items := make([]queries.BagItemView, 0, len(b.Items))
	for _, spec := range b.Items {
		unit := decimal.RequireFromString(spec.UnitPrice)
		total := unit.Mul(decimal.NewFromInt(int64(spec.Quantity)))
		items = append(items, queries.BagItemView{
			ID:            uuid.New(),
			ServiceItemID: uuid.New(),
			Quantity:      int32(spec.Quantity),
			UnitPrice:     unit.InexactFloat64(),
			TotalPrice:    total.InexactFloat64(),
		})
		subtotal += total.InexactFloat64()
	}

	taxRate := decimal.RequireFromString(b.TaxRate)
	taxAmount := decimal.NewFromFloat(subtotal).Mul(taxRate).Round(2).InexactFloat64()

	return &queries.BagView{
		ID:                 uuid.New(),
		BagTag:             tag,
		QRCode:             "bag:" + tag,
		CustomerID:         b.CustomerID,
		Status:             "created",
		PickupLocationID:   uuid.New(),
		DeliveryLocationID: uuid.New(),
		Subtotal:           subtotal,
		TaxRate:            taxRate.InexactFloat64(),
		TaxAmount:          taxAmount,
		Total:              subtotal + taxAmount,
		CreatedAt:          b.Now,
		Items:              items,
		Events: []queries.BagEventView{
			{ID: uuid.New(), Status: "created", CreatedAt: b.Now},
		},
	}
}

type LocationBuilder struct {
	NameAr       string
	NameEn       string
	DisplayOrder int
	Inactive     bool
}

func NewLocationBuilder() *LocationBuilder {
	return &LocationBuilder{
		NameAr: "نقطة الاستلام",
		NameEn: "Main branch",
	}
}

func (l *LocationBuilder) With(mutate func(*LocationBuilder)) *LocationBuilder {
	mutate(l)
	return l
}

func (l *LocationBuilder) BuildDomain() (*location.Location, error) {
	loc, err := location.NewLocation(
		location.LocalizedText{Ar: l.NameAr, En: l.NameEn},
		nil,
		l.DisplayOrder,
	)
	if err != nil {
		return nil, err
	}
	if l.Inactive {
		loc.Deactivate()
	}
	return loc, nil
}

type ServiceItemBuilder struct {
	NameAr    string
	NameEn    string
	Category  string
	UnitPrice string
}

func NewServiceItemBuilder() *ServiceItemBuilder {
	return &ServiceItemBuilder{
		NameAr:    "غسيل وكي",
		NameEn:    "Wash and iron",
		Category:  "laundry",
		UnitPrice: "10.00",
	}
}

func (s *ServiceItemBuilder) With(mutate func(*ServiceItemBuilder)) *ServiceItemBuilder {
	mutate(s)
	return s
}

func (s *ServiceItemBuilder) BuildDomain() (*catalog.ServiceItem, error) {
	return catalog.NewServiceItem(
		location.LocalizedText{Ar: s.NameAr, En: s.NameEn},
		s.Category,
		decimal.RequireFromString(s.UnitPrice),
		0,
	)
}
