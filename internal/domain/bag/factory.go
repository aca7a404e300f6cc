package bag

import (
	"bagtrack/internal/domain/catalog"
	"bagtrack/internal/domain/location"
	"bagtrack/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInactiveLocation   = location.ErrInactiveLocation
	ErrUnknownServiceItem = catalog.ErrUnknownServiceItem
)

// ItemRequest is the unpriced input: what the customer picked and how many.
type ItemRequest struct {
	ServiceItemID uuid.UUID
	Quantity      int
}

type Factory struct {
	Clock      clock.Clock
	Calculator Calculator
}

func NewFactory(clock clock.Clock, calculator Calculator) *Factory {
	return &Factory{
		Clock:      clock,
		Calculator: calculator,
	}
}

// CreateBag validates the endpoints and line items, snapshots prices from the
// catalog, assigns a fresh tag and records the initial "created" event.
func (f *Factory) CreateBag(
	customerID uuid.UUID,
	pickup, delivery *location.Location,
	requests []ItemRequest,
	services map[uuid.UUID]*catalog.ServiceItem,
) (*Bag, error) {
	if !pickup.IsActive() || !delivery.IsActive() {
		return nil, ErrInactiveLocation
	}
	if len(requests) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]Item, 0, len(requests))
	for _, req := range requests {
		svc, ok := services[req.ServiceItemID]
		if !ok {
			return nil, ErrUnknownServiceItem
		}
		item, err := NewItem(svc.ID(), req.Quantity, svc.UnitPrice())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	quote := f.Calculator.Price(items)

	tag, err := GenerateBagTag()
	if err != nil {
		return nil, err
	}

	return newBag(customerID, tag, pickup.ID(), delivery.ID(), items, quote, f.Clock.Now()), nil
}

// WithTag rebuilds a pending bag under a different tag after a storage-level
// tag collision.
func (f *Factory) WithTag(b *Bag, tag BagTag) *Bag {
	clone := *b
	clone.tag = tag
	return &clone
}
