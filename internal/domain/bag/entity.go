package bag

import (
	"errors"
	"time"

	"bagtrack/internal/pkg/patch"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder                = errors.New("order must contain at least one item")
	ErrInvalidQuantity           = errors.New("item quantity must be at least 1")
	ErrInvalidTransition         = errors.New("invalid status transition")
	ErrLocationLockedAfterPickup = errors.New("locations cannot change after pickup")
)

// Item is a priced line item. UnitPrice is a snapshot taken at order time;
// later catalog edits never touch it.
type Item struct {
	ServiceItemID uuid.UUID
	Quantity      int
	UnitPrice     decimal.Decimal
	LineTotal     decimal.Decimal
}

func NewItem(serviceItemID uuid.UUID, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}
	return Item{
		ServiceItemID: serviceItemID,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		LineTotal:     unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Event is one entry of the append-only status timeline. Events are never
// edited or deleted; the timeline is the sole record of how a bag got here.
type Event struct {
	ID        uuid.UUID
	Status    Status
	Note      *string
	CreatedAt time.Time
}

// Bag is the order aggregate. Status and the event timeline are the only
// mutable parts after creation; pricing fields are frozen by the factory.
type Bag struct {
	id                 uuid.UUID
	tag                BagTag
	customerID         uuid.UUID
	status             Status
	pickupLocationID   uuid.UUID
	deliveryLocationID uuid.UUID
	items              []Item
	quote              Quote
	version            int64
	createdAt          time.Time
	events             []Event
}

func newBag(
	customerID uuid.UUID,
	tag BagTag,
	pickupLocationID, deliveryLocationID uuid.UUID,
	items []Item,
	quote Quote,
	now time.Time,
) *Bag {
	b := &Bag{
		id:                 uuid.New(),
		tag:                tag,
		customerID:         customerID,
		status:             StatusCreated,
		pickupLocationID:   pickupLocationID,
		deliveryLocationID: deliveryLocationID,
		items:              items,
		quote:              quote,
		version:            1,
		createdAt:          now,
	}
	// Synthetic first event: the timeline always starts with "created".
	b.events = append(b.events, Event{
		ID:        uuid.New(),
		Status:    StatusCreated,
		CreatedAt: now,
	})
	return b
}

func ReconstructBag(
	id uuid.UUID,
	tag BagTag,
	customerID uuid.UUID,
	status Status,
	pickupLocationID, deliveryLocationID uuid.UUID,
	items []Item,
	quote Quote,
	version int64,
	createdAt time.Time,
	events []Event,
) *Bag {
	return &Bag{
		id:                 id,
		tag:                tag,
		customerID:         customerID,
		status:             status,
		pickupLocationID:   pickupLocationID,
		deliveryLocationID: deliveryLocationID,
		items:              items,
		quote:              quote,
		version:            version,
		createdAt:          createdAt,
		events:             events,
	}
}

func (b *Bag) ID() uuid.UUID                  { return b.id }
func (b *Bag) Tag() BagTag                    { return b.tag }
func (b *Bag) QRCode() string                 { return b.tag.QRPayload() }
func (b *Bag) CustomerID() uuid.UUID          { return b.customerID }
func (b *Bag) Status() Status                 { return b.status }
func (b *Bag) PickupLocationID() uuid.UUID    { return b.pickupLocationID }
func (b *Bag) DeliveryLocationID() uuid.UUID  { return b.deliveryLocationID }
func (b *Bag) Items() []Item                  { return b.items }
func (b *Bag) Quote() Quote                   { return b.quote }
func (b *Bag) Version() int64                 { return b.version }
func (b *Bag) CreatedAt() time.Time           { return b.createdAt }
func (b *Bag) Events() []Event                { return b.events }

func (b *Bag) IsOwnedBy(userID uuid.UUID) bool {
	return b.customerID == userID
}

// Transition advances the bag one step, or re-posts the current status as a
// note-only annotation. Every success appends exactly one event.
func (b *Bag) Transition(target Status, note Note, now time.Time) (Event, error) {
	if !b.status.CanTransitionTo(target) {
		return Event{}, ErrInvalidTransition
	}

	ev := Event{
		ID:        uuid.New(),
		Status:    target,
		CreatedAt: now,
	}
	if !note.IsEmpty() {
		text := note.String()
		ev.Note = &text
	}

	b.status = target
	b.version++
	b.events = append(b.events, ev)
	return ev, nil
}

// LocationsLocked reports whether physical routing has committed. Locations
// may change only while the bag is still with the customer.
func (b *Bag) LocationsLocked() bool {
	return b.status != StatusCreated && b.status != StatusDropped
}

func (b *Bag) UpdateLocations(pickupLocationID, deliveryLocationID *uuid.UUID) error {
	if b.LocationsLocked() {
		return ErrLocationLockedAfterPickup
	}
	b.pickupLocationID = patch.Coalesce(pickupLocationID, b.pickupLocationID)
	b.deliveryLocationID = patch.Coalesce(deliveryLocationID, b.deliveryLocationID)
	b.version++
	return nil
}
