package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BagItemView struct {
	ID            uuid.UUID `json:"id"`
	ServiceItemID uuid.UUID `json:"service_item_id"`
	Quantity      int32     `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	TotalPrice    float64   `json:"total_price"`
}

type BagEventView struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type BagView struct {
	ID                 uuid.UUID      `json:"id"`
	BagTag             string         `json:"bag_tag"`
	QRCode             string         `json:"qr_code"`
	CustomerID         uuid.UUID      `json:"customer_id"`
	Status             string         `json:"status"`
	PickupLocationID   uuid.UUID      `json:"pickup_location_id"`
	DeliveryLocationID uuid.UUID      `json:"delivery_location_id"`
	Subtotal           float64        `json:"subtotal"`
	TaxRate            float64        `json:"tax_rate"`
	TaxAmount          float64        `json:"tax_amount"`
	Total              float64        `json:"total"`
	CreatedAt          time.Time      `json:"created_at"`
	DroppedAt          *time.Time     `json:"dropped_at,omitempty"`
	Items              []BagItemView  `json:"items"`
	Events             []BagEventView `json:"events"`
}

type BagListItem struct {
	ID         uuid.UUID `json:"id"`
	BagTag     string    `json:"bag_tag"`
	CustomerID uuid.UUID `json:"customer_id"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
}

type BagPage struct {
	Items    []*BagListItem `json:"items"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Total    int64          `json:"total"`
}

type LocationView struct {
	ID           uuid.UUID `json:"id"`
	NameAr       string    `json:"name_ar"`
	NameEn       string    `json:"name_en"`
	AddressAr    *string   `json:"address_ar,omitempty"`
	AddressEn    *string   `json:"address_en,omitempty"`
	QRToken      string    `json:"qr_token"`
	DisplayOrder int32     `json:"display_order"`
	IsActive     bool      `json:"is_active"`
}

type ServiceItemView struct {
	ID           uuid.UUID `json:"id"`
	NameAr       string    `json:"name_ar"`
	NameEn       string    `json:"name_en"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	DisplayOrder int32     `json:"display_order"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	PhoneNumber string    `json:"phone_number"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}
