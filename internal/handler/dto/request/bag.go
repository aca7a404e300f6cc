package request

import (
	"bagtrack/internal/domain/bag"

	"github.com/google/uuid"
)

type BagItemRequest struct {
	ServiceItemID uuid.UUID `json:"service_item_id" binding:"required"`
	Quantity      int       `json:"quantity" binding:"required,min=1"`
}

type CreateBagRequest struct {
	PickupLocationID   uuid.UUID        `json:"pickup_location_id" binding:"required"`
	DeliveryLocationID uuid.UUID        `json:"delivery_location_id" binding:"required"`
	Items              []BagItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CreateBagRequest) ToItemRequests() []bag.ItemRequest {
	requests := make([]bag.ItemRequest, 0, len(r.Items))
	for _, item := range r.Items {
		requests = append(requests, bag.ItemRequest{
			ServiceItemID: item.ServiceItemID,
			Quantity:      item.Quantity,
		})
	}
	return requests
}

type UpdateBagStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Note   *string `json:"note,omitempty"`
}

type UpdateBagLocationsRequest struct {
	PickupLocationID   *uuid.UUID `json:"pickup_location_id,omitempty"`
	DeliveryLocationID *uuid.UUID `json:"delivery_location_id,omitempty"`
}

type BatchUpdateStatusRequest struct {
	BagIDs []uuid.UUID `json:"bag_ids" binding:"required"`
	Status string      `json:"status" binding:"required"`
	Note   *string     `json:"note,omitempty"`
}
