package request

type CreateLocationRequest struct {
	NameAr       string  `json:"name_ar" binding:"required"`
	NameEn       string  `json:"name_en" binding:"required"`
	AddressAr    *string `json:"address_ar,omitempty"`
	AddressEn    *string `json:"address_en,omitempty"`
	DisplayOrder int     `json:"display_order"`
}

type CreateServiceItemRequest struct {
	NameAr       string  `json:"name_ar" binding:"required"`
	NameEn       string  `json:"name_en" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	UnitPrice    float64 `json:"unit_price" binding:"min=0"`
	DisplayOrder int     `json:"display_order"`
}
