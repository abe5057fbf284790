package dto

// InventoryChangeRequest body para POST /api/locations/:id/inventory/increment|decrement.
type InventoryChangeRequest struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// TransferRequest body para POST /api/inventory/transfers.
type TransferRequest struct {
	SourceLocationID      string `json:"source_location_id"`
	DestinationLocationID string `json:"destination_location_id"`
	ItemID                string `json:"item_id"`
	Quantity              int    `json:"quantity"`
}

// InventoryItemResponse un ítem con su cantidad.
type InventoryItemResponse struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// InventoryResponse inventario de una ubicación, ordenado por item_id.
type InventoryResponse struct {
	LocationID string                  `json:"location_id"`
	Items      []InventoryItemResponse `json:"items"`
}

// InsufficientQuantityResponse error 409 con el detalle de cantidades.
type InsufficientQuantityResponse struct {
	ErrorResponse
	Requested int `json:"requested"`
	Available int `json:"available"`
}
