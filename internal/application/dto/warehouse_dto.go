package dto

// RegisterLocationRequest entrada para registrar una ubicación.
type RegisterLocationRequest struct {
	LocationID string `json:"location_id"`
}

// LocationListResponse ubicaciones registradas en orden ascendente.
type LocationListResponse struct {
	Items []string `json:"items"`
	Total int      `json:"total"`
}
