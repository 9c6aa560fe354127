package dto

import "time"

// AddressRequest entrada para crear o reemplazar una dirección.
// Los nombres JSON replican la API pública (camelCase).
type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// AddressResponse salida de una dirección.
type AddressResponse struct {
	ID        string    `json:"id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	ZipCode   string    `json:"zipCode"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
