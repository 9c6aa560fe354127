package dto

import "time"

// DescriptionRequest entrada para crear o reemplazar una descripción.
// Slices nil significan "campo ausente"; una lista vacía enviada explícitamente es válida.
type DescriptionRequest struct {
	Installations []string `json:"installations"`
	Equipments    []string `json:"equipments"`
	Activities    []string `json:"activities"`
}

// DescriptionResponse salida de una descripción.
type DescriptionResponse struct {
	ID            string    `json:"id"`
	Installations []string  `json:"installations"`
	Equipments    []string  `json:"equipments"`
	Activities    []string  `json:"activities"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
