package entity

import "time"

// Description descripción de una sala: instalaciones, equipamiento y actividades.
type Description struct {
	ID            string
	Installations []string
	Equipments    []string
	Activities    []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
