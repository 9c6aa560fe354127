package entity

import "time"

// Address dirección postal, referenciada por User y TrainingRoom
// (referencia compartida, sin borrado en cascada).
type Address struct {
	ID        string
	Street    string
	City      string
	ZipCode   string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
