package entity

import "time"

// TrainingRoom sala de entrenamiento: el agregado central del dominio.
// Las referencias se guardan como IDs ("" / vacío = sin referencia) y solo se
// expanden en las lecturas que lo piden explícitamente.
type TrainingRoom struct {
	ID              string
	Name            string
	Capacity        int
	Specializations []string
	AddressID       string
	ResponsibleID   string // User responsable de la sala
	ExerciseIDs     []string
	DescriptionID   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
