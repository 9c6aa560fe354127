package dto

import "time"

// ExerciseRequest entrada para crear o reemplazar un ejercicio.
// Los numéricos son punteros para distinguir "ausente" de cero y poder
// responder "Duration must be a number" con el campo exacto.
type ExerciseRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Duration    *float64 `json:"duration"`
	Repetitions *float64 `json:"repetitions"`
	Series      *float64 `json:"series"`
	Rest        *float64 `json:"rest"`
	Difficulty  string   `json:"difficulty"`
}

// ExerciseResponse salida de un ejercicio.
type ExerciseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"`
	Repetitions float64   `json:"repetitions"`
	Series      float64   `json:"series"`
	Rest        float64   `json:"rest"`
	Difficulty  string    `json:"difficulty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
