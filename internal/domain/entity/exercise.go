package entity

import (
	"strings"
	"time"
)

// Niveles de dificultad de un ejercicio.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// NormalizeDifficulty normaliza la dificultad a minúsculas y valida que
// pertenezca al enum. Devuelve "" si no es válida.
func NormalizeDifficulty(s string) string {
	switch strings.ToLower(s) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyMedium:
		return DifficultyMedium
	case DifficultyHard:
		return DifficultyHard
	default:
		return ""
	}
}

// Exercise ejercicio de entrenamiento. Los campos numéricos son minutos/conteos.
type Exercise struct {
	ID          string
	Name        string
	Description string
	Duration    float64
	Repetitions float64
	Series      float64
	Rest        float64
	Difficulty  string // easy, medium, hard
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
