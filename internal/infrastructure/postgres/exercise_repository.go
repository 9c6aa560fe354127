package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/gympro-api/internal/domain/entity"
	"github.com/tu-usuario/gympro-api/internal/domain/repository"
)

var _ repository.ExerciseRepository = (*ExerciseRepo)(nil)

// ExerciseRepo implementación del puerto ExerciseRepository sobre PostgreSQL.
type ExerciseRepo struct {
	pool *pgxpool.Pool
}

// NewExerciseRepository construye el adaptador de persistencia para ejercicios.
func NewExerciseRepository(pool *pgxpool.Pool) *ExerciseRepo {
	return &ExerciseRepo{pool: pool}
}

const exerciseColumns = `id, name, description, duration, repetitions, series, rest, difficulty, created_at, updated_at`

// Create persiste un nuevo ejercicio.
func (r *ExerciseRepo) Create(ctx context.Context, exercise *entity.Exercise) error {
	query := `
		INSERT INTO exercises (` + exerciseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		exercise.ID, exercise.Name, exercise.Description,
		exercise.Duration, exercise.Repetitions, exercise.Series, exercise.Rest,
		exercise.Difficulty, exercise.CreatedAt, exercise.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert exercise: %w", err)
	}
	return nil
}

// FindByID obtiene un ejercicio por ID. Devuelve (nil, nil) si no existe.
func (r *ExerciseRepo) FindByID(ctx context.Context, id string) (*entity.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = $1`
	var e entity.Exercise
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Description, &e.Duration, &e.Repetitions, &e.Series, &e.Rest,
		&e.Difficulty, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get exercise by id: %w", err)
	}
	return &e, nil
}

// FindByIDs obtiene los ejercicios cuyos IDs estén en la lista, para la
// expansión de referencias de TrainingRoom. IDs inexistentes se omiten.
func (r *ExerciseRepo) FindByIDs(ctx context.Context, ids []string) ([]*entity.Exercise, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + exerciseColumns + ` FROM exercises WHERE id = ANY($1)`
	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list exercises by ids: %w", err)
	}
	defer rows.Close()
	return collectExercises(rows)
}

// Find lista todos los ejercicios.
func (r *ExerciseRepo) Find(ctx context.Context) ([]*entity.Exercise, error) {
	query := `SELECT ` + exerciseColumns + ` FROM exercises ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()
	return collectExercises(rows)
}

// Update sobrescribe todos los campos del ejercicio.
func (r *ExerciseRepo) Update(ctx context.Context, exercise *entity.Exercise) error {
	query := `
		UPDATE exercises SET name = $2, description = $3, duration = $4, repetitions = $5,
			series = $6, rest = $7, difficulty = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		exercise.ID, exercise.Name, exercise.Description,
		exercise.Duration, exercise.Repetitions, exercise.Series, exercise.Rest,
		exercise.Difficulty, exercise.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	return nil
}

// Delete elimina un ejercicio por ID.
func (r *ExerciseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

func collectExercises(rows pgx.Rows) ([]*entity.Exercise, error) {
	var list []*entity.Exercise
	for rows.Next() {
		var e entity.Exercise
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Duration, &e.Repetitions,
			&e.Series, &e.Rest, &e.Difficulty, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
