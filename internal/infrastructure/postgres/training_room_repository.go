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

var _ repository.TrainingRoomRepository = (*TrainingRoomRepo)(nil)

// TrainingRoomRepo implementación del puerto TrainingRoomRepository sobre PostgreSQL.
type TrainingRoomRepo struct {
	pool *pgxpool.Pool
}

// NewTrainingRoomRepository construye el adaptador de persistencia para salas.
func NewTrainingRoomRepository(pool *pgxpool.Pool) *TrainingRoomRepo {
	return &TrainingRoomRepo{pool: pool}
}

const trainingRoomColumns = `id, name, capacity, specializations, address_id, responsible_id, exercise_ids, description_id, created_at, updated_at`

// Create persiste una nueva sala de entrenamiento.
func (r *TrainingRoomRepo) Create(ctx context.Context, room *entity.TrainingRoom) error {
	query := `
		INSERT INTO training_rooms (` + trainingRoomColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(ctx, query,
		room.ID, room.Name, room.Capacity, emptySlice(room.Specializations),
		room.AddressID, room.ResponsibleID, emptySlice(room.ExerciseIDs), room.DescriptionID,
		room.CreatedAt, room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert training room: %w", err)
	}
	return nil
}

// FindByID obtiene una sala por ID. Devuelve (nil, nil) si no existe.
func (r *TrainingRoomRepo) FindByID(ctx context.Context, id string) (*entity.TrainingRoom, error) {
	query := `SELECT ` + trainingRoomColumns + ` FROM training_rooms WHERE id = $1`
	var tr entity.TrainingRoom
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&tr.ID, &tr.Name, &tr.Capacity, &tr.Specializations,
		&tr.AddressID, &tr.ResponsibleID, &tr.ExerciseIDs, &tr.DescriptionID,
		&tr.CreatedAt, &tr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get training room by id: %w", err)
	}
	return &tr, nil
}

// Find lista todas las salas.
func (r *TrainingRoomRepo) Find(ctx context.Context) ([]*entity.TrainingRoom, error) {
	query := `SELECT ` + trainingRoomColumns + ` FROM training_rooms ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list training rooms: %w", err)
	}
	defer rows.Close()
	var list []*entity.TrainingRoom
	for rows.Next() {
		var tr entity.TrainingRoom
		if err := rows.Scan(&tr.ID, &tr.Name, &tr.Capacity, &tr.Specializations,
			&tr.AddressID, &tr.ResponsibleID, &tr.ExerciseIDs, &tr.DescriptionID,
			&tr.CreatedAt, &tr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan training room: %w", err)
		}
		list = append(list, &tr)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos de la sala.
func (r *TrainingRoomRepo) Update(ctx context.Context, room *entity.TrainingRoom) error {
	query := `
		UPDATE training_rooms SET name = $2, capacity = $3, specializations = $4,
			address_id = $5, responsible_id = $6, exercise_ids = $7, description_id = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		room.ID, room.Name, room.Capacity, emptySlice(room.Specializations),
		room.AddressID, room.ResponsibleID, emptySlice(room.ExerciseIDs), room.DescriptionID,
		room.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update training room: %w", err)
	}
	return nil
}

// Delete elimina una sala por ID.
func (r *TrainingRoomRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM training_rooms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete training room: %w", err)
	}
	return nil
}

// emptySlice evita insertar arrays NULL: un slice nil se persiste como '{}'.
func emptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
