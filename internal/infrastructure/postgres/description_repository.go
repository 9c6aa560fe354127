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

var _ repository.DescriptionRepository = (*DescriptionRepo)(nil)

// DescriptionRepo implementación del puerto DescriptionRepository sobre PostgreSQL.
type DescriptionRepo struct {
	pool *pgxpool.Pool
}

// NewDescriptionRepository construye el adaptador de persistencia para descripciones.
func NewDescriptionRepository(pool *pgxpool.Pool) *DescriptionRepo {
	return &DescriptionRepo{pool: pool}
}

const descriptionColumns = `id, installations, equipments, activities, created_at, updated_at`

// Create persiste una nueva descripción.
func (r *DescriptionRepo) Create(ctx context.Context, description *entity.Description) error {
	query := `
		INSERT INTO descriptions (` + descriptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query,
		description.ID, description.Installations, description.Equipments, description.Activities,
		description.CreatedAt, description.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert description: %w", err)
	}
	return nil
}

// FindByID obtiene una descripción por ID. Devuelve (nil, nil) si no existe.
func (r *DescriptionRepo) FindByID(ctx context.Context, id string) (*entity.Description, error) {
	query := `SELECT ` + descriptionColumns + ` FROM descriptions WHERE id = $1`
	var d entity.Description
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Installations, &d.Equipments, &d.Activities, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get description by id: %w", err)
	}
	return &d, nil
}

// Find lista todas las descripciones.
func (r *DescriptionRepo) Find(ctx context.Context) ([]*entity.Description, error) {
	query := `SELECT ` + descriptionColumns + ` FROM descriptions ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list descriptions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Description
	for rows.Next() {
		var d entity.Description
		if err := rows.Scan(&d.ID, &d.Installations, &d.Equipments, &d.Activities, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan description: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos de la descripción.
func (r *DescriptionRepo) Update(ctx context.Context, description *entity.Description) error {
	query := `
		UPDATE descriptions SET installations = $2, equipments = $3, activities = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		description.ID, description.Installations, description.Equipments, description.Activities,
		description.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update description: %w", err)
	}
	return nil
}

// Delete elimina una descripción por ID.
func (r *DescriptionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM descriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete description: %w", err)
	}
	return nil
}
