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

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementación del puerto AddressRepository sobre PostgreSQL.
type AddressRepo struct {
	pool *pgxpool.Pool
}

// NewAddressRepository construye el adaptador de persistencia para direcciones.
func NewAddressRepository(pool *pgxpool.Pool) *AddressRepo {
	return &AddressRepo{pool: pool}
}

const addressColumns = `id, street, city, zip_code, country, created_at, updated_at`

// Create persiste una nueva dirección.
func (r *AddressRepo) Create(ctx context.Context, address *entity.Address) error {
	query := `
		INSERT INTO addresses (` + addressColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(ctx, query,
		address.ID, address.Street, address.City, address.ZipCode, address.Country,
		address.CreatedAt, address.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

// FindByID obtiene una dirección por ID. Devuelve (nil, nil) si no existe.
func (r *AddressRepo) FindByID(ctx context.Context, id string) (*entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`
	var a entity.Address
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Street, &a.City, &a.ZipCode, &a.Country, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address by id: %w", err)
	}
	return &a, nil
}

// Find lista todas las direcciones.
func (r *AddressRepo) Find(ctx context.Context) ([]*entity.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		var a entity.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.City, &a.ZipCode, &a.Country, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Update sobrescribe todos los campos de la dirección.
func (r *AddressRepo) Update(ctx context.Context, address *entity.Address) error {
	query := `
		UPDATE addresses SET street = $2, city = $3, zip_code = $4, country = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		address.ID, address.Street, address.City, address.ZipCode, address.Country, address.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update address: %w", err)
	}
	return nil
}

// Delete elimina una dirección por ID.
func (r *AddressRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}
