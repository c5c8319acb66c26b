package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/supplier-api/internal/domain"
	"github.com/jhoicas/supplier-api/internal/domain/entity"
	"github.com/jhoicas/supplier-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
// Cada lectura va directo al pool; no hay caché ni tracking en proceso, de modo que
// el GetByID previo a update/delete siempre refleja el estado real de la tabla.
type SupplierRepo struct {
	pool *pgxpool.Pool
}

// NewSupplierRepository construye el adaptador de persistencia para proveedores.
func NewSupplierRepository(pool *pgxpool.Pool) *SupplierRepo {
	return &SupplierRepo{pool: pool}
}

// Create persiste un nuevo proveedor. Cero filas afectadas se reporta como
// domain.ErrWriteFailed aunque el driver no haya devuelto error.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, document, active)
		VALUES ($1, $2, $3, $4)`
	tag, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Document, supplier.Active,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWriteFailed
	}
	return nil
}

// GetByID obtiene un proveedor por ID. (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	query := `
		SELECT id, name, document, active
		FROM suppliers WHERE id = $1`
	var s entity.Supplier
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Document, &s.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier by id: %w", err)
	}
	return &s, nil
}

// List devuelve todos los proveedores. El orden queda definido por el storage.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	query := `
		SELECT id, name, document, active
		FROM suppliers`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Document, &s.Active); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update reemplaza todos los campos del proveedor (full-replace, el ID no cambia).
// Cero filas afectadas -> domain.ErrWriteFailed.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $2, document = $3, active = $4
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		supplier.ID, supplier.Name, supplier.Document, supplier.Active,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWriteFailed
	}
	return nil
}

// Delete elimina un proveedor por ID. Cero filas afectadas -> domain.ErrWriteFailed.
func (r *SupplierRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWriteFailed
	}
	return nil
}
