package repository

import "github.com/jhoicas/supplier-api/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// GetByID devuelve (nil, nil) cuando el ID no existe. Las escrituras que no
// afectan ningún registro retornan domain.ErrWriteFailed aunque el driver no falle.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
}
