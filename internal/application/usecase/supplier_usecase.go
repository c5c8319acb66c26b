package usecase

import (
	"github.com/google/uuid"

	"github.com/jhoicas/supplier-api/internal/application/dto"
	"github.com/jhoicas/supplier-api/internal/domain"
	"github.com/jhoicas/supplier-api/internal/domain/entity"
	"github.com/jhoicas/supplier-api/internal/domain/repository"
	"github.com/jhoicas/supplier-api/internal/domain/validation"
)

// SupplierUseCase casos de uso CRUD para proveedores. Orquesta validador y repositorio:
// un proveedor o es completamente válido o nunca llega a persistirse.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create valida y persiste un nuevo proveedor con ID asignado por el servidor.
// Violaciones de validación retornan *domain.ValidationError con todos los mensajes.
func (uc *SupplierUseCase) Create(in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	if errs := validation.ValidateSupplier(toInput(in)); len(errs) > 0 {
		return nil, &domain.ValidationError{Entity: "Supplier", Messages: errs}
	}
	supplier := &entity.Supplier{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Document: in.Document,
		Active:   *in.Active,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID obtiene un proveedor por ID. (nil, nil) si no existe.
func (uc *SupplierUseCase) GetByID(id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, nil
	}
	return toSupplierResponse(supplier), nil
}

// List devuelve el listado completo; slice vacío si no hay proveedores, nunca error por vacío.
func (uc *SupplierUseCase) List() ([]dto.SupplierResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Update reemplaza por completo un proveedor existente. Primero verifica existencia
// (ausente -> nil, nil sin tocar storage), luego fuerza el ID del path sobre el del
// cuerpo y valida; una violación nunca llega a escribirse.
func (uc *SupplierUseCase) Update(id string, in dto.SupplierRequest) (*dto.SupplierResponse, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	in.ID = id // el ID del path es autoritativo
	if errs := validation.ValidateSupplier(toInput(in)); len(errs) > 0 {
		return nil, &domain.ValidationError{Entity: "Supplier", Messages: errs}
	}
	supplier := &entity.Supplier{
		ID:       in.ID,
		Name:     in.Name,
		Document: in.Document,
		Active:   *in.Active,
	}
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina un proveedor existente. domain.ErrNotFound si el ID no existe;
// en ese caso nunca se intenta la escritura.
func (uc *SupplierUseCase) Delete(id string) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toInput(in dto.SupplierRequest) validation.SupplierInput {
	return validation.SupplierInput{
		Name:     in.Name,
		Document: in.Document,
		Active:   in.Active,
	}
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	if s == nil {
		return nil
	}
	return &dto.SupplierResponse{
		ID:       s.ID,
		Name:     s.Name,
		Document: s.Document,
		Active:   s.Active,
	}
}
