package dto

// SupplierRequest cuerpo de creación/actualización de proveedor.
// Active es puntero: el contrato exige que venga explícito (false implícito no vale).
// En PUT, el ID del path es autoritativo y pisa cualquier ID que traiga el cuerpo.
type SupplierRequest struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Active   *bool  `json:"active"`
}

// SupplierResponse representación de un proveedor en respuestas.
type SupplierResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Active   bool   `json:"active"`
}
