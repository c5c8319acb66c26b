package validation

import "strings"

const requiredMsg = "property has to have a value"

// SupplierInput los campos del proveedor tal como llegan en la petición, antes de
// construir la entidad. Active es puntero porque el contrato exige que venga
// explícito en el cuerpo; un false implícito no cuenta como presente.
type SupplierInput struct {
	Name     string
	Document string
	Active   *bool
}

// ValidateSupplier evalúa las tres reglas de forma independiente y devuelve todas
// las violaciones juntas. Slice vacío significa válido. Los largos máximos
// (Name 200, Document 14) los impone el esquema, no el validador.
func ValidateSupplier(in SupplierInput) []string {
	var errs []string
	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, "Name "+requiredMsg)
	}
	if strings.TrimSpace(in.Document) == "" {
		errs = append(errs, "Document "+requiredMsg)
	}
	if in.Active == nil {
		errs = append(errs, "Active "+requiredMsg)
	}
	return errs
}
