package entity

// Supplier el único recurso gestionado por el servicio: un proveedor con nombre,
// documento (identificación tributaria, máx. 14 caracteres) y estado activo.
// El ID lo asigna el servidor al crear y es inmutable después.
type Supplier struct {
	ID       string
	Name     string // varchar(200) not null
	Document string // varchar(14) not null
	Active   bool
}
