package auth

import "github.com/jhoicas/supplier-api/internal/domain/entity"

// Policy una regla de autorización con nombre: exige que el claim de rol del
// token sea exactamente Role. Una ruta sin policy solo exige token válido.
type Policy struct {
	Name string
	Role string
}

// Policies disponibles. El nombre identifica la regla en la tabla de rutas.
var (
	PolicyAdmin    = Policy{Name: "Admin", Role: entity.RoleManager}
	PolicyEmployee = Policy{Name: "Employee", Role: entity.RoleEmployee}
)
