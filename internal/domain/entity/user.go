package entity

// Roles válidos para User.
const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User un usuario del directorio fijo. Inmutable, definido al arranque;
// PasswordHash es bcrypt, el password en claro no sobrevive la carga de configuración.
type User struct {
	ID           int
	UserName     string
	PasswordHash string
	Role         string // manager, employee
}
