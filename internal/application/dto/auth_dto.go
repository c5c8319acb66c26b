package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse usuario sin credenciales; el password nunca se serializa.
type UserResponse struct {
	ID       int    `json:"id"`
	UserName string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse usuario autenticado más su token de sesión.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
