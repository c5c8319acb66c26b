package repository

import "github.com/jhoicas/supplier-api/internal/domain/entity"

// UserDirectory define el puerto de consulta del directorio fijo de usuarios.
// La búsqueda es case-insensitive en username y case-sensitive en password.
// Devuelve (nil, nil) si no hay coincidencia exacta; no hay lockout ni conteo de intentos.
type UserDirectory interface {
	Get(username, password string) (*entity.User, error)
}
