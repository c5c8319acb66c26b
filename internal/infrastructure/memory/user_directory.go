package memory

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/supplier-api/internal/domain/entity"
	"github.com/jhoicas/supplier-api/internal/domain/repository"
	"github.com/jhoicas/supplier-api/pkg/config"
)

var _ repository.UserDirectory = (*UserDirectory)(nil)

// UserDirectory directorio fijo en memoria, construido una vez al arranque e
// inyectado donde haga falta (nada de singletons a nivel de módulo). La lista es
// de solo lectura, por lo que soporta lecturas concurrentes sin sincronización.
type UserDirectory struct {
	users []entity.User
}

// NewUserDirectory construye el directorio desde la semilla de configuración.
// Los passwords en claro se hashean con bcrypt aquí y no se conservan.
func NewUserDirectory(seed []config.SeedUser) (*UserDirectory, error) {
	users := make([]entity.User, 0, len(seed))
	for _, su := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password de %q: %w", su.UserName, err)
		}
		users = append(users, entity.User{
			ID:           su.ID,
			UserName:     su.UserName,
			PasswordHash: string(hash),
			Role:         su.Role,
		})
	}
	return &UserDirectory{users: users}, nil
}

// Get busca el primer usuario cuyo username coincida (case-insensitive) y cuyo
// password verifique contra el hash (case-sensitive). (nil, nil) si no hay match.
func (d *UserDirectory) Get(username, password string) (*entity.User, error) {
	for i := range d.users {
		u := &d.users[i]
		if !strings.EqualFold(u.UserName, username) {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			continue
		}
		out := *u
		return &out, nil
	}
	return nil, nil
}
