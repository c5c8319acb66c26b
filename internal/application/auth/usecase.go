package auth

import (
	"github.com/jhoicas/supplier-api/internal/application/dto"
	"github.com/jhoicas/supplier-api/internal/domain"
	"github.com/jhoicas/supplier-api/internal/domain/entity"
	"github.com/jhoicas/supplier-api/internal/domain/repository"
	"github.com/jhoicas/supplier-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login contra el directorio fijo.
type AuthUseCase struct {
	directory repository.UserDirectory
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(directory repository.UserDirectory, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{directory: directory, jwtCfg: jwtCfg}
}

// Login verifica las credenciales contra el directorio y genera un JWT.
// Devuelve domain.ErrUserNotFound tanto para usuario desconocido como para
// password incorrecto: no se distingue para evitar enumeración de usuarios.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.directory.Get(in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.UserName, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		User:  *toUserResponse(user),
		Token: token,
	}, nil
}

// toUserResponse proyecta el usuario sin credenciales.
func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Role:     u.Role,
	}
}
