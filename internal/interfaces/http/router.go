package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplier-api/internal/application/auth"
	"github.com/jhoicas/supplier-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SupplierUC *usecase.SupplierUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// routeDef una entrada de la tabla de rutas: método, path, handler y la policy
// requerida. public salta la autenticación; policy nil exige solo token válido.
// Centralizar la asociación ruta->policy aquí evita repartir decisiones de
// autorización por los puntos de registro.
type routeDef struct {
	method  string
	path    string
	handler fiber.Handler
	policy  *auth.Policy
	public  bool
}

// Router registra las rutas de la API a partir de la tabla declarativa.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)

	routes := []routeDef{
		{method: fiber.MethodPost, path: "/login", handler: authHandler.Login, public: true},
		{method: fiber.MethodGet, path: "/authenticated", handler: authHandler.Authenticated},
		{method: fiber.MethodGet, path: "/supplierList", handler: supplierHandler.List},
		{method: fiber.MethodGet, path: "/supplier/:id", handler: supplierHandler.GetByID},
		{method: fiber.MethodPost, path: "/supplier", handler: supplierHandler.Create},
		{method: fiber.MethodPut, path: "/supplier/:id", handler: supplierHandler.Update, policy: &auth.PolicyAdmin},
		{method: fiber.MethodDelete, path: "/supplier/:id", handler: supplierHandler.Delete, policy: &auth.PolicyAdmin},
	}

	for _, r := range routes {
		var handlers []fiber.Handler
		if !r.public {
			handlers = append(handlers, AuthMiddleware(deps.JWTSecret))
			if r.policy != nil {
				handlers = append(handlers, RequireRole(r.policy.Role))
			}
		}
		handlers = append(handlers, r.handler)
		app.Add(r.method, r.path, handlers...)
	}
}
