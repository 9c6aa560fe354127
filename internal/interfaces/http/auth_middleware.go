package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gympro-api/internal/domain/entity"
	"github.com/tu-usuario/gympro-api/pkg/jwt"
)

// LocalAuthUser key en c.Locals para el usuario resuelto por AuthMiddleware.
const LocalAuthUser = "auth_user"

// userResolver es el contrato mínimo que necesita el middleware para resolver
// al usuario del token. Lo implementa repository.UserRepository; la interfaz
// local evita acoplar el middleware al puerto completo.
type userResolver interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token JWT, re-resuelve al usuario contra la
// base (el token puede sobrevivir al usuario) y lo deja en c.Locals.
//
// Taxonomía: 401 siempre que no se pueda autenticar al llamante (header
// ausente/malformado, token inválido o expirado, usuario inexistente); el 403
// queda reservado a RequireRole.
func AuthMiddleware(jwtSecret string, users userResolver, tr *ErrorTranslator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return tr.Unauthorized(c, "No token, authorization denied")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return tr.Unauthorized(c, "No token, authorization denied")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return tr.Unauthorized(c, "No token, authorization denied")
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return tr.Unauthorized(c, "Invalid or expired token")
		}
		user, err := users.FindByID(c.Context(), claims.UserID)
		if err != nil {
			return tr.Respond(c, err)
		}
		if user == nil {
			return tr.Unauthorized(c, "Authentication failed")
		}
		c.Locals(LocalAuthUser, user)
		return c.Next()
	}
}

// RequireRole autoriza por pertenencia al conjunto de roles permitidos, sin
// jerarquía: superAdmin no pasa donde solo se lista owner. Debe usarse DESPUÉS
// de AuthMiddleware.
func RequireRole(tr *ErrorTranslator, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetAuthUser(c)
		if user == nil {
			return tr.Unauthorized(c, "Authentication failed")
		}
		for _, role := range allowedRoles {
			if user.Role == role {
				return c.Next()
			}
		}
		return tr.Forbidden(c, "Unauthorized")
	}
}

// GetAuthUser devuelve el usuario resuelto por AuthMiddleware, o nil.
func GetAuthUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalAuthUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetRole devuelve el rol del usuario autenticado, o "".
func GetRole(c *fiber.Ctx) string {
	if u := GetAuthUser(c); u != nil {
		return u.Role
	}
	return ""
}
