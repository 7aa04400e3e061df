package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/auth"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/domain/user"
	"github.com/sgarcianetcol/Recargos-Nocturnos/internal/handler/http/response"
)

// AdminOnly requires the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequirePayrollAccess requires admin or lider role: the roles that may
// compute workdays and read cross-employee payroll.
func RequirePayrollAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if role != user.RoleAdmin && role != user.RoleLider {
			response.HandleError(w, user.ErrPayrollAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}
