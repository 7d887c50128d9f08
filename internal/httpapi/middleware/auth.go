package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/apierr"
	"zooarcadia/internal/httpapi/policy"
	"zooarcadia/internal/httpapi/service"
)

// Authenticate is the first authorization layer: it checks for a valid
// bearer token and puts the decoded identity into the request context.
// A missing token is 401; a malformed, expired or badly signed one is 403.
func Authenticate(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, apierr.Body("Token manquant", apierr.Authentication))
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, apierr.Body("Token manquant", apierr.Authentication))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusForbidden, apierr.Body("Token invalide", apierr.Authentication))
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("userID", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireAnyRole is the second authorization layer: the decoded role
// must be in the operation's allowed set.
func RequireAnyRole(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, apierr.Body("Accès refusé", apierr.Authorization))
			c.Abort()
			return
		}

		userRole, ok := roleValue.(string)
		if !ok {
			c.JSON(http.StatusForbidden, apierr.Body("Accès refusé", apierr.Authorization))
			c.Abort()
			return
		}

		for _, required := range requiredRoles {
			if userRole == required {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, apierr.Body("Accès refusé", apierr.Authorization))
		c.Abort()
	}
}

// Guard turns the access policy table into middleware chains at route
// registration time, so no handler hand-rolls its own role check.
type Guard struct {
	authenticate gin.HandlerFunc
	table        policy.Table
}

func NewGuard(authService service.AuthService, table policy.Table) Guard {
	return Guard{
		authenticate: Authenticate(authService),
		table:        table,
	}
}

// Check returns the middleware chain for one policy key. Unknown keys
// fail closed: authentication is required and no role passes.
func (g Guard) Check(key string) []gin.HandlerFunc {
	rule, ok := g.table[key]
	if !ok {
		return []gin.HandlerFunc{g.authenticate, RequireAnyRole()}
	}
	if rule.Public {
		return nil
	}
	chain := []gin.HandlerFunc{g.authenticate}
	if len(rule.Roles) > 0 {
		chain = append(chain, RequireAnyRole(rule.Roles...))
	}
	return chain
}

// CallerID returns the authenticated user id stored by Authenticate.
func CallerID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
