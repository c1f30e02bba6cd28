package middleware

import (
	"course_enrollment/internal/domain/entities"
	"course_enrollment/internal/usecase/interfaces"
	"course_enrollment/pkg"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	ContextUserKey   = "current_user"
	ContextClaimsKey = "jwt_claims"
)

var (
	errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden       = pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient role for this operation", http.StatusForbidden)
)

type AuthJWTOpts struct {
	Secret string
	Users  interfaces.IUserDirectory
}

// AuthJWT validates an HMAC-signed bearer token and resolves the caller
// through the user directory. The username is read from the "username"
// claim, falling back to "sub".
func AuthJWT(o AuthJWTOpts) gin.HandlerFunc {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: secret is required")
	}

	return func(c *gin.Context) {
		raw := ""
		if authz := strings.TrimSpace(c.GetHeader("Authorization")); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			abort(c, errUnauthenticated)
			return
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			log.Printf("[auth][middleware] invalid token err=%v", err)
			abort(c, errUnauthenticated)
			return
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, errUnauthenticated)
			return
		}

		username := strClaim(claims, "username")
		if username == "" {
			username = strClaim(claims, "sub")
		}
		if username == "" {
			abort(c, errUnauthenticated)
			return
		}

		user, err := o.Users.FindByUsername(c.Request.Context(), username)
		if err != nil {
			log.Printf("[auth][middleware] user lookup failed username=%s err=%v", username, err)
			abort(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
			return
		}
		if user.ID == "" {
			log.Printf("[auth][middleware] unknown user username=%s", username)
			abort(c, errUnauthenticated)
			return
		}

		c.Set(ContextClaimsKey, claims)
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireRole must run after AuthJWT.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, errUnauthenticated)
			return
		}
		if !strings.EqualFold(user.Role, role) {
			log.Printf("[auth][middleware] forbidden user_id=%s role=%s required=%s", user.ID, user.Role, role)
			abort(c, errForbidden)
			return
		}
		c.Next()
	}
}

func CurrentUser(c *gin.Context) (entities.User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := v.(entities.User)
	return user, ok && user.ID != ""
}

// CurrentUserID returns "" when no user was resolved.
func CurrentUserID(c *gin.Context) string {
	user, _ := CurrentUser(c)
	return user.ID
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
