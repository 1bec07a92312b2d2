package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/app/repository"
	"github.com/Akashnaii/Breadbox/internal/errors"
	"github.com/Akashnaii/Breadbox/pkg/util"
)

// Context keys for the authenticated principal
const (
	PrincipalIDKey    = "principal_id"
	PrincipalEmailKey = "principal_email"
	PrincipalRoleKey  = "principal_role"
)

type AuthMiddleware struct {
	jwtSecret  string
	userRepo   repository.UserRepository
	vendorRepo repository.VendorRepository
}

func NewAuthMiddleware(jwtSecret string, userRepo repository.UserRepository, vendorRepo repository.VendorRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSecret:  jwtSecret,
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
	}
}

// Authenticate validates the bearer token and re-resolves the principal
// against the database, so a token for a deleted account stops working
// the moment the account is gone. Vendor tokens additionally require a
// verified account.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Missing authorization header", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenMissing, "Authentication required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			log.Warn("Invalid authorization header format", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authorization header")
			c.Abort()
			return
		}

		claims, err := util.ValidateToken(parts[1], m.jwtSecret)
		if err != nil {
			log.Warn("Token validation failed", map[string]interface{}{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			if err == util.ErrExpiredToken {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenExpired, "Session expired, please log in again")
			} else {
				errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authentication token")
			}
			c.Abort()
			return
		}

		role := model.Role(claims.Role)
		if !m.principalExists(claims.UserID, role) {
			log.Warn("Token principal no longer exists", map[string]interface{}{
				"principal_id": claims.UserID,
				"role":         claims.Role,
			})
			errors.RespondWithError(c, http.StatusUnauthorized, errors.AuthTokenInvalid, "Invalid authentication token")
			c.Abort()
			return
		}

		c.Set(PrincipalIDKey, claims.UserID)
		c.Set(PrincipalEmailKey, claims.Email)
		c.Set(PrincipalRoleKey, role)

		log.Debug("Authenticated", map[string]interface{}{
			"principal_id": claims.UserID,
			"email":        claims.Email,
			"role":         claims.Role,
		})

		c.Next()
	}
}

// principalExists checks the token's subject is still a live account.
// Vendors must also be verified; a vendor who registered but never
// confirmed the OTP holds no usable session even with a valid token.
func (m *AuthMiddleware) principalExists(id uint, role model.Role) bool {
	if role == model.RoleVendor {
		vendor, err := m.vendorRepo.FindByID(id)
		return err == nil && vendor.IsVerified
	}
	_, err := m.userRepo.FindByID(id)
	return err == nil
}

// RequireRole allows only principals holding one of the given roles.
func (m *AuthMiddleware) RequireRole(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		value, exists := c.Get(PrincipalRoleKey)
		if !exists {
			log.Warn("Role information not found in context", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			errors.RespondWithError(c, http.StatusForbidden, errors.AuthzRoleNotFound, "Role information not found")
			c.Abort()
			return
		}

		role := value.(model.Role)
		principalID, _ := GetPrincipalID(c)

		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		log.Warn("Insufficient permissions", map[string]interface{}{
			"principal_id":   principalID,
			"role":           role,
			"required_roles": roles,
			"path":           c.Request.URL.Path,
		})
		errors.Forbidden(c, "You do not have permission to access this resource")
		c.Abort()
	}
}

// GetPrincipalID extracts the authenticated principal's id.
func GetPrincipalID(c *gin.Context) (uint, bool) {
	id, exists := c.Get(PrincipalIDKey)
	if !exists {
		return 0, false
	}
	return id.(uint), true
}

// GetPrincipalEmail extracts the authenticated principal's email.
func GetPrincipalEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(PrincipalEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// GetPrincipalRole extracts the authenticated principal's role.
func GetPrincipalRole(c *gin.Context) (model.Role, bool) {
	role, exists := c.Get(PrincipalRoleKey)
	if !exists {
		return "", false
	}
	return role.(model.Role), true
}
