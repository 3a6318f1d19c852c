package auth

import (
	"net/http"
	"strings"

	"pawbase-backend/internal/database/models"
	apperrors "pawbase-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware chain.
const (
	ContextUserKey   = "current_user"
	ContextTenantKey = "tenant_link"
)

// Authorizer composes the per-request decision procedure: verify assertion,
// resolve identity, gate roles, resolve tenant, compute scope. Each stage is
// a gin middleware; a failed stage aborts the request, there is no retry
// within a request.
type Authorizer struct {
	service *AuthService
	tenants *TenantResolver
	scopes  *ScopeResolver
}

// NewAuthorizer creates a new authorizer
func NewAuthorizer(service *AuthService, tenants *TenantResolver, scopes *ScopeResolver) *Authorizer {
	return &Authorizer{
		service: service,
		tenants: tenants,
		scopes:  scopes,
	}
}

// Scopes exposes the scope resolver for handlers that guard single resources
func (a *Authorizer) Scopes() *ScopeResolver {
	return a.scopes
}

// RequireAuth verifies the bearer token and resolves the user. All failures
// are 401 with the same generic message, so callers cannot tell a bad
// signature from an expired token or a deleted account.
func (a *Authorizer) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		subject, err := a.service.Codec().Verify(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		user, err := a.service.ResolveUser(subject)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrInvalidToken.Error()})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireRoles rejects the request when the resolved user's role is not in
// the declared set. Runs after RequireAuth and before any resource lookup,
// so a wrong role never triggers a query.
func (a *Authorizer) RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrRoleForbidden.Error()})
		c.Abort()
	}
}

// TenantContext resolves the user's organization and stores the tenant link.
// A user linked to no organization is rejected with 403.
func (a *Authorizer) TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		link, err := a.tenants.TenantOf(user)
		if err != nil {
			if apperrors.IsAuthorization(err) {
				c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve organization"})
			}
			c.Abort()
			return
		}

		c.Set(ContextTenantKey, link)
		c.Next()
	}
}

// Authorize returns the resolved user, their organization, and the set of
// accessible shelter ids. To be called by handlers behind RequireAuth +
// TenantContext; scope errors (no membership, wrong role) are returned as
// typed errors for the handler to map.
func (a *Authorizer) Authorize(c *gin.Context) (*models.User, *models.Organization, ShelterIDSet, error) {
	user, ok := CurrentUser(c)
	if !ok {
		return nil, nil, nil, apperrors.ErrUnknownSubject
	}
	link, ok := Tenant(c)
	if !ok {
		return nil, nil, nil, apperrors.ErrNoTenant
	}

	scope, err := a.scopes.AccessibleShelterIDs(user, link.Organization)
	if err != nil {
		return nil, nil, nil, err
	}
	return user, link.Organization, scope, nil
}

// CurrentUser extracts the resolved user from the request context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// Tenant extracts the resolved tenant link from the request context
func Tenant(c *gin.Context) (*TenantLink, bool) {
	value, exists := c.Get(ContextTenantKey)
	if !exists {
		return nil, false
	}
	link, ok := value.(*TenantLink)
	return link, ok
}
