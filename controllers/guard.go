package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/senga-cyber/facilite-app2/middlewares"
)

// currentUser reads the identity the auth middleware resolved. A missing
// identity means the route was wired without AuthMiddleware; answer 401 and
// abort.
func currentUser(c *gin.Context) (uint, string, bool) {
	idRaw, ok := c.Get(middlewares.ContextUserID)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, "", false
	}
	roleRaw, ok := c.Get(middlewares.ContextUserRole)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, "", false
	}
	return idRaw.(uint), roleRaw.(string), true
}

func hasRole(role string, roles ...string) bool {
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}

// requireRoles answers 403 and returns false when the caller's role is not
// in the set. Ownership delegation (manager owns the restaurant, client
// placed the order) stays spelled out at each call site.
func requireRoles(c *gin.Context, role string, roles ...string) bool {
	if hasRole(role, roles...) {
		return true
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	return false
}
