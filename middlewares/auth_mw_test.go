package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senga-cyber/facilite-app2/config"
	"github.com/senga-cyber/facilite-app2/models"
	"github.com/senga-cyber/facilite-app2/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.C.JWTSecret = "test-secret"
}

func protectedRouter(roles ...string) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID),
			"role":    c.MustGet(ContextUserRole),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := protectedRouter()

	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = get(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := utils.CreateToken(42, models.RoleClient)
	require.NoError(t, err)
	w = get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestRequireRoles(t *testing.T) {
	r := protectedRouter(models.RoleAdmin)

	clientToken, err := utils.CreateToken(1, models.RoleClient)
	require.NoError(t, err)
	w := get(r, "Bearer "+clientToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := utils.CreateToken(2, models.RoleAdmin)
	require.NoError(t, err)
	w = get(r, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
