package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senga-cyber/facilite-app2/models"
	"github.com/senga-cyber/facilite-app2/utils"
)

func postJSON(t *testing.T, handler gin.HandlerFunc, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	c.Request = req
	handler(c)
	return w
}

func TestRegisterAndLoginClient(t *testing.T) {
	db := setupTestDB(t)

	w := postJSON(t, RegisterClient(db), "/auth/register/client", gin.H{
		"name":         "Jean",
		"phone_number": "+243811111111",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// same phone again
	w = postJSON(t, RegisterClient(db), "/auth/register/client", gin.H{
		"name":         "Jean bis",
		"phone_number": "+243811111111",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// clients log in with the phone number alone
	w = postJSON(t, LoginClient(db), "/auth/login/client", gin.H{"phone_number": "+243811111111"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session struct {
		AccessToken string `json:"access_token"`
		Role        string `json:"role"`
	}
	decodeJSON(t, w, &session)
	assert.Equal(t, models.RoleClient, session.Role)

	claims, err := utils.ValidateJWT(session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleClient, claims.Role)

	// a refresh cookie was set
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "refresh_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	// unknown phone
	w = postJSON(t, LoginClient(db), "/auth/login/client", gin.H{"phone_number": "+243800000000"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginManagerRequiresPassword(t *testing.T) {
	db := setupTestDB(t)
	hashed, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	manager := models.User{
		Name:        "Marie",
		PhoneNumber: "+243822222222",
		Password:    hashed,
		Role:        models.RoleRestaurantManager,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&manager).Error)

	w := postJSON(t, LoginManager(db), "/auth/login/manager", gin.H{
		"phone_number": manager.PhoneNumber,
		"password":     "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(t, LoginManager(db), "/auth/login/manager", gin.H{
		"phone_number": manager.PhoneNumber,
		"password":     "s3cret-pass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var session struct {
		Role string `json:"role"`
	}
	decodeJSON(t, w, &session)
	assert.Equal(t, models.RoleRestaurantManager, session.Role)

	// clients cannot use the staff login
	client := newUser(t, db, "Jean", models.RoleClient)
	clientHash, err := utils.HashPassword("client-pass")
	require.NoError(t, err)
	require.NoError(t, db.Model(&client).Update("hashed_password", clientHash).Error)
	w = postJSON(t, LoginManager(db), "/auth/login/manager", gin.H{
		"phone_number": client.PhoneNumber,
		"password":     "client-pass",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterManagerIsAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	admin := newUser(t, db, "Root", models.RoleAdmin)
	client := newUser(t, db, "Jean", models.RoleClient)

	w := performAs(t, client, RegisterManager(db), http.MethodPost, "/auth/register/manager", gin.H{
		"name":         "Marie",
		"phone_number": "+243833333333",
		"password":     "s3cret-pass",
		"role":         models.RoleRestaurantManager,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// admin is not a valid staff role here
	w = performAs(t, admin, RegisterManager(db), http.MethodPost, "/auth/register/manager", gin.H{
		"name":         "Eve",
		"phone_number": "+243844444444",
		"password":     "s3cret-pass",
		"role":         models.RoleAdmin,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performAs(t, admin, RegisterManager(db), http.MethodPost, "/auth/register/manager", gin.H{
		"name":         "Marie",
		"phone_number": "+243833333333",
		"password":     "s3cret-pass",
		"role":         models.RoleRestaurantManager,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.User
	decodeJSON(t, w, &created)
	assert.Equal(t, models.RoleRestaurantManager, created.Role)
}

func TestRefreshAndLogout(t *testing.T) {
	db := setupTestDB(t)
	user := newUser(t, db, "Jean", models.RoleClient)

	w := postJSON(t, LoginClient(db), "/auth/login/client", gin.H{"phone_number": user.PhoneNumber})
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	refreshCookie := cookies[0]

	// the cookie mints a fresh access token
	w = postJSON(t, RefreshTokenHandler(db), "/auth/refresh", gin.H{}, refreshCookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var refreshed struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, w, &refreshed)
	claims, err := utils.ValidateJWT(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	// no cookie, no refresh
	w = postJSON(t, RefreshTokenHandler(db), "/auth/refresh", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// logout revokes the stored token
	w = postJSON(t, LogoutHandler(db), "/auth/logout", gin.H{}, refreshCookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, RefreshTokenHandler(db), "/auth/refresh", gin.H{}, refreshCookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
