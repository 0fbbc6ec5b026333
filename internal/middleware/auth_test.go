package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise-app/spendwise-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(tokenService *services.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authMiddleware := NewAuthMiddleware(tokenService)

	router.GET("/protected", authMiddleware.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c)})
	})

	return router
}

func requestWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeMsg(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["msg"]
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	tokenService := services.NewTokenService("test-secret", time.Hour)
	router := setupAuthRouter(tokenService)

	w := requestWithToken(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "No token, authorization denied", decodeMsg(t, w))
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	tokenService := services.NewTokenService("test-secret", time.Hour)
	router := setupAuthRouter(tokenService)

	w := requestWithToken(router, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid", decodeMsg(t, w))
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	otherService := services.NewTokenService("other-secret", time.Hour)
	token, err := otherService.GenerateToken(1)
	assert.NoError(t, err)

	tokenService := services.NewTokenService("test-secret", time.Hour)
	router := setupAuthRouter(tokenService)

	w := requestWithToken(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid", decodeMsg(t, w))
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expiredService := services.NewTokenService("test-secret", -time.Minute)
	token, err := expiredService.GenerateToken(1)
	assert.NoError(t, err)

	tokenService := services.NewTokenService("test-secret", time.Hour)
	router := setupAuthRouter(tokenService)

	w := requestWithToken(router, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is not valid", decodeMsg(t, w))
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokenService := services.NewTokenService("test-secret", time.Hour)
	token, err := tokenService.GenerateToken(7)
	assert.NoError(t, err)

	router := setupAuthRouter(tokenService)

	w := requestWithToken(router, token)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]uint
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, uint(7), body["userID"])
}
