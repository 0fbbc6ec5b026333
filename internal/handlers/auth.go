package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendwise-app/spendwise-api/internal/middleware"
	"github.com/spendwise-app/spendwise-api/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
}

func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

type ErrorResponse struct {
	Msg string `json:"msg"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Description Create an account and return a signed auth token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Please enter all fields"})
		return
	}

	token, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch err {
		case services.ErrUserExists:
			c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "User already exists"})
		default:
			log.Printf("register: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// Login godoc
// @Summary Authenticate a user
// @Description Verify credentials and return a signed auth token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Please enter all fields"})
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		switch err {
		case services.ErrInvalidCredentials:
			c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Invalid credentials"})
		default:
			log.Printf("login: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// GetCurrentUser godoc
// @Summary Get the authenticated user
// @Description Return the caller's account without the credential field
// @Tags auth
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.userService.GetByID(userID)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Msg: "User not found"})
		default:
			log.Printf("get current user: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(user))
}
