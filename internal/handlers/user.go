package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spendwise-app/spendwise-api/internal/middleware"
	"github.com/spendwise-app/spendwise-api/internal/models"
	"github.com/spendwise-app/spendwise-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type UpdateUserRequest struct {
	Categories        *[]models.Category         `json:"categories"`
	RecurringExpenses *[]models.RecurringExpense `json:"recurringExpenses"`
	Budget            *float64                   `json:"budget"`
}

// UserResponse is the account without its credential field.
type UserResponse struct {
	ID                uint                      `json:"id"`
	Username          string                    `json:"username"`
	Email             string                    `json:"email"`
	Categories        []models.Category         `json:"categories"`
	RecurringExpenses []models.RecurringExpense `json:"recurringExpenses"`
	Budget            float64                   `json:"budget"`
	CreatedAt         time.Time                 `json:"createdAt"`
	UpdatedAt         time.Time                 `json:"updatedAt"`
}

func NewUserResponse(u *models.User) UserResponse {
	categories := u.Categories
	if categories == nil {
		categories = []models.Category{}
	}
	recurring := u.RecurringExpenses
	if recurring == nil {
		recurring = []models.RecurringExpense{}
	}

	return UserResponse{
		ID:                u.ID,
		Username:          u.Username,
		Email:             u.Email,
		Categories:        categories,
		RecurringExpenses: recurring,
		Budget:            u.Budget,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

// GetUserData godoc
// @Summary Get user configuration
// @Description Get the caller's categories, recurring expenses and budget
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /expenses/user [get]
func (h *UserHandler) GetUserData(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, err := h.userService.GetByID(userID)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Msg: "User not found"})
		default:
			log.Printf("get user data: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(user))
}

// UpdateUserData godoc
// @Summary Update user configuration
// @Description Replace the supplied fields wholesale on the caller's account
// @Tags user
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body UpdateUserRequest true "Fields to replace"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /expenses/user [put]
func (h *UserHandler) UpdateUserData(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Invalid request body"})
		return
	}

	patch := services.SettingsPatch{
		Categories:        req.Categories,
		RecurringExpenses: req.RecurringExpenses,
		Budget:            req.Budget,
	}

	user, err := h.userService.UpdateSettings(userID, patch)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Msg: "User not found"})
		default:
			log.Printf("update user data: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, NewUserResponse(user))
}
