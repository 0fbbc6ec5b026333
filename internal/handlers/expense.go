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

type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

type CreateExpenseRequest struct {
	Type        string     `json:"type" binding:"required"`
	Amount      *float64   `json:"amount" binding:"required"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	CategoryID  *int       `json:"categoryId"`
}

type UpdateExpenseRequest struct {
	Type        *string    `json:"type"`
	Amount      *float64   `json:"amount"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	CategoryID  *int       `json:"categoryId"`
}

type ExpenseResponse struct {
	ID          uint      `json:"id"`
	User        uint      `json:"user"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CategoryID  *int      `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MessageResponse struct {
	Msg string `json:"msg"`
}

func NewExpenseResponse(e *models.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		User:        e.UserID,
		Type:        e.Type,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		CategoryID:  e.CategoryID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// List godoc
// @Summary List expenses
// @Description Get all of the caller's expenses, newest first
// @Tags expenses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} ExpenseResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)

	expenses, err := h.expenseService.ListForUser(userID)
	if err != nil {
		log.Printf("list expenses: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "Server error"})
		return
	}

	response := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		response[i] = NewExpenseResponse(&expenses[i])
	}

	c.JSON(http.StatusOK, response)
}

// Create godoc
// @Summary Add an expense
// @Description Record a new expense owned by the caller
// @Tags expenses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body CreateExpenseRequest true "Expense details"
// @Success 200 {object} ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Type and amount are required"})
		return
	}

	input := services.NewExpense{
		Type:        req.Type,
		Amount:      *req.Amount,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	expense, err := h.expenseService.Create(userID, input)
	if err != nil {
		log.Printf("create expense: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "Server error"})
		return
	}

	c.JSON(http.StatusOK, NewExpenseResponse(expense))
}

// Update godoc
// @Summary Update an expense
// @Description Replace the supplied fields on one of the caller's expenses
// @Tags expenses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Expense ID"
// @Param request body UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var idParam struct {
		ID uint `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&idParam); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Invalid expense ID"})
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Invalid request body"})
		return
	}

	patch := services.ExpensePatch{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		CategoryID:  req.CategoryID,
	}

	expense, err := h.expenseService.Update(idParam.ID, userID, patch)
	if err != nil {
		switch err {
		case services.ErrExpenseNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Msg: "Expense not found"})
		case services.ErrNotExpenseOwner:
			c.JSON(http.StatusUnauthorized, ErrorResponse{Msg: "Not authorized"})
		default:
			log.Printf("update expense: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, NewExpenseResponse(expense))
}

// Delete godoc
// @Summary Delete an expense
// @Description Remove one of the caller's expenses
// @Tags expenses
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Expense ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var idParam struct {
		ID uint `uri:"id" binding:"required"`
	}
	if err := c.ShouldBindUri(&idParam); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Msg: "Invalid expense ID"})
		return
	}

	err := h.expenseService.Delete(idParam.ID, userID)
	if err != nil {
		switch err {
		case services.ErrExpenseNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Msg: "Expense not found"})
		case services.ErrNotExpenseOwner:
			c.JSON(http.StatusUnauthorized, ErrorResponse{Msg: "Not authorized"})
		default:
			log.Printf("delete expense: %v", err)
			c.JSON(http.StatusInternalServerError, ErrorResponse{Msg: "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Msg: "Expense removed"})
}
