package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spendwise-app/spendwise-api/internal/config"
	"github.com/spendwise-app/spendwise-api/internal/database"
	"github.com/spendwise-app/spendwise-api/internal/handlers"
	"github.com/spendwise-app/spendwise-api/internal/middleware"
	"github.com/spendwise-app/spendwise-api/internal/repository"
	"github.com/spendwise-app/spendwise-api/internal/services"

	_ "github.com/spendwise-app/spendwise-api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Spendwise API
// @version         1.0
// @description     Personal finance tracking backend
// @BasePath        /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-auth-token
// @description Signed identity token issued by POST /users or POST /auth
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	userRepo := repository.NewUserRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)

	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := services.NewAuthService(userRepo, tokenService)
	userService := services.NewUserService(userRepo)
	expenseService := services.NewExpenseService(expenseRepo)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	authHandler := handlers.NewAuthHandler(authService, userService)
	userHandler := handlers.NewUserHandler(userService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.POST("/users", authHandler.Register)
		api.POST("/auth", authHandler.Login)
		api.GET("/auth", authMiddleware.RequireAuth(), authHandler.GetCurrentUser)

		expenses := api.Group("/expenses")
		expenses.Use(authMiddleware.RequireAuth())
		{
			expenses.GET("", expenseHandler.List)
			expenses.POST("", expenseHandler.Create)

			expenses.GET("/user", userHandler.GetUserData)
			expenses.PUT("/user", userHandler.UpdateUserData)

			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Delete)
		}
	}

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Starting Spendwise server on %s", addr)
	log.Fatal(router.Run(addr))
}
