package main

import (
	"log"
	"net/http"
	"os"

	_ "ecohub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"ecohub/internal/auth"
	"ecohub/internal/cache"
	"ecohub/internal/config"
	"ecohub/internal/db"
	"ecohub/internal/handler"
	"ecohub/internal/model"
	"ecohub/internal/repository"
	"ecohub/internal/router"
	"ecohub/internal/service"
)

// @title EcoHub API
// @version 1.0
// @description Eco marketplace and community platform: users, sellers, products, challenges, orders and mock payments.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.UserChallenge{},
			&model.Challenge{},
			&model.Order{},
			&model.Product{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.Challenge{},
		&model.UserChallenge{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	challengeRepo := repository.NewChallengeRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo)
	statsService := service.NewStatsService(userRepo, productRepo, orderRepo, cacheClient)
	adminService := service.NewAdminService(userRepo, productRepo, cacheClient)
	productService := service.NewProductService(productRepo, cacheClient)
	challengeService := service.NewChallengeService(challengeRepo, enrollmentRepo)
	sellerService := service.NewSellerService(userRepo)
	orderService := service.NewOrderService(orderRepo)
	paymentService := service.NewPaymentService(orderRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, userService, statsService)
	adminHandler := handler.NewAdminHandler(adminService, statsService)
	productHandler := handler.NewProductHandler(productService)
	challengeHandler := handler.NewChallengeHandler(challengeService)
	sellerHandler := handler.NewSellerHandler(sellerService)
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		adminHandler,
		productHandler,
		challengeHandler,
		sellerHandler,
		orderHandler,
		paymentHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
