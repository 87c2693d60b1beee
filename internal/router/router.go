package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"ecohub/internal/auth"
	apperrors "ecohub/internal/errors"
	"ecohub/internal/handler"
	"ecohub/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	productHandler *handler.ProductHandler,
	challengeHandler *handler.ChallengeHandler,
	sellerHandler *handler.SellerHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Session middleware: echo-jwt handles header extraction and 401s,
	// validation itself goes through our JWT service so the stored context
	// value is always *auth.Claims.
	session := echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
	})

	// Public auth routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/users", authHandler.ListUsers)
	api.GET("/auth/user/:id", authHandler.GetUser)
	api.GET("/auth/stats", authHandler.PublicStats)

	// Products: public reads, seller/admin writes
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	sellerOnly := api.Group("/products", session, RequireRoles(model.RoleSeller, model.RoleAdmin))
	sellerOnly.POST("", productHandler.Create)
	sellerOnly.PUT("/:id", productHandler.Update)
	sellerOnly.DELETE("/:id", productHandler.Delete)

	// Challenges: public reads; admin gating for writes happens inside the
	// challenge operations themselves, the routes only require a session.
	api.GET("/challenges", challengeHandler.List)
	api.GET("/challenges/:id", challengeHandler.Get)
	api.POST("/challenges", challengeHandler.Create, session)
	api.PUT("/challenges/:id", challengeHandler.Update, session)
	api.DELETE("/challenges/:id", challengeHandler.Delete, session)
	api.GET("/challenges/user/me", challengeHandler.MyEnrollments, session)
	api.POST("/challenges/join/:challengeId", challengeHandler.Join, session)
	api.PUT("/challenges/progress/:userChallengeId", challengeHandler.UpdateProgress, session)
	api.PUT("/challenges/complete/:userChallengeId", challengeHandler.Complete, session)

	// Sellers
	api.GET("/sellers/:slug", sellerHandler.GetBySlug)
	api.POST("/sellers/apply", sellerHandler.Apply, session)

	// Orders
	api.POST("/orders", orderHandler.Create, session)
	api.GET("/orders/me", orderHandler.ListMine, session)

	// Payment (mock)
	api.POST("/payment/initiate", paymentHandler.Initiate, session)
	api.POST("/payment/confirm", paymentHandler.Confirm, session)

	// Admin: session plus role gate on the whole group
	admin := api.Group("/admin", session, RequireRoles(model.RoleAdmin))
	admin.GET("/sellers/pending", adminHandler.ListPendingSellers)
	admin.POST("/sellers/:id/approve", adminHandler.ApproveSeller)
	admin.GET("/products/pending", adminHandler.ListPendingProducts)
	admin.POST("/products/:id/approve", adminHandler.ApproveProduct)
	admin.POST("/products/:id/reject", adminHandler.RejectProduct)
	admin.GET("/posts/pending", adminHandler.ListPendingPosts)
	admin.POST("/posts/:id/approve", adminHandler.ApprovePost)
	admin.POST("/posts/:id/reject", adminHandler.RejectPost)
	admin.GET("/stats", adminHandler.PlatformStats)
	admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
}

// RequireRoles allows the request through only when the session role is one
// of the listed roles. Runs after the session middleware.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok || claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Message: "invalid token",
				})
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Message: "access denied",
			})
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
