package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"alumnihub/internal/auth"
	"alumnihub/internal/config"
	"alumnihub/internal/handler"
	"alumnihub/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	postHandler *handler.PostHandler,
	adminHandler *handler.AdminHandler,
	newsletterHandler *handler.NewsletterHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	api.GET("/alumni/profiles", profileHandler.ListProfiles)
	api.GET("/alumni/profiles/:id", profileHandler.GetProfile)

	// Public post reads carry an optional identity so admins can request
	// non-approved status filters.
	optional := auth.OptionalUser(jwtService, userRepo)
	api.GET("/posts", postHandler.ListPosts, optional)
	api.GET("/posts/:id", postHandler.GetPost)

	api.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
	api.DELETE("/newsletter/unsubscribe/:email", newsletterHandler.Unsubscribe)

	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	})
	loadUser := auth.LoadUser(userRepo)

	// Authenticated routes: valid token plus an active account.
	secured := api.Group("", jwtMiddleware, loadUser, auth.RequireActive())
	secured.GET("/me", authHandler.Me)

	secured.POST("/alumni/profile", profileHandler.CreateProfile)
	secured.GET("/alumni/profile", profileHandler.GetMyProfile)
	secured.PUT("/alumni/profile", profileHandler.UpdateMyProfile)

	secured.POST("/posts", postHandler.CreatePost)
	secured.GET("/posts/my-posts", postHandler.MyPosts)
	secured.PUT("/posts/:id", postHandler.UpdatePost)
	secured.DELETE("/posts/:id", postHandler.DeletePost)

	// Admin routes: role gate on top of the token gate.
	admin := api.Group("/admin", jwtMiddleware, loadUser, auth.RequireAdmin())
	admin.GET("/posts/pending", adminHandler.PendingPosts)
	admin.PUT("/posts/:id/approve", adminHandler.ApprovePost)
	admin.PUT("/posts/:id/reject", adminHandler.RejectPost)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/toggle-active", adminHandler.ToggleUserActive)

	subscribers := api.Group("/newsletter", jwtMiddleware, loadUser, auth.RequireAdmin())
	subscribers.GET("/subscribers", newsletterHandler.Subscribers)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
