package router

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	"devfolio/docs"
	"devfolio/internal/auth"
	"devfolio/internal/config"
	"devfolio/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
	newsletterHandler *handler.NewsletterHandler,
	projectHandler *handler.ProjectHandler,
	skillHandler *handler.SkillHandler,
	experienceHandler *handler.ExperienceHandler,
	testimonialHandler *handler.TestimonialHandler,
	blogHandler *handler.BlogHandler,
	statsHandler *handler.StatsHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", rateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow))

	// Public routes. The contact form carries its own, much stricter quota
	// on top of the API-wide limiter.
	api.POST("/contact", contactHandler.Submit,
		rateLimiter(cfg.ContactRateLimitMax, cfg.RateLimitWindow))
	api.POST("/newsletter", newsletterHandler.Subscribe)
	api.POST("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:id", projectHandler.Get)
	api.GET("/skills", skillHandler.List)
	api.GET("/experience", experienceHandler.List)
	api.GET("/testimonials", testimonialHandler.List)
	api.GET("/blog", blogHandler.List)
	api.GET("/blog/:slug", blogHandler.Get)

	api.POST("/auth/login", authHandler.Login)

	// Admin routes (require JWT authentication). Tokens are parsed through
	// the same service that issues them, so handlers see typed claims under
	// the "user" context key.
	admin := api.Group("/admin", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))

	admin.GET("/stats", statsHandler.Dashboard)

	admin.GET("/contacts", contactHandler.List)
	admin.GET("/contacts/:id", contactHandler.Get)
	admin.PATCH("/contacts/:id/read", contactHandler.MarkRead)
	admin.DELETE("/contacts/:id", contactHandler.Delete)

	admin.GET("/subscribers", newsletterHandler.ListSubscribers)

	admin.POST("/projects", projectHandler.Create)
	admin.PUT("/projects/:id", projectHandler.Update)
	admin.DELETE("/projects/:id", projectHandler.Delete)

	admin.POST("/skills", skillHandler.Create)
	admin.PUT("/skills/:id", skillHandler.Update)
	admin.DELETE("/skills/:id", skillHandler.Delete)

	admin.POST("/experience", experienceHandler.Create)
	admin.PUT("/experience/:id", experienceHandler.Update)
	admin.DELETE("/experience/:id", experienceHandler.Delete)

	admin.POST("/testimonials", testimonialHandler.Create)
	admin.PUT("/testimonials/:id", testimonialHandler.Update)
	admin.DELETE("/testimonials/:id", testimonialHandler.Delete)

	admin.POST("/blog", blogHandler.Create)
	admin.PUT("/blog/:id", blogHandler.Update)
	admin.DELETE("/blog/:id", blogHandler.Delete)
}

// rateLimiter builds a per-IP limiter allowing max requests per window.
// Requests over the quota get a 429 before the handler runs.
func rateLimiter(max int, window time.Duration) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(max) / window.Seconds()),
			Burst:     max,
			ExpiresIn: window,
		}),
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
