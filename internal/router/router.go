// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/handlers"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/middleware"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/services"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/utils"
)

// Dependencies are the long-lived services the HTTP layer is built from.
// AuthService is nil when sign-in is handled by Firebase.
type Dependencies struct {
	AuthService    *services.AuthService
	StudentService *services.StudentService
	LeaveService   *services.LeaveService
	Verifier       services.TokenVerifier
}

// Router owns the gin engine and the rate limiters it started.
type Router struct {
	Engine   *gin.Engine
	limiters []*middleware.RateLimiter
}

// Close stops background limiter cleanup.
func (r *Router) Close() {
	for _, l := range r.limiters {
		l.Stop()
	}
}

func Initialize(cfg *config.Config, deps Dependencies) *Router {
	// Initialize handlers
	authHandler := handlers.NewAuthHandler(deps.AuthService)
	studentHandler := handlers.NewStudentHandler(deps.StudentService)
	leaveHandler := handlers.NewLeaveHandler(deps.LeaveService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	generalLimiter := middleware.NewRateLimiter(rate.Every(100*time.Millisecond), 20)
	authLimiter := middleware.NewRateLimiter(rate.Every(12*time.Second), 5)
	submitLimiter := middleware.NewRateLimiter(rate.Every(time.Minute), 5)

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.AllowedOrigins))
	r.Use(middleware.I18nMiddleware(cfg.I18n.DefaultLocale))
	r.Use(generalLimiter.Middleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.Logging.Build,
			"store":   cfg.Store.Backend,
		})
	})

	authRequired := middleware.AuthRequired(deps.Verifier)

	// API v1 routes
	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", authLimiter.Middleware(), authHandler.Login)
			auth.GET("/me", authRequired, authHandler.GetIdentity)
		}

		students := v1.Group("/students")
		students.Use(authRequired, middleware.StudentRequired())
		{
			students.GET("/me", studentHandler.GetMyProfile)
		}

		leaves := v1.Group("/leave-applications")
		leaves.Use(authRequired, middleware.StudentRequired())
		{
			leaves.POST("", submitLimiter.Middleware(), leaveHandler.Submit)
			leaves.GET("", leaveHandler.ListMine)
		}

		admin := v1.Group("/admin")
		admin.Use(authRequired, middleware.AdminRequired())
		{
			admin.GET("/leave-applications", leaveHandler.ListForReview)
			admin.PUT("/leave-applications/:id/approve", leaveHandler.Approve)
			admin.PUT("/leave-applications/:id/reject", leaveHandler.Reject)
		}
	}

	return &Router{
		Engine:   r,
		limiters: []*middleware.RateLimiter{generalLimiter, authLimiter, submitLimiter},
	}
}
