package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yatnesh1410/MovieAPI/internal/http/handlers"
	"github.com/Yatnesh1410/MovieAPI/internal/http/middleware"
)

// RouterConfig carries the handlers and middleware the router wires up
type RouterConfig struct {
	AuthHandler           *handlers.AuthHandler
	ForgotPasswordHandler *handlers.ForgotPasswordHandler
	MovieHandler          *handlers.MovieHandler
	PolicyHandler         *handlers.PolicyHandler
	AuthMW                *middleware.AuthMW
	CasbinMW              *middleware.CasbinMW
}

// NewRouter builds the gin engine with all routes registered
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/register", cfg.AuthHandler.Register)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.Refresh)
	}

	forgot := r.Group("/forgot-password")
	{
		forgot.POST("/verify-mail/:email", cfg.ForgotPasswordHandler.VerifyMail)
		forgot.POST("/verify-otp/:otp/:email", cfg.ForgotPasswordHandler.VerifyOTP)
		forgot.POST("/change-password/:email", cfg.ForgotPasswordHandler.ChangePassword)
	}

	// poster downloads are public, same as the URLs embedded in responses
	r.GET("/file/:filename", cfg.MovieHandler.ServeFile)

	movie := r.Group("/api/v1/movie")
	movie.Use(cfg.AuthMW.WithJWT(), cfg.CasbinMW.Enforce())
	{
		movie.POST("/add", cfg.MovieHandler.Add)
		movie.GET("/all", cfg.MovieHandler.All)
		movie.GET("/paginated", cfg.MovieHandler.Paginated)
		movie.GET("/:id", cfg.MovieHandler.Get)
		movie.PUT("/update/:id", cfg.MovieHandler.Update)
		movie.DELETE("/delete/:id", cfg.MovieHandler.Delete)
	}

	admin := r.Group("/admin/policies")
	admin.Use(cfg.AuthMW.WithJWT(), cfg.CasbinMW.Enforce())
	{
		admin.GET("", cfg.PolicyHandler.List)
		admin.POST("", cfg.PolicyHandler.Add)
		admin.DELETE("", cfg.PolicyHandler.Remove)
	}

	return r
}
