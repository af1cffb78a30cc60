package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yatnesh1410/MovieAPI/internal/config"
	apphttp "github.com/Yatnesh1410/MovieAPI/internal/http"
	"github.com/Yatnesh1410/MovieAPI/internal/http/handlers"
	"github.com/Yatnesh1410/MovieAPI/internal/http/middleware"
	"github.com/Yatnesh1410/MovieAPI/internal/infrastructure/auth"
	"github.com/Yatnesh1410/MovieAPI/internal/infrastructure/cache"
	"github.com/Yatnesh1410/MovieAPI/internal/infrastructure/database"
	"github.com/Yatnesh1410/MovieAPI/internal/infrastructure/notifications"
	"github.com/Yatnesh1410/MovieAPI/internal/infrastructure/repositories"
	"github.com/Yatnesh1410/MovieAPI/internal/infrastructure/storage"
	"github.com/Yatnesh1410/MovieAPI/internal/services"
)

const movieCacheTTL = 10 * time.Minute

// Run assembles the application from configuration and starts the HTTP
// server. It blocks until the server exits.
func Run(cfg *config.Config) error {
	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("database migration failed: %w", err)
	}

	redisClient := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}

	casbinSvc, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return fmt.Errorf("casbin setup failed: %w", err)
	}
	if err := seedDefaultPolicies(casbinSvc); err != nil {
		return fmt.Errorf("policy seeding failed: %w", err)
	}

	posterStorage, err := storage.NewLocalPosterStorage(cfg.PosterDir)
	if err != nil {
		return fmt.Errorf("poster storage setup failed: %w", err)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	refreshRepo := repositories.NewRefreshTokenRepository(db)
	resetRepo := repositories.NewPasswordResetRepository(db)
	movieRepo := repositories.NewMovieRepository(db)

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	jwtSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)
	mailSvc := notifications.NewMailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	movieCache := cache.NewRedisMovieCache(redisClient.Client, movieCacheTTL)

	// Business services
	refreshSvc := services.NewRefreshTokenService(userRepo, refreshRepo, cfg.RefreshTTL)
	authSvc := services.NewAuthService(userRepo, passwordSvc, jwtSvc, refreshSvc, int64(cfg.AccessTTL.Seconds()))
	resetSvc := services.NewPasswordResetService(userRepo, resetRepo, passwordSvc, mailSvc, cfg.OTPTTL)
	movieSvc := services.NewMovieService(movieRepo, posterStorage, movieCache, cfg.BaseURL)
	policySvc := services.NewPolicyService(casbinSvc.E)

	router := apphttp.NewRouter(apphttp.RouterConfig{
		AuthHandler:           handlers.NewAuthHandler(authSvc),
		ForgotPasswordHandler: handlers.NewForgotPasswordHandler(resetSvc),
		MovieHandler:          handlers.NewMovieHandler(movieSvc, posterStorage),
		PolicyHandler:         handlers.NewPolicyHandler(policySvc),
		AuthMW:                middleware.NewAuthMW(jwtSvc),
		CasbinMW:              middleware.NewCasbinMW(casbinSvc.E),
	})

	log.Printf("listening on :%s", cfg.Port)
	return router.Run(":" + cfg.Port)
}

// seedDefaultPolicies installs the baseline role rules on first boot. An
// existing policy table is left untouched so admin edits survive restarts.
func seedDefaultPolicies(svc *auth.CasbinService) error {
	policies, err := svc.E.GetPolicy()
	if err != nil {
		return err
	}
	if len(policies) > 0 {
		return nil
	}

	defaults := [][]string{
		{"role_admin", "/api/v1/movie/*", "(GET)|(POST)|(PUT)|(DELETE)"},
		{"role_admin", "/admin/policies", "(GET)|(POST)|(DELETE)"},
		{"role_user", "/api/v1/movie/*", "GET"},
	}
	for _, p := range defaults {
		if _, err := svc.E.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return svc.E.SavePolicy()
}
