package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"backend/commons/enums"
	"backend/configs"
	"backend/database"
	"backend/middlewares"
	admin_module "backend/modules/admin-module"
	mailer_module "backend/modules/mailer-module"
	waitlist_module "backend/modules/waitlist-module"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	db, err := database.Connect(configs.DatabasePath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	logger.Info("database ready", zap.String("path", configs.DatabasePath))

	if configs.PaymentSecretKey == "" {
		logger.Info("payments disabled, PAYMENT_SECRET_KEY not set")
	}
	if configs.AdminKey == "" {
		logger.Warn("ADMIN_KEY not set, admin endpoints are locked")
	}

	mailer := mailer_module.NewService(logger)
	waitlistSvc := waitlist_module.NewService(db, mailer, logger)
	adminSvc := admin_module.NewService(db, logger)

	r := newRouter(db, waitlistSvc, adminSvc)
	if err := r.Run(":" + configs.AppPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newRouter(db *gorm.DB, waitlistSvc *waitlist_module.Service, adminSvc *admin_module.Service) *gin.Engine {
	if configs.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   enums.INTERNAL_ERROR,
			"message": "internal server error",
		})
	}))

	api := r.Group("/api")
	waitlist_module.RegisterRoutes(api, waitlistSvc, middlewares.RateLimit(rateLimitMax()))
	admin_module.RegisterRoutes(api, adminSvc, middlewares.AdminKey(configs.AdminKey))
	api.GET("/health", healthHandler(db))

	r.NoRoute(staticFallback("public"))
	return r
}

// rateLimitMax resolves the per-IP submission cap for the 15 minute window.
// Production defaults tight, everything else stays permissive for local work.
func rateLimitMax() int64 {
	if configs.RateLimitMax != "" {
		if n, err := strconv.ParseInt(configs.RateLimitMax, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	if configs.IsProduction() {
		return 5
	}
	return 100
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "connected"
		status := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			dbStatus = "error"
			status = "degraded"
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC(),
			"database":  dbStatus,
		})
	}
}

// staticFallback serves the marketing pages for anything outside /api,
// falling back to index.html for unknown paths.
func staticFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") || c.Request.Method != http.MethodGet {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   enums.NOT_FOUND,
				"message": "route not found",
			})
			return
		}
		target := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			c.File(target)
			return
		}
		index := filepath.Join(dir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   enums.NOT_FOUND,
			"message": "page not found",
		})
	}
}

func newLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if configs.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
