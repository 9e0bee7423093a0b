package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/takwin-app/landing-api/api/swagger"
	"github.com/takwin-app/landing-api/internal/handler"
	"github.com/takwin-app/landing-api/internal/middleware"
	"github.com/takwin-app/landing-api/internal/repository"
	"github.com/takwin-app/landing-api/internal/service"
	"github.com/takwin-app/landing-api/pkg/config"
	"github.com/takwin-app/landing-api/pkg/database"
	"github.com/takwin-app/landing-api/pkg/logger"
	corsmiddleware "github.com/takwin-app/landing-api/pkg/middleware/cors"
	reqidmiddleware "github.com/takwin-app/landing-api/pkg/middleware/requestid"
)

// @title Takwin Landing API
// @version 1.0.0
// @description Marketing-site backend: public course/testimonial listings, lead capture and the admin panel API
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewSQLite(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to open database", "path", cfg.Database.Path, "error", err)
	}
	defer db.Close()

	// The seed runs before the server accepts traffic so the first admin
	// course listing is never empty after a cold start.
	if err := database.SeedCourses(context.Background(), db); err != nil {
		logr.Sugar().Fatalw("failed to seed courses", "error", err)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	courseSvc := service.NewCourseService(repository.NewCourseRepository(db), logr)
	testimonialSvc := service.NewTestimonialService(repository.NewTestimonialRepository(db), logr)
	leadSvc := service.NewLeadService(repository.NewLeadRepository(db), validate, logr)
	authSvc := service.NewAuthService(service.NewMemorySessionStore(), cfg.Admin, validate, logr)

	courseHandler := handler.NewCourseHandler(courseSvc)
	testimonialHandler := handler.NewTestimonialHandler(testimonialSvc)
	leadHandler := handler.NewLeadHandler(leadSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		api.GET("/courses", courseHandler.ListPublic)
		api.GET("/testimonials", testimonialHandler.ListPublic)
		api.POST("/leads", leadHandler.Create)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/login", authHandler.Login)
		admin.POST("/logout", authHandler.Logout)

		adminAPI := admin.Group("/api", middleware.Session(authSvc))
		{
			adminAPI.GET("/courses", courseHandler.List)
			adminAPI.POST("/courses", courseHandler.Create)
			adminAPI.PUT("/courses/:id", courseHandler.Update)
			adminAPI.DELETE("/courses/:id", courseHandler.Delete)

			adminAPI.GET("/testimonials", testimonialHandler.List)
			adminAPI.POST("/testimonials", testimonialHandler.Create)
			adminAPI.PUT("/testimonials/:id", testimonialHandler.Update)
			adminAPI.DELETE("/testimonials/:id", testimonialHandler.Delete)

			adminAPI.GET("/leads", leadHandler.List)
		}
	}

	// Landing page and admin UI are plain static files.
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting",
		"addr", addr,
		"env", cfg.Env,
		"db", cfg.Database.Path,
		"fb_pixel", cfg.Analytics.FacebookPixelID != "",
	)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
