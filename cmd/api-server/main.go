package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/campushq/project-review-api/api/swagger"
	"github.com/campushq/project-review-api/internal/handler"
	"github.com/campushq/project-review-api/internal/middleware"
	"github.com/campushq/project-review-api/internal/models"
	"github.com/campushq/project-review-api/internal/repository"
	"github.com/campushq/project-review-api/internal/service"
	"github.com/campushq/project-review-api/pkg/cache"
	"github.com/campushq/project-review-api/pkg/config"
	"github.com/campushq/project-review-api/pkg/database"
	"github.com/campushq/project-review-api/pkg/logger"
	corsmiddleware "github.com/campushq/project-review-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushq/project-review-api/pkg/middleware/requestid"
)

// @title Project Review API
// @version 1.0.0
// @description Rubric forms, evaluation submissions and weighted final results
// @BasePath /api
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, continuing without cache", zap.Error(err))
		} else {
			repo := repository.NewCacheRepository(redisClient, logr)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cfg.Cache.Enabled && cacheRepo != nil)

	rubricRepo := repository.NewRubricRepository(db)
	evaluationRepo := repository.NewEvaluationRepository(db)
	weightageRepo := repository.NewWeightageRepository(db)
	resultRepo := repository.NewResultRepository(db)
	studentRepo := repository.NewStudentRepository(db)

	tokenSvc := service.NewTokenService(cfg.JWT.Secret)
	rubricSvc := service.NewRubricService(rubricRepo, cacheSvc, validate, logr)
	evaluationSvc := service.NewEvaluationService(evaluationRepo, studentRepo, metricsSvc, validate, logr)
	weightageSvc := service.NewWeightageService(weightageRepo, validate, logr)
	resultSvc := service.NewResultService(resultRepo, evaluationRepo, weightageRepo, metricsSvc, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, logr)
	exportSvc := service.NewExportService(resultRepo, service.ExportConfig{
		Enabled:       cfg.Export.Enabled,
		Establishment: cfg.Export.Establishment,
	}, logr, nil, nil)

	rubricHandler := handler.NewRubricHandler(rubricSvc)
	evaluationHandler := handler.NewEvaluationHandler(evaluationSvc)
	weightageHandler := handler.NewWeightageHandler(weightageSvc)
	resultHandler := handler.NewResultHandler(resultSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := middleware.JWT(tokenSvc)
	api := r.Group(cfg.APIPrefix)
	api.Use(auth)
	{
		api.POST("/forms", middleware.RequireRoles(models.RolePanel, models.RoleAdmin), rubricHandler.Create)
		api.GET("/forms", rubricHandler.List)
		api.GET("/forms/:formTitle", rubricHandler.GetByTitle)

		evaluators := middleware.RequireRoles(models.RolePanel, models.RoleGuide, models.RoleAdmin)
		api.POST("/evaluations/:evaluatorClass", evaluators, evaluationHandler.Submit)
		api.GET("/evaluations/:evaluatorClass/check", evaluators, evaluationHandler.Check)
		api.PUT("/evaluations/:evaluatorClass/:id", evaluators, evaluationHandler.Update)
		api.GET("/evaluations", evaluationHandler.Detail)
		api.GET("/guide/marks", evaluationHandler.GuideMarks)
		api.GET("/guide/completed", evaluationHandler.GuideCompleted)

		api.PUT("/weightage", middleware.RequireRoles(models.RolePanel, models.RoleAdmin), weightageHandler.Set)
		api.GET("/weightage", weightageHandler.Get)

		staff := middleware.RequireRoles(models.RolePanel, models.RoleGuide, models.RoleAdmin)
		api.POST("/results/:rollNo/aggregate", staff, resultHandler.Aggregate)
		api.GET("/results/exists", resultHandler.Exists)
		api.POST("/results", staff, resultHandler.Save)
		api.PUT("/results/:rollNo", staff, resultHandler.Update)
		api.GET("/results", resultHandler.Breakdown)
		api.GET("/results/summary", staff, resultHandler.Summary)
		api.GET("/results/export", staff, exportHandler.Export)

		api.GET("/students", staff, studentHandler.List)
		api.GET("/students/:rollNo", middleware.RBAC("PANEL", "GUIDE", "ADMIN", "SELF"), studentHandler.Get)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
