package app

import (
	"net/http"
	"time"

	"language_quiz_backend/docs"
	"language_quiz_backend/internal/config"
	"language_quiz_backend/internal/middleware"
	"language_quiz_backend/internal/util"
	"language_quiz_backend/pkg/logger"
	"language_quiz_backend/pkg/monitoring"
	"language_quiz_backend/pkg/security"
	"language_quiz_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path))
		util.AbortWithError(c, http.StatusInternalServerError, "Internal server error", nil)
	}))
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
	router.Use(middleware.Identity())

	router.NoRoute(func(c *gin.Context) {
		util.NotFound(c, "Resource not found")
	})
	router.NoMethod(func(c *gin.Context) {
		util.Error(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	v1 := router.Group("/api/v1")
	{
		a.registerQuizRoutes(v1, c)
		a.registerSessionRoutes(v1, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	router.GET("/", c.health.Index)
	router.GET("/health", c.health.Health)
	router.GET("/api/health", c.health.HealthCheck)
}

// Literal segments are registered before :id.
func (a *App) registerQuizRoutes(rg *gin.RouterGroup, c *controllers) {
	quizzes := rg.Group("/quizzes")
	{
		quizzes.GET("/categories", c.quiz.GetCategories)
		quizzes.GET("/difficulty-levels", c.quiz.GetDifficultyLevels)

		quizzes.POST("", c.quiz.CreateQuiz)
		quizzes.GET("", c.quiz.ListQuizzes)
		quizzes.GET("/:id", c.quiz.GetQuiz)
		quizzes.PUT("/:id", c.quiz.UpdateQuiz)
		quizzes.DELETE("/:id", c.quiz.DeleteQuiz)
	}
}

func (a *App) registerSessionRoutes(rg *gin.RouterGroup, c *controllers) {
	sessions := rg.Group("/quiz-sessions")
	{
		sessions.POST("/start/:id", c.session.StartSession)
		sessions.POST("/submit/:id", c.session.SubmitQuiz)
		sessions.GET("/preview/:id", c.session.PreviewQuiz)
		sessions.GET("/stats/:id", c.session.GetStats)
		sessions.POST("/validate-answers", c.session.ValidateAnswers)
		sessions.POST("/time-check/:id", c.session.TimeCheck)
	}
}
