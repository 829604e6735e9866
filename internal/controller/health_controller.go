package controller

import (
	"context"
	"net/http"
	"time"

	"language_quiz_backend/internal/repository"
	"language_quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "Language Learning Quiz API"
	serviceVersion = "1.0.0"
)

type HealthController struct {
	Repo        *repository.QuizRepository
	Cache       repository.QuizCache
	CacheActive bool
	Environment string
}

func NewHealthController(repo *repository.QuizRepository, cache repository.QuizCache, cacheActive bool, environment string) *HealthController {
	return &HealthController{Repo: repo, Cache: cache, CacheActive: cacheActive, Environment: environment}
}

func (c *HealthController) components(ctx context.Context) (gin.H, bool) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	healthy := true
	components := gin.H{"database": "up", "cache": "disabled"}
	if err := c.Repo.Ping(ctx); err != nil {
		components["database"] = "down"
		healthy = false
	}
	if c.CacheActive {
		components["cache"] = "up"
		if err := c.Cache.Ping(ctx); err != nil {
			components["cache"] = "down"
			healthy = false
		}
	}
	return components, healthy
}

// @Summary Service health
// @Description Liveness of the service, its database and cache.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	components, healthy := c.components(ctx.Request.Context())

	status, code := "healthy", http.StatusOK
	if !healthy {
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	ctx.JSON(code, gin.H{
		"status":      status,
		"service":     serviceName,
		"version":     serviceVersion,
		"environment": c.Environment,
		"components":  components,
	})
}

// @Summary Service health in the response envelope
// @Tags System
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.ErrorResponse
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	components, healthy := c.components(ctx.Request.Context())
	if !healthy {
		util.Error(ctx, http.StatusServiceUnavailable, "Service unavailable", gin.H{"components": components})
		return
	}

	util.Success(ctx, "Service is healthy", gin.H{
		"status":     "ok",
		"components": components,
	})
}

// @Summary API index
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (c *HealthController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Welcome to the Language Learning Quiz API!",
		"description": "A quiz engine for language learning platforms",
		"version":     serviceVersion,
		"health":      "OK",
		"api_info":    apiInfo(),
	})
}

func apiInfo() gin.H {
	return gin.H{
		"api_version": "v1",
		"base_url":    "/api/v1",
		"endpoints": gin.H{
			"quiz_management": gin.H{
				"base_path":   "/api/v1/quizzes",
				"description": "Endpoints for managing quizzes (educators)",
				"methods": gin.H{
					"POST /api/v1/quizzes":                  "Create a new quiz",
					"GET /api/v1/quizzes":                   "Get all quizzes (with pagination/filtering)",
					"GET /api/v1/quizzes/{id}":              "Get a specific quiz",
					"PUT /api/v1/quizzes/{id}":              "Update a quiz",
					"DELETE /api/v1/quizzes/{id}":           "Delete a quiz",
					"GET /api/v1/quizzes/categories":        "Get available categories",
					"GET /api/v1/quizzes/difficulty-levels": "Get difficulty levels",
				},
			},
			"quiz_sessions": gin.H{
				"base_path":   "/api/v1/quiz-sessions",
				"description": "Endpoints for taking quizzes (students)",
				"methods": gin.H{
					"POST /api/v1/quiz-sessions/start/{id}":       "Start a quiz session",
					"POST /api/v1/quiz-sessions/submit/{id}":      "Submit quiz answers",
					"GET /api/v1/quiz-sessions/preview/{id}":      "Preview a quiz",
					"GET /api/v1/quiz-sessions/stats/{id}":        "Get quiz statistics",
					"POST /api/v1/quiz-sessions/validate-answers": "Validate answer format",
					"POST /api/v1/quiz-sessions/time-check/{id}":  "Check remaining time",
				},
			},
		},
		"authentication": gin.H{
			"note": "Identity headers are recorded but not verified",
			"headers": gin.H{
				util.HeaderUserID:    "Educator/admin identifier (optional)",
				util.HeaderStudentID: "Student identifier (optional)",
			},
		},
	}
}
