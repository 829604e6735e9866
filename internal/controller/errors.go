package controller

import (
	"errors"
	"net/http"

	"language_quiz_backend/internal/util"
	"language_quiz_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error onto the response envelope.
func respondError(ctx *gin.Context, err error) {
	var (
		verr  *util.ValidationError
		merr  *util.MalformedRequestError
		dbErr *util.DatabaseError
	)

	switch {
	case errors.Is(err, util.ErrQuizNotFound):
		util.NotFound(ctx, "Quiz not found")
	case errors.Is(err, util.ErrQuizUnavailable):
		util.Forbidden(ctx, util.ErrQuizUnavailable.Error())
	case errors.Is(err, util.ErrTimeLimitExceeded):
		util.UnprocessableEntity(ctx, util.ErrTimeLimitExceeded.Error(), nil)
	case errors.As(err, &verr):
		if verr.Fields == nil {
			util.UnprocessableEntity(ctx, verr.Message, nil)
			return
		}
		util.UnprocessableEntity(ctx, verr.Message, verr.Fields)
	case errors.As(err, &merr):
		util.BadRequest(ctx, merr.Message)
	case errors.As(err, &dbErr):
		logger.Log.Error("Database error",
			zap.String("op", dbErr.Op),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(dbErr.Err))
		var details interface{}
		if !dbErr.Sensitive {
			details = dbErr.Err.Error()
		}
		util.Error(ctx, http.StatusInternalServerError, "A database error occurred", details)
	default:
		util.LogInternalError(ctx, err)
	}
}

// quizID reads the :id path parameter. Anything but a positive integer is
// answered with 404, as no quiz can have that id.
func quizID(ctx *gin.Context) (uint, bool) {
	id, ok := util.ParseUintParam(ctx.Param("id"))
	if !ok {
		util.NotFound(ctx, "Quiz not found")
		return 0, false
	}
	return id, true
}
