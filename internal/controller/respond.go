// Package controller holds the HTTP error mapping shared by the admin and user
// controllers, and the login endpoint.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError writes the status and body for err. fallback is the message
// used for unexpected failures, which are logged.
func RespondError(ctx *gin.Context, err error, fallback string) {
	var verr *apperror.ValidationError
	switch {
	case errors.As(err, &verr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: verr.Message, Details: verr.Fields})
	case errors.Is(err, apperror.ErrUnknownUser):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "User not found"})
	case errors.Is(err, apperror.ErrWrongPassword):
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid password"})
	case errors.Is(err, apperror.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Not found"})
	case errors.Is(err, apperror.ErrDuplicate):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "Already exists"})
	case errors.Is(err, apperror.ErrNoQuiz):
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{Message: "No quiz available for this course"})
	case errors.Is(err, apperror.ErrUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Service unavailable", Details: []string{err.Error()}})
	default:
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(fallback)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: fallback})
	}
}

// BadRequest reports a body or query that failed to bind.
func BadRequest(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}
