package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperr "github.com/hollowmoor/soulsfight/internal/errors"
)

// writeError maps the service error taxonomy onto HTTP status codes
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch apperr.GetCode(err) {
	case apperr.CodeNotFound:
		status = http.StatusNotFound
	case apperr.CodeInvalidArgument, apperr.CodeValidation:
		status = http.StatusBadRequest
	case apperr.CodeConflict, apperr.CodeNotActive, apperr.CodeInvalidTurn:
		status = http.StatusConflict
	case apperr.CodeInsufficientResource:
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}

	c.JSON(status, gin.H{"error": err.Error()})
}
