// Package respond centralizes the mapping from service errors to HTTP
// responses so every controller returns the same error shape.
package respond

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aquispel/burnout-api/internal/apperror"
	"github.com/aquispel/burnout-api/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var statusByKind = map[apperror.Kind]int{
	apperror.KindNotFound:            http.StatusNotFound,
	apperror.KindInvalidState:        http.StatusBadRequest,
	apperror.KindIncomplete:          http.StatusBadRequest,
	apperror.KindConflict:            http.StatusConflict,
	apperror.KindForbidden:           http.StatusForbidden,
	apperror.KindUnauthorized:        http.StatusUnauthorized,
	apperror.KindValidation:          http.StatusBadRequest,
	apperror.KindUpstreamTimeout:     http.StatusGatewayTimeout,
	apperror.KindUpstreamUnavailable: http.StatusServiceUnavailable,
	apperror.KindInternal:            http.StatusInternalServerError,
}

// Error writes err as a JSON error payload with the status its kind maps to.
func Error(ctx *gin.Context, err error) {
	kind := apperror.KindOf(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	payload := dto.ErrorResponse{Kind: string(kind)}

	var ae *apperror.Error
	var ie *apperror.IncompleteError
	switch {
	case errors.As(err, &ie):
		payload.Message = ie.Error()
		payload.Details = []string{
			fmt.Sprintf("required=%d", ie.Required),
			fmt.Sprintf("actual=%d", ie.Actual),
		}
	case errors.As(err, &ae):
		payload.Message = ae.Message
	default:
		payload.Message = "unexpected internal error"
	}

	if kind == apperror.KindInternal {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Internal error")
	}

	ctx.JSON(status, payload)
}

// BindingError reports a failed request binding as a validation error.
func BindingError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Kind:    string(apperror.KindValidation),
		Message: "invalid request body",
		Details: []string{err.Error()},
	})
}
