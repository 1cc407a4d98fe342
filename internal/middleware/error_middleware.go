package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kareemh/maarif/internal/app/models/dto"
	"github.com/kareemh/maarif/internal/pkg/apperrors"
	"github.com/kareemh/maarif/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Sentinels decide
// the status and code; a wrapping CustomError contributes the message and
// offending field.
func HandleAPIError(c *gin.Context, err error) {
	detail := func(code dto.ErrorCode, fallback string) *dto.ErrorDetail {
		message := fallback
		field := ""
		var custom *apperrors.CustomError
		if errors.As(err, &custom) {
			if custom.Message != "" {
				message = custom.Message
			}
			field = custom.Field
		}
		d := dto.NewErrorDetail(code, message)
		if field != "" {
			d.WithField(field)
		}
		return d
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrSelfDelete):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail(dto.ErrorCodeValidationFailed, err.Error())))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")))
	case errors.Is(err, apperrors.ErrAuthenticationRequired):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(detail(dto.ErrorCodeUnauthorized, "Authentication required")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(detail(dto.ErrorCodeForbidden, "Permission denied")))
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrQuestionNotFound),
		errors.Is(err, apperrors.ErrAnswerNotFound),
		errors.Is(err, apperrors.ErrReportNotFound),
		errors.Is(err, apperrors.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail(dto.ErrorCodeResourceNotFound, err.Error())))
	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrAlreadyRated),
		errors.Is(err, apperrors.ErrUsernameTaken):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(detail(dto.ErrorCodeConflict, err.Error())))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
