package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/transferdesk/internal/app/models/dto"
	"github.com/yigit/transferdesk/internal/pkg/apperrors"
	"github.com/yigit/transferdesk/internal/pkg/form"
	"github.com/yigit/transferdesk/internal/pkg/logger"
)

// DeletePrompt is shown when a delete arrives without confirmation
var DeletePrompt = dto.ConfirmationPrompt{
	Title:       "Are you sure?",
	Text:        "You won't be able to revert this!",
	ConfirmWith: "confirm=true",
}

func abortWith(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(verr.Errors())
		if fields := verr.Errors(); len(fields) == 1 {
			detail = detail.WithField(fields[0].Field)
		}
		abortWith(c, http.StatusBadRequest, detail)
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		abortWith(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed").WithDetails(err.Error()))
	case errors.Is(err, apperrors.ErrBadRequest):
		abortWith(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, err.Error()))
	case errors.Is(err, apperrors.ErrConfirmationRequired):
		abortWith(c, http.StatusPreconditionRequired,
			dto.NewErrorDetail(dto.ErrorCodeConfirmationRequired, "Confirmation required").
				WithSeverity(dto.ErrorSeverityWarning).
				WithDetails(DeletePrompt))
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCollegeNotFound),
		errors.Is(err, apperrors.ErrProgramNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		abortWith(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found").WithDetails(err.Error()))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		abortWith(c, http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Email already exists").WithField("email"))
	case errors.Is(err, apperrors.ErrSubmissionInProgress):
		abortWith(c, http.StatusConflict,
			dto.NewErrorDetail(dto.ErrorCodeConflict, "A submission for this record is already in progress"))
	case errors.Is(err, apperrors.ErrNotSupported):
		abortWith(c, http.StatusNotImplemented,
			dto.NewErrorDetail(dto.ErrorCodeNotImplemented, err.Error()))
	case errors.Is(err, apperrors.ErrRemoteCall):
		detail := dto.NewErrorDetail(dto.ErrorCodeExternalServiceError, "Remote service call failed")
		var cerr *apperrors.CustomError
		if errors.As(err, &cerr) {
			detail = detail.WithDetails(cerr.Message)
		}
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Remote call failed")
		abortWith(c, http.StatusBadGateway, detail)
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		abortWith(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
