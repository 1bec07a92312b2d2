package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Akashnaii/Breadbox/internal/app/service"
	apperrors "github.com/Akashnaii/Breadbox/internal/errors"
)

// respondAccountError maps the account lifecycle sentinels onto HTTP
// responses. Both the user and vendor controllers funnel their service
// failures through here so the two surfaces stay consistent.
func respondAccountError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, service.ErrEmailAlreadyExists):
		apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "This email is already registered")
	case errors.Is(err, service.ErrInvalidCredentials):
		apperrors.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, service.ErrPrincipalNotFound):
		apperrors.NotFound(c, apperrors.ResourceNotFound, "Account not found")
	case errors.Is(err, service.ErrAlreadyVerified):
		apperrors.BadRequest(c, apperrors.AuthAlreadyVerified, "Email is already verified")
	case errors.Is(err, service.ErrInvalidOTP):
		apperrors.BadRequest(c, apperrors.AuthOTPInvalid, "Invalid or expired OTP")
	case errors.Is(err, service.ErrNotVerified):
		apperrors.RespondWithError(c, http.StatusForbidden, apperrors.AuthNotVerified, "Please verify your email first")
	case errors.Is(err, service.ErrIncorrectPassword):
		apperrors.Unauthorized(c, "Incorrect password")
	case errors.Is(err, service.ErrNoChanges):
		apperrors.BadRequest(c, apperrors.ValidationNoChanges, "No changes provided")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, context)
	}
}
