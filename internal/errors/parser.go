package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ErrorInfo is a sanitized projection of an internal fault.
type ErrorInfo struct {
	Code    string
	Message string
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
// Covers GORM's translated error plus the raw Postgres and SQLite forms,
// so a concurrent duplicate insert is recognized regardless of driver.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique constraint failed")
}

// ParseError maps an internal fault to a stable code and a message safe
// to show clients. Raw driver detail never crosses this boundary; callers
// log it server-side.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Something went wrong"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	if IsDuplicateKey(err) {
		if strings.Contains(strings.ToLower(err.Error()), "email") {
			return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "Email is already registered"}
		}
		if strings.Contains(strings.ToLower(err.Error()), "vendor_id") {
			return ErrorInfo{Code: RestaurantAlreadyExists, Message: "Restaurant already exists for this vendor"}
		}
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "Record already exists"}
	}

	errLower := strings.ToLower(err.Error())
	if strings.Contains(errLower, "connection refused") ||
		strings.Contains(errLower, "no such host") ||
		strings.Contains(errLower, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "A backing service is unavailable. Please try again later",
		}
	}

	return ErrorInfo{Code: InternalServerError, Message: defaultMessage(context)}
}

// ParseAndRespond parses err and writes the sanitized response.
func ParseAndRespond(c *gin.Context, statusCode int, err error, context string) {
	info := ParseError(err, context)
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}
	c.JSON(statusCode, ErrorResponse{
		Error:   info.Code,
		Message: info.Message,
	})
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "restaurant"):
		return "Restaurant not found"
	case strings.Contains(contextLower, "item"):
		return "Item not found"
	case strings.Contains(contextLower, "package"):
		return "Breakfast package not found"
	case strings.Contains(contextLower, "vendor"):
		return "Vendor not found"
	case strings.Contains(contextLower, "user"):
		return "User not found"
	}
	return "Requested resource not found"
}

func defaultMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "create"), strings.Contains(contextLower, "register"), strings.Contains(contextLower, "add"):
		return "Error creating record. Please try again later"
	case strings.Contains(contextLower, "update"):
		return "Error updating record. Please try again later"
	case strings.Contains(contextLower, "delete"):
		return "Error deleting record. Please try again later"
	}
	return "Something went wrong. Please try again later"
}
