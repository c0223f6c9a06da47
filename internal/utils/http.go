package utils

import (
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/logger"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// TooManyRequestsResponse sends a 429 with a Retry-After header in whole seconds
func TooManyRequestsResponse(c echo.Context, errorMessage string, retryAfterSeconds int) error {
	if errorMessage == "" {
		errorMessage = "Too many requests"
	}
	if retryAfterSeconds > 0 {
		c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = apperror.GenericMessage
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}

// AppErrorResponse renders err according to its kind. Internal and dependency
// failures are logged here and answered with the generic message only.
func AppErrorResponse(c echo.Context, err error) error {
	kind := apperror.KindOf(err)
	status := apperror.HTTPStatus(kind)

	switch kind {
	case apperror.KindInternal, apperror.KindDependencyUnavailable:
		logger.Error("Request failed",
			logger.String("method", c.Request().Method),
			logger.String("path", c.Path()),
			logger.String("kind", kind.String()),
			logger.Err(err))
		return InternalServerErrorResponse(c, apperror.GenericMessage)
	case apperror.KindLocked:
		wait := apperror.RetryAfter(err)
		return TooManyRequestsResponse(c, apperror.PublicMessage(err), int(math.Ceil(wait.Seconds())))
	}

	return ErrorResponseHandler(c, status, apperror.PublicMessage(err))
}

// FieldError describes one failed validation rule
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorBody is the 400 body for failed request validation
type ValidationErrorBody struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Code    int          `json:"code"`
	Details []FieldError `json:"details,omitempty"`
}

// ValidationErrorResponse sends a 400 listing the fields that failed validation
func ValidationErrorResponse(c echo.Context, details []FieldError) error {
	return c.JSON(http.StatusBadRequest, ValidationErrorBody{
		Success: false,
		Error:   "Validation failed",
		Code:    http.StatusBadRequest,
		Details: details,
	})
}
