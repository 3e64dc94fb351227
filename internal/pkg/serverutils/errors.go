package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status alongside the user-facing message.
// Services return these; the error handler middleware maps them to the
// response envelope.
type AppError struct {
	Code    int
	Message string
	Err     error // underlying cause, logged but never serialized
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Code: fiber.StatusConflict, Message: message}
}

func PayloadTooLarge(message string) *AppError {
	return &AppError{Code: fiber.StatusRequestEntityTooLarge, Message: message}
}

func Internal(message string, err error) *AppError {
	return &AppError{Code: fiber.StatusInternalServerError, Message: message, Err: err}
}

// ErrorHandlerMiddleware converts errors bubbling out of handlers into
// the standard response envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ctx.Status(appErr.Code).JSON(fiber.Map{
				"success": false,
				"code":    appErr.Code,
				"message": appErr.Message,
			})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{
				"success": false,
				"code":    fiberErr.Code,
				"message": fiberErr.Message,
			})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    fiber.StatusInternalServerError,
			"message": "Internal server error",
		})
	}
}
