package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"moveout/internal/pkg/errs"
)

// statusFromError maps domain failures to HTTP status codes. Anything not
// classified by a sentinel is treated as an internal error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrAlreadyCancelled),
		errors.Is(err, errs.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for err. Internal errors are not
// echoed back to the client.
func respondError(ctx echo.Context, err error) error {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, Error{Code: status, Message: message})
}

// badRequest writes a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
