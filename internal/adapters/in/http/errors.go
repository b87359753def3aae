package http

import (
	"errors"
	"net/http"

	"campuseats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// apiError is the JSON error body returned by every endpoint.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorResponse maps domain errors onto HTTP status codes:
// validation errors to 400, missing objects to 404, lost lifecycle races to
// 409, and authorization failures to 403. Anything unrecognized is a 500 with
// a generic message so internals never leak to clients.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	}

	return ctx.JSON(status, apiError{
		Code:    status,
		Message: message,
	})
}

// badRequest returns a 400 with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, apiError{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// unauthorized returns a 401 for requests missing the identity headers.
func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, apiError{
		Code:    http.StatusUnauthorized,
		Message: "Missing identity",
	})
}
