package http

import (
	"errors"
	"net/http"
	"strings"

	"courier/internal/pkg/errs"

	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// errorResponse is the uniform error payload for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError translates application errors into HTTP responses.
// Not-found and ownership failures share the 404 answer so callers cannot
// distinguish "absent" from "not yours".
func respondError(ctx echo.Context, err error) error {
	var validationErrs validatorv10.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: validationMessage(validationErrs)})
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return ctx.JSON(httpErr.Code, errorResponse{Error: messageOf(httpErr)})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrUnauthorized):
		return ctx.JSON(http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrInvalidTransition):
		return ctx.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	return ctx.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

func messageOf(httpErr *echo.HTTPError) string {
	if msg, ok := httpErr.Message.(string); ok {
		return msg
	}
	return http.StatusText(httpErr.Code)
}

// validationMessage flattens validator output into a single readable line.
func validationMessage(validationErrs validatorv10.ValidationErrors) string {
	parts := make([]string, 0, len(validationErrs))
	for _, fieldError := range validationErrs {
		parts = append(parts, fieldError.Field()+" failed on "+fieldError.Tag())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
