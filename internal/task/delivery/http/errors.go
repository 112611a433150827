package http

import (
	"errors"
	"net/http"

	"smart-task-manager/internal/task"
	pkgErrors "smart-task-manager/pkg/errors"
)

var (
	errTextRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	errTextTooLong    = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is too long")
	errInvalidQuery   = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	errInvalidRange   = pkgErrors.NewHTTPError(http.StatusBadRequest, "'to' must be after 'from'")
	errNotUnderstood  = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "could not understand that task")
	errProviderFailed = pkgErrors.NewHTTPError(http.StatusBadGateway, "task parser is unavailable, please try again")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return errTextRequired
	case errors.Is(err, task.ErrInputTooLong):
		return errTextTooLong
	case errors.Is(err, task.ErrInvalidRange):
		return errInvalidRange
	}

	switch task.KindOf(err) {
	case task.KindEmptyResponse, task.KindMalformedResponse, task.KindMissingTitle:
		return errNotUnderstood
	case task.KindProviderFailure:
		return errProviderFailed
	}

	return pkgErrors.ErrInternalServerError
}
