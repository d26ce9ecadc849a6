// Package failure maps wizard and session errors to HTTP statuses.
package failure

import (
	"errors"
	"net/http"

	"spaceBooker/internal/models"
	"spaceBooker/internal/session"
	"spaceBooker/internal/wizard"
)

// Status returns the HTTP status and client-facing message for err.
// Anything unrecognized is treated as an upstream failure.
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, "wizard session not found"
	case errors.Is(err, wizard.ErrInvalidPassengers):
		return http.StatusBadRequest, wizard.ErrInvalidPassengers.Error()
	case errors.Is(err, wizard.ErrInvalidDateRange):
		return http.StatusBadRequest, wizard.ErrInvalidDateRange.Error()
	case errors.Is(err, wizard.ErrUnknownOption):
		return http.StatusBadRequest, wizard.ErrUnknownOption.Error()
	case errors.Is(err, models.ErrMoneyOverflow):
		return http.StatusBadRequest, "total price is out of range"
	case errors.Is(err, wizard.ErrStepIncomplete):
		return http.StatusConflict, wizard.ErrStepIncomplete.Error()
	case errors.Is(err, wizard.ErrWrongStep):
		return http.StatusConflict, wizard.ErrWrongStep.Error()
	case errors.Is(err, wizard.ErrNoPreviousStep):
		return http.StatusConflict, wizard.ErrNoPreviousStep.Error()
	case errors.Is(err, wizard.ErrFinalized):
		return http.StatusConflict, wizard.ErrFinalized.Error()
	case errors.Is(err, wizard.ErrBusy):
		return http.StatusConflict, wizard.ErrBusy.Error()
	default:
		return http.StatusBadGateway, "booking service is unavailable"
	}
}
