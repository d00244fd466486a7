package controllers

import (
	"errors"
	"strconv"

	"github.com/escrowhub/escrowhub.go/ledger"
	"github.com/escrowhub/escrowhub.go/lib/responses"
	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// errorResponse maps a service error to its HTTP response.
func errorResponse(err error) responses.ErrorResponse {
	switch {
	case errors.Is(err, service.ErrInvoiceNotFound):
		return responses.NotFoundError
	case errors.Is(err, service.ErrStateConflict):
		return responses.StateConflictError
	case errors.Is(err, service.ErrNotAuthorized):
		return responses.NotAuthorizedError
	case errors.Is(err, service.ErrAmountMismatch):
		return responses.AmountMismatchError
	case errors.Is(err, service.ErrTimeoutNotReached):
		return responses.TimeoutNotReachedError
	case errors.Is(err, service.ErrInvalidSetting), errors.Is(err, service.ErrInvalidInvoice):
		return responses.BadArgumentsError
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return responses.NotEnoughBalanceError
	case errors.Is(err, service.ErrTransferFailed):
		return responses.TransferFailedError
	default:
		return responses.GeneralServerError
	}
}

func callerID(c echo.Context) string {
	id, _ := c.Get("CallerID").(string)
	return id
}

func invoiceIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
