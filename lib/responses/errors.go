package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var BadAuthError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "bad auth",
	HttpStatusCode: 401,
}

var NotAuthorizedError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "caller is not permitted to perform this operation",
	HttpStatusCode: 403,
}

var NotFoundError = ErrorResponse{
	Error:          true,
	Code:           3,
	Message:        "invoice not found",
	HttpStatusCode: 404,
}

var StateConflictError = ErrorResponse{
	Error:          true,
	Code:           4,
	Message:        "invoice status does not permit this operation",
	HttpStatusCode: 409,
}

var AmountMismatchError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "paid amount must match the invoice amount exactly",
	HttpStatusCode: 400,
}

var TimeoutNotReachedError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "payment timeout has not been reached yet",
	HttpStatusCode: 400,
}

var NotEnoughBalanceError = ErrorResponse{
	Error:          true,
	Code:           2,
	Message:        "not enough balance to complete the transfer",
	HttpStatusCode: 400,
}

var TransferFailedError = ErrorResponse{
	Error:          true,
	Code:           10,
	Message:        "fund transfer failed. No funds were moved, the operation is safe to retry",
	HttpStatusCode: 500,
}

func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	m, ok := he.Message.(echo.Map)
	if !ok {
		return true
	}
	// auth failures are expected noise, do not report them
	return m["code"] != 1
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("CallerID", c.Get("CallerID"))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
		return
	}
	c.JSON(http.StatusInternalServerError, GeneralServerError)
}
