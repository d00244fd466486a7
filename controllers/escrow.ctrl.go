package controllers

import (
	"net/http"

	"github.com/escrowhub/escrowhub.go/lib/responses"
	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// EscrowController : Payment and settlement operations
type EscrowController struct {
	svc *service.EscrowService
}

func NewEscrowController(svc *service.EscrowService) *EscrowController {
	return &EscrowController{svc: svc}
}

type PayInvoiceRequestBody struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// PayInvoice moves the invoice amount from the calling client into escrow
// custody. The paid amount must match the invoice amount exactly.
func (controller *EscrowController) PayInvoice(c echo.Context) error {
	caller := callerID(c)
	id, err := invoiceIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	reqBody := PayInvoiceRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load pay invoice request body: caller_id:%v error: %v", caller, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid pay invoice request body caller_id:%v error: %v", caller, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.PayInvoice(c.Request().Context(), caller, id, reqBody.Amount)
	if err != nil {
		c.Logger().Errorf("Payment failed invoice_id:%v caller_id:%v error: %v", id, caller, err)
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	return c.JSON(http.StatusOK, invoice)
}

// ConfirmPayment settles a paid invoice on behalf of the calling client.
func (controller *EscrowController) ConfirmPayment(c echo.Context) error {
	caller := callerID(c)
	id, err := invoiceIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.ConfirmPayment(c.Request().Context(), caller, id)
	if err != nil {
		c.Logger().Errorf("Confirmation failed invoice_id:%v caller_id:%v error: %v", id, caller, err)
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	return c.JSON(http.StatusOK, invoice)
}

// AutoReleasePayment settles an overdue paid invoice. Any authenticated
// caller may trigger it, the payment deadline is the only guard.
func (controller *EscrowController) AutoReleasePayment(c echo.Context) error {
	caller := callerID(c)
	id, err := invoiceIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.AutoReleasePayment(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("Release failed invoice_id:%v caller_id:%v error: %v", id, caller, err)
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	return c.JSON(http.StatusOK, invoice)
}
