package controllers

import (
	"net/http"

	"github.com/escrowhub/escrowhub.go/lib/responses"
	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// InvoiceController : Add and list invoices
type InvoiceController struct {
	svc *service.EscrowService
}

func NewInvoiceController(svc *service.EscrowService) *InvoiceController {
	return &InvoiceController{svc: svc}
}

type CreateInvoiceRequestBody struct {
	ClientID string `json:"client_id" validate:"required"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Memo     string `json:"memo" validate:"omitempty,lte=256"`
}

// CreateInvoice registers a new pending invoice. The caller becomes the
// emitter.
func (controller *InvoiceController) CreateInvoice(c echo.Context) error {
	caller := callerID(c)
	reqBody := CreateInvoiceRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load create invoice request body: caller_id:%v error: %v", caller, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid create invoice request body caller_id:%v error: %v", caller, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.CreateInvoice(c.Request().Context(), caller, reqBody.ClientID, reqBody.Amount, reqBody.Memo)
	if err != nil {
		c.Logger().Errorf("Failed to create invoice caller_id:%v error: %v", caller, err)
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	return c.JSON(http.StatusOK, invoice)
}

// GetInvoice returns a single invoice. Only the parties to the invoice and
// the arbitrator may read it.
func (controller *InvoiceController) GetInvoice(c echo.Context) error {
	caller := callerID(c)
	id, err := invoiceIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.FindInvoice(c.Request().Context(), id)
	if err != nil {
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	setting, err := controller.svc.Settings(c.Request().Context())
	if err != nil {
		return err
	}
	if caller != invoice.ClientID && caller != invoice.EmitterID && caller != setting.ArbitratorID {
		return c.JSON(http.StatusForbidden, responses.NotAuthorizedError)
	}

	return c.JSON(http.StatusOK, invoice)
}

// GetInvoices lists the caller's invoices, newest first.
func (controller *InvoiceController) GetInvoices(c echo.Context) error {
	caller := callerID(c)

	invoices, err := controller.svc.InvoicesFor(c.Request().Context(), caller)
	if err != nil {
		c.Logger().Errorf("Failed to list invoices caller_id:%v error: %v", caller, err)
		return err
	}

	return c.JSON(http.StatusOK, invoices)
}
