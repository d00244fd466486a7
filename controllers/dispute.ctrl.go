package controllers

import (
	"net/http"

	"github.com/escrowhub/escrowhub.go/lib/responses"
	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// DisputeController : Dispute and arbitration operations
type DisputeController struct {
	svc *service.EscrowService
}

func NewDisputeController(svc *service.EscrowService) *DisputeController {
	return &DisputeController{svc: svc}
}

// Dispute freezes a paid invoice. The disputant role is inferred from which
// side of the invoice the caller is on.
func (controller *DisputeController) Dispute(c echo.Context) error {
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

	switch caller {
	case invoice.ClientID:
		invoice, err = controller.svc.DisputeByClient(c.Request().Context(), caller, id)
	case invoice.EmitterID:
		invoice, err = controller.svc.DisputeByEmitter(c.Request().Context(), caller, id)
	default:
		return c.JSON(http.StatusForbidden, responses.NotAuthorizedError)
	}
	if err != nil {
		c.Logger().Errorf("Dispute failed invoice_id:%v caller_id:%v error: %v", id, caller, err)
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	return c.JSON(http.StatusOK, invoice)
}

type ResolveDisputeRequestBody struct {
	ReleaseToEmitter *bool `json:"release_to_emitter" validate:"required"`
}

// ResolveDispute is restricted to the configured arbitrator.
func (controller *DisputeController) ResolveDispute(c echo.Context) error {
	caller := callerID(c)
	id, err := invoiceIDParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	reqBody := ResolveDisputeRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		c.Logger().Errorf("Failed to load resolve request body: caller_id:%v error: %v", caller, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		c.Logger().Errorf("Invalid resolve request body caller_id:%v error: %v", caller, err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	invoice, err := controller.svc.ResolveDispute(c.Request().Context(), caller, id, *reqBody.ReleaseToEmitter)
	if err != nil {
		c.Logger().Errorf("Resolution failed invoice_id:%v caller_id:%v error: %v", id, caller, err)
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	return c.JSON(http.StatusOK, invoice)
}
