package controllers

import (
	"net/http"

	"github.com/escrowhub/escrowhub.go/lib/responses"
	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// BalanceController : Current account balance
type BalanceController struct {
	svc *service.EscrowService
}

func NewBalanceController(svc *service.EscrowService) *BalanceController {
	return &BalanceController{svc: svc}
}

type BalanceResponseBody struct {
	Balance int64 `json:"balance"`
}

func (controller *BalanceController) Balance(c echo.Context) error {
	caller := callerID(c)

	balance, err := controller.svc.CurrentBalance(c.Request().Context(), caller)
	if err != nil {
		c.Logger().Errorf("Failed to load balance caller_id:%v error: %v", caller, err)
		return err
	}

	return c.JSON(http.StatusOK, &BalanceResponseBody{Balance: balance})
}

type DepositRequestBody struct {
	Identity string `json:"identity" validate:"required"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
}

func (controller *BalanceController) Deposit(c echo.Context) error {
	reqBody := DepositRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	err := controller.svc.Deposit(c.Request().Context(), reqBody.Identity, reqBody.Amount)
	if err != nil {
		c.Logger().Errorf("Deposit failed identity:%v error: %v", reqBody.Identity, err)
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
