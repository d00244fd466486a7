package controllers

import (
	"net/http"
	"time"

	"github.com/escrowhub/escrowhub.go/lib/responses"
	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// SettingsController : Owner-only escrow settings
type SettingsController struct {
	svc *service.EscrowService
}

func NewSettingsController(svc *service.EscrowService) *SettingsController {
	return &SettingsController{svc: svc}
}

func (controller *SettingsController) GetSettings(c echo.Context) error {
	setting, err := controller.svc.Settings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, setting)
}

type SetArbitratorRequestBody struct {
	Identity string `json:"identity" validate:"required"`
}

func (controller *SettingsController) SetArbitrator(c echo.Context) error {
	reqBody := SetArbitratorRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	setting, err := controller.svc.SetArbitrator(c.Request().Context(), reqBody.Identity)
	if err != nil {
		c.Logger().Errorf("Failed to set arbitrator error: %v", err)
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}
	return c.JSON(http.StatusOK, setting)
}

type SetFeeRequestBody struct {
	Percent *int64 `json:"percent" validate:"required"`
}

func (controller *SettingsController) SetPlatformFeePercent(c echo.Context) error {
	reqBody := SetFeeRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	setting, err := controller.svc.SetPlatformFeePercent(c.Request().Context(), *reqBody.Percent)
	if err != nil {
		c.Logger().Errorf("Failed to set fee percent error: %v", err)
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}
	return c.JSON(http.StatusOK, setting)
}

type SetTimeoutRequestBody struct {
	Seconds int64 `json:"seconds" validate:"required,gt=0"`
}

func (controller *SettingsController) SetPaymentTimeout(c echo.Context) error {
	reqBody := SetTimeoutRequestBody{}
	if err := c.Bind(&reqBody); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&reqBody); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	setting, err := controller.svc.SetPaymentTimeout(c.Request().Context(), time.Duration(reqBody.Seconds)*time.Second)
	if err != nil {
		c.Logger().Errorf("Failed to set payment timeout error: %v", err)
		resp := errorResponse(err)
		return c.JSON(resp.HttpStatusCode, resp)
	}
	return c.JSON(http.StatusOK, setting)
}
