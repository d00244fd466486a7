package controllers

import (
	"net/http"

	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

type HealthController struct {
	svc *service.EscrowService
}

func NewHealthController(svc *service.EscrowService) *HealthController {
	return &HealthController{svc: svc}
}

type HealthResponse struct {
	Result string `json:"result"`
}

func (controller *HealthController) Health(c echo.Context) error {
	if err := controller.svc.DB.PingContext(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{Result: "DB unreachable"})
	}
	return c.JSON(http.StatusOK, &HealthResponse{
		Result: "OK",
	})
}
