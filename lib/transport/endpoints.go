package transport

import (
	"github.com/escrowhub/escrowhub.go/controllers"
	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.EscrowService, e *echo.Echo, secured *echo.Group, securedWithStrictRateLimit *echo.Group, adminMw echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	invoiceCtrl := controllers.NewInvoiceController(svc)
	escrowCtrl := controllers.NewEscrowController(svc)
	disputeCtrl := controllers.NewDisputeController(svc)
	settingsCtrl := controllers.NewSettingsController(svc)
	balanceCtrl := controllers.NewBalanceController(svc)

	e.GET("/health", controllers.NewHealthController(svc).Health, logMw)

	secured.POST("/invoices", invoiceCtrl.CreateInvoice)
	secured.GET("/invoices", invoiceCtrl.GetInvoices)
	secured.GET("/invoices/:id", invoiceCtrl.GetInvoice)
	secured.GET("/balance", balanceCtrl.Balance)

	securedWithStrictRateLimit.POST("/invoices/:id/pay", escrowCtrl.PayInvoice)
	securedWithStrictRateLimit.POST("/invoices/:id/confirm", escrowCtrl.ConfirmPayment)
	securedWithStrictRateLimit.POST("/invoices/:id/release", escrowCtrl.AutoReleasePayment)
	securedWithStrictRateLimit.POST("/invoices/:id/dispute", disputeCtrl.Dispute)
	securedWithStrictRateLimit.POST("/invoices/:id/resolve", disputeCtrl.ResolveDispute)

	e.GET("/admin/settings", settingsCtrl.GetSettings, adminMw, logMw)
	e.PUT("/admin/settings/arbitrator", settingsCtrl.SetArbitrator, adminMw, logMw)
	e.PUT("/admin/settings/fee", settingsCtrl.SetPlatformFeePercent, adminMw, logMw)
	e.PUT("/admin/settings/timeout", settingsCtrl.SetPaymentTimeout, adminMw, logMw)
	e.POST("/admin/deposit", balanceCtrl.Deposit, adminMw, logMw)
}
