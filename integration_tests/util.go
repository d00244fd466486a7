package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/escrowhub/escrowhub.go/db"
	"github.com/escrowhub/escrowhub.go/db/migrations"
	"github.com/escrowhub/escrowhub.go/db/models"
	"github.com/escrowhub/escrowhub.go/ledger"
	"github.com/escrowhub/escrowhub.go/lib"
	"github.com/escrowhub/escrowhub.go/lib/auth"
	"github.com/escrowhub/escrowhub.go/lib/responses"
	"github.com/escrowhub/escrowhub.go/lib/service"
	"github.com/escrowhub/escrowhub.go/lib/transport"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/uptrace/bun/migrate"
)

const (
	testClientID     = "client-1"
	testEmitterID    = "emitter-1"
	testArbitratorID = "arbitrator-1"
	testTreasuryID   = "treasury-1"
	testAdminToken   = "admin-secret"
)

func EscrowTestServiceInit() (svc *service.EscrowService, err error) {
	c := &service.Config{
		DatabaseUri:           "sqlite://:memory:",
		AdminToken:            testAdminToken,
		ArbitratorID:          testArbitratorID,
		TreasuryID:            testTreasuryID,
		PlatformFeePercent:    2,
		PaymentTimeoutSeconds: 7 * 24 * 3600,
		AutoReleaseInterval:   1,
		StrictRateLimit:       100,
		BurstRateLimit:        100,
	}

	dbConn, err := db.Open(c)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx := context.Background()
	migrator := migrate.NewMigrator(dbConn, migrations.Migrations)
	err = migrator.Init(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init migrations: %w", err)
	}
	_, err = migrator.Migrate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	svc = &service.EscrowService{
		Config:      c,
		DB:          dbConn,
		Logger:      lib.Logger(c.LogFilePath),
		Ledger:      ledger.NewAccounting(),
		EventPubSub: service.NewPubsub(),
	}
	if err := svc.InitSettings(ctx); err != nil {
		return nil, err
	}
	return svc, nil
}

// newTestEcho mirrors the endpoint registration of cmd/server.
func newTestEcho(svc *service.EscrowService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = responses.HTTPErrorHandler
	e.Validator = &lib.CustomValidator{Validator: validator.New()}

	logMw := transport.CreateLoggingMiddleware(svc.Logger)
	secured := e.Group("", auth.IdentityMiddleware(), logMw)
	strictRateLimitMw := transport.CreateRateLimitMiddleware(svc.Config.StrictRateLimit, svc.Config.BurstRateLimit)
	securedWithStrictRateLimit := e.Group("", auth.IdentityMiddleware(), logMw, strictRateLimitMw)
	adminMw := auth.AdminTokenMiddleware(svc.Config.AdminToken)

	transport.RegisterEndpoints(svc, e, secured, securedWithStrictRateLimit, adminMw, logMw)
	return e
}

func clearTable(svc *service.EscrowService, tableName string) error {
	_, err := svc.DB.Exec(fmt.Sprintf("DELETE FROM %s", tableName))
	return err
}

type TestSuite struct {
	suite.Suite
	echo    *echo.Echo
	service *service.EscrowService
}

// request performs an HTTP request against the suite's echo app. An empty
// caller omits the identity header.
func (suite *TestSuite) request(method, path, caller string, body interface{}) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if caller != "" {
		req.Header.Set(auth.CallerHeader, caller)
	}
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *TestSuite) adminRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(suite.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, fmt.Sprintf("Bearer %s", testAdminToken))
	suite.echo.ServeHTTP(rec, req)
	return rec
}

func (suite *TestSuite) createInvoiceReq(emitter, client string, amount int64, memo string) *models.Invoice {
	rec := suite.request(http.MethodPost, "/invoices", emitter, echo.Map{
		"client_id": client,
		"amount":    amount,
		"memo":      memo,
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	invoice := &models.Invoice{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(invoice))
	return invoice
}

func (suite *TestSuite) payInvoiceReq(caller string, invoiceID, amount int64) *httptest.ResponseRecorder {
	return suite.request(http.MethodPost, fmt.Sprintf("/invoices/%d/pay", invoiceID), caller, echo.Map{
		"amount": amount,
	})
}

func (suite *TestSuite) fundReq(identity string, amount int64) {
	rec := suite.adminRequest(http.MethodPost, "/admin/deposit", echo.Map{
		"identity": identity,
		"amount":   amount,
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *TestSuite) balanceReq(caller string) int64 {
	rec := suite.request(http.MethodGet, "/balance", caller, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	body := struct {
		Balance int64 `json:"balance"`
	}{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&body))
	return body.Balance
}

func decodeError(suite *TestSuite, rec *httptest.ResponseRecorder) *responses.ErrorResponse {
	errorResponse := &responses.ErrorResponse{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(errorResponse))
	return errorResponse
}

func decodeInvoice(suite *TestSuite, rec *httptest.ResponseRecorder) *models.Invoice {
	invoice := &models.Invoice{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(invoice))
	return invoice
}
