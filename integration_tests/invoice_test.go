package integration_tests

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"testing"

	"github.com/escrowhub/escrowhub.go/common"
	"github.com/escrowhub/escrowhub.go/db/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type InvoiceTestSuite struct {
	TestSuite
}

func (suite *InvoiceTestSuite) SetupSuite() {
	svc, err := EscrowTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho(svc)
}

func (suite *InvoiceTestSuite) TearDownTest() {
	clearTable(suite.service, "invoices")
	clearTable(suite.service, "transaction_entries")
}

func (suite *InvoiceTestSuite) TestCreateInvoice() {
	invoice := suite.createInvoiceReq(testEmitterID, testClientID, 100, "website build")

	assert.Equal(suite.T(), testEmitterID, invoice.EmitterID)
	assert.Equal(suite.T(), testClientID, invoice.ClientID)
	assert.Equal(suite.T(), int64(100), invoice.Amount)
	assert.Equal(suite.T(), "website build", invoice.Memo)
	assert.Equal(suite.T(), common.InvoiceStatusPending, invoice.Status)
}

func (suite *InvoiceTestSuite) TestCreateInvoiceBadArguments() {
	rec := suite.request(http.MethodPost, "/invoices", testEmitterID, echo.Map{
		"client_id": testClientID,
		"amount":    0,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	// an emitter cannot invoice itself
	rec = suite.request(http.MethodPost, "/invoices", testEmitterID, echo.Map{
		"client_id": testEmitterID,
		"amount":    100,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *InvoiceTestSuite) TestCreateInvoiceRequiresIdentity() {
	rec := suite.request(http.MethodPost, "/invoices", "", echo.Map{
		"client_id": testClientID,
		"amount":    100,
	})
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *InvoiceTestSuite) TestGetInvoiceVisibility() {
	invoice := suite.createInvoiceReq(testEmitterID, testClientID, 100, "")
	path := fmt.Sprintf("/invoices/%d", invoice.ID)

	for _, caller := range []string{testClientID, testEmitterID, testArbitratorID} {
		rec := suite.request(http.MethodGet, path, caller, nil)
		assert.Equal(suite.T(), http.StatusOK, rec.Code)
	}

	rec := suite.request(http.MethodGet, path, "stranger", nil)
	assert.Equal(suite.T(), http.StatusForbidden, rec.Code)
}

func (suite *InvoiceTestSuite) TestGetInvoiceNotFound() {
	rec := suite.request(http.MethodGet, "/invoices/99999", testClientID, nil)
	assert.Equal(suite.T(), http.StatusNotFound, rec.Code)
	errResp := decodeError(&suite.TestSuite, rec)
	assert.Equal(suite.T(), "invoice not found", errResp.Message)
}

func (suite *InvoiceTestSuite) TestGetInvoices() {
	suite.createInvoiceReq(testEmitterID, testClientID, 100, "first")
	suite.createInvoiceReq(testEmitterID, testClientID, 200, "second")
	suite.createInvoiceReq(testEmitterID, "client-2", 300, "other client")

	rec := suite.request(http.MethodGet, "/invoices", testClientID, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	invoices := []models.Invoice{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&invoices))
	assert.Equal(suite.T(), 2, len(invoices))
	// newest first
	assert.Equal(suite.T(), "second", invoices[0].Memo)

	rec = suite.request(http.MethodGet, "/invoices", testEmitterID, nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	invoices = []models.Invoice{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(&invoices))
	assert.Equal(suite.T(), 3, len(invoices))
}

func TestInvoiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceTestSuite))
}
