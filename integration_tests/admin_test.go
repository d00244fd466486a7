package integration_tests

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/escrowhub/escrowhub.go/db/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AdminTestSuite struct {
	TestSuite
}

func (suite *AdminTestSuite) SetupSuite() {
	svc, err := EscrowTestServiceInit()
	if err != nil {
		log.Fatalf("Error initializing test service: %v", err)
	}
	suite.service = svc
	suite.echo = newTestEcho(svc)
}

func (suite *AdminTestSuite) decodeSetting(rec *httptest.ResponseRecorder) *models.Setting {
	setting := &models.Setting{}
	assert.NoError(suite.T(), json.NewDecoder(rec.Body).Decode(setting))
	return setting
}

func (suite *AdminTestSuite) TestAdminEndpointsRequireToken() {
	// no Authorization header at all
	rec := suite.request(http.MethodGet, "/admin/settings", testClientID, nil)
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)

	// wrong token
	req := httptest.NewRequest(http.MethodGet, "/admin/settings", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer wrong-token")
	rec = httptest.NewRecorder()
	suite.echo.ServeHTTP(rec, req)
	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
}

func (suite *AdminTestSuite) TestGetSettings() {
	rec := suite.adminRequest(http.MethodGet, "/admin/settings", nil)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	setting := suite.decodeSetting(rec)
	assert.Equal(suite.T(), testTreasuryID, setting.TreasuryID)
}

func (suite *AdminTestSuite) TestSetArbitrator() {
	rec := suite.adminRequest(http.MethodPut, "/admin/settings/arbitrator", echo.Map{
		"identity": "arbitrator-2",
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "arbitrator-2", suite.decodeSetting(rec).ArbitratorID)

	// restore for the other tests
	rec = suite.adminRequest(http.MethodPut, "/admin/settings/arbitrator", echo.Map{
		"identity": testArbitratorID,
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *AdminTestSuite) TestSetFeeBounds() {
	rec := suite.adminRequest(http.MethodPut, "/admin/settings/fee", echo.Map{
		"percent": 5,
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), int64(5), suite.decodeSetting(rec).PlatformFeePercent)

	rec = suite.adminRequest(http.MethodPut, "/admin/settings/fee", echo.Map{
		"percent": 11,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *AdminTestSuite) TestSetTimeoutBounds() {
	rec := suite.adminRequest(http.MethodPut, "/admin/settings/timeout", echo.Map{
		"seconds": 14 * 24 * 3600,
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), int64(14*24*3600), suite.decodeSetting(rec).PaymentTimeoutSeconds)

	// anything under a day is rejected
	rec = suite.adminRequest(http.MethodPut, "/admin/settings/timeout", echo.Map{
		"seconds": 3600,
	})
	assert.Equal(suite.T(), http.StatusBadRequest, rec.Code)
}

func (suite *AdminTestSuite) TestDeposit() {
	rec := suite.adminRequest(http.MethodPost, "/admin/deposit", echo.Map{
		"identity": "client-fund-test",
		"amount":   250,
	})
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), int64(250), suite.balanceReq("client-fund-test"))
}

func TestAdminTestSuite(t *testing.T) {
	suite.Run(t, new(AdminTestSuite))
}
