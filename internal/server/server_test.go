package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	insightdomain "github.com/smallbiznis/salescope/internal/insight/domain"
	reportdomain "github.com/smallbiznis/salescope/internal/report/domain"
	warehousedomain "github.com/smallbiznis/salescope/internal/warehouse/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportServiceStub struct {
	products reportdomain.ProductReportSet
	err      error
}

func (s *reportServiceStub) BuildProductReports(context.Context) (reportdomain.ProductReportSet, error) {
	return s.products, s.err
}

func (s *reportServiceStub) BuildCustomerReports(context.Context) (reportdomain.CustomerReportSet, error) {
	return reportdomain.CustomerReportSet{}, s.err
}

type insightServiceStub struct {
	topProducts []insightdomain.RankedProduct
	lastLimit   int
	err         error
}

func (s *insightServiceStub) TopProductsBySales(_ context.Context, n int) ([]insightdomain.RankedProduct, error) {
	s.lastLimit = n
	return s.topProducts, s.err
}

func (s *insightServiceStub) BottomProductsBySales(_ context.Context, n int) ([]insightdomain.RankedProduct, error) {
	s.lastLimit = n
	return s.topProducts, s.err
}

func (s *insightServiceStub) TopCustomersBySales(context.Context, int) ([]insightdomain.RankedCustomer, error) {
	return nil, s.err
}

func (s *insightServiceStub) CustomersByFewestOrders(context.Context, int) ([]insightdomain.RankedCustomer, error) {
	return nil, s.err
}

func (s *insightServiceStub) YearlySales(context.Context) ([]insightdomain.YearlySalesPoint, error) {
	return nil, s.err
}

func (s *insightServiceStub) MonthlySales(context.Context) ([]insightdomain.MonthlySalesPoint, error) {
	return nil, s.err
}

func (s *insightServiceStub) RunningYearlySales(context.Context) ([]insightdomain.RunningSalesPoint, error) {
	return nil, s.err
}

func (s *insightServiceStub) ProductYearlyPerformance(context.Context) ([]insightdomain.ProductYearPerformance, error) {
	return nil, s.err
}

func (s *insightServiceStub) CategoryShare(context.Context) ([]insightdomain.CategoryShare, error) {
	return nil, s.err
}

func newTestServer(reports *reportServiceStub, insights *insightServiceStub) *Server {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())

	s := &Server{
		engine:     engine,
		reportSvc:  reports,
		insightSvc: insights,
	}
	s.RegisterAPIRoutes()
	return s
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func TestGetProductReports(t *testing.T) {
	reports := &reportServiceStub{
		products: reportdomain.ProductReportSet{
			BuildInfo: reportdomain.BuildInfo{BuildID: "42"},
			Reports: []reportdomain.ProductReport{
				{ProductKey: 1, ProductName: "Road Bike", TotalSales: 600},
			},
		},
	}

	rec := doRequest(t, newTestServer(reports, &insightServiceStub{}), "/api/reports/products")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data reportdomain.ProductReportSet `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "42", body.Data.BuildID)
	require.Len(t, body.Data.Reports, 1)
	assert.Equal(t, "Road Bike", body.Data.Reports[0].ProductName)
}

func TestGetTopProductsLimit(t *testing.T) {
	insights := &insightServiceStub{
		topProducts: []insightdomain.RankedProduct{
			{Rank: 1, ProductKey: 2, ProductName: "Road Bike", TotalSales: 500},
		},
	}
	s := newTestServer(&reportServiceStub{}, insights)

	rec := doRequest(t, s, "/api/insights/products/top?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, insights.lastLimit)

	rec = doRequest(t, s, "/api/insights/products/top")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, insights.lastLimit)
}

func TestGetTopProductsInvalidLimit(t *testing.T) {
	s := newTestServer(&reportServiceStub{}, &insightServiceStub{})

	for _, limit := range []string{"abc", "-1", "100000"} {
		rec := doRequest(t, s, "/api/insights/products/top?limit="+limit)
		require.Equal(t, http.StatusBadRequest, rec.Code, "limit %q", limit)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "validation_error", body.Error.Type)
	}
}

func TestSnapshotFailureMapsToServiceUnavailable(t *testing.T) {
	s := newTestServer(
		&reportServiceStub{err: warehousedomain.ErrSnapshotLoad},
		&insightServiceStub{err: warehousedomain.ErrSnapshotLoad},
	)

	for _, path := range []string{
		"/api/reports/products",
		"/api/reports/customers",
		"/api/insights/sales/yearly",
		"/api/insights/categories/share",
	} {
		rec := doRequest(t, s, path)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code, "path %s", path)

		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "service_unavailable", body.Error.Type)
	}
}

func TestUnknownErrorMapsToInternal(t *testing.T) {
	s := newTestServer(&reportServiceStub{err: assert.AnError}, &insightServiceStub{})

	rec := doRequest(t, s, "/api/reports/products")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body.Error.Type)
}
