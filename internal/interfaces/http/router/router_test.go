package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	appbilling "github.com/isp/backend/internal/application/billing"
	"github.com/isp/backend/internal/application/report"
	"github.com/isp/backend/internal/infrastructure/config"
	"github.com/isp/backend/internal/infrastructure/persistence"
	"github.com/isp/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEngine(t *testing.T) http.Handler {
	t.Helper()

	kv, err := persistence.NewFileKV(t.TempDir())
	require.NoError(t, err)
	store := persistence.NewCollectionStore(kv)

	usageService := appbilling.NewUsageService(store)
	h := Handlers{
		Plans:     handler.NewPlanHandler(appbilling.NewPlanService(store)),
		Customers: handler.NewCustomerHandler(appbilling.NewCustomerService(store)),
		Usage:     handler.NewUsageHandler(usageService),
		Invoices:  handler.NewInvoiceHandler(appbilling.NewInvoiceService(store, usageService)),
		Profile:   handler.NewProfileHandler(appbilling.NewProfileService(store)),
		Reports:   handler.NewReportHandler(report.NewSummaryService(store)),
		Bundles:   handler.NewBundleHandler(appbilling.NewBundleService(store)),
	}

	cfg := &config.Config{}
	cfg.App.Name = "isp-backend-test"
	cfg.App.Env = "production"
	cfg.HTTP.MaxBodySize = 10 << 20
	cfg.HTTP.CORSAllowOrigins = []string{"*"}

	return New(cfg, zap.NewNop(), h)
}

func doJSON(t *testing.T, engine http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func dataField(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestHealthEndpoint(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestBillingFlowOverHTTP(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodPut, "/api/v1/profile", map[string]any{
		"businessName": "Demo ISP",
		"address":      "Nakuru, Kenya",
		"taxRate":      "16",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/plans", map[string]any{
		"name":         "Home 10Mbps",
		"price":        "2000",
		"speedMbps":    10,
		"durationDays": 30,
		"capGb":        "100",
		"overagePerGb": "100",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	planID := dataField(t, rec)["id"].(string)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/customers", map[string]any{
		"name":   "Jane Wanjiku",
		"phone":  "0712345678",
		"planId": planID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	customerID := dataField(t, rec)["id"].(string)

	rec = doJSON(t, engine, http.MethodPost, "/api/v1/usage", map[string]any{
		"customerId": customerID,
		"gb":         "130",
		"date":       "2024-03-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("compute previews without persisting", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPost, "/api/v1/invoices/compute", map[string]any{
			"customerId": customerID,
			"startDate":  "2024-03-01",
			"endDate":    "2024-03-31",
		})

		require.Equal(t, http.StatusOK, rec.Code)
		breakdown := dataField(t, rec)["breakdown"].(map[string]any)
		assert.Equal(t, "5800", breakdown["total"])

		list := doJSON(t, engine, http.MethodGet, "/api/v1/invoices", nil)
		assert.Equal(t, `{"success":true,"data":[]}`, list.Body.String())
	})

	t.Run("issue then pay", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPost, "/api/v1/invoices", map[string]any{
			"customerId": customerID,
			"startDate":  "2024-03-01",
			"endDate":    "2024-03-31",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		data := dataField(t, rec)
		invoiceID := data["id"].(string)
		assert.Equal(t, "unpaid", data["status"])
		assert.Equal(t, "5800", data["total"])

		pay := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/invoices/%s/pay", invoiceID), nil)
		require.Equal(t, http.StatusOK, pay.Code)
		assert.Equal(t, "paid", dataField(t, pay)["status"])

		again := doJSON(t, engine, http.MethodPost, fmt.Sprintf("/api/v1/invoices/%s/pay", invoiceID), nil)
		assert.Equal(t, http.StatusUnprocessableEntity, again.Code)
		assert.Contains(t, again.Body.String(), "INVALID_TRANSITION")
	})

	t.Run("summary reflects payments", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodGet, "/api/v1/reports/summary", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		data := dataField(t, rec)
		assert.Equal(t, "5800", data["revenue"])
		assert.Equal(t, float64(1), data["customerCount"])
	})

	t.Run("validation failure surfaces field message", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPost, "/api/v1/usage", map[string]any{
			"customerId": customerID,
			"gb":         "1",
			"date":       "15/03/2024",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "date")
	})

	t.Run("unknown customer is a 404", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodGet, "/api/v1/customers/6f1f2dd5-94f1-4ee0-a3c7-000000000000", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_FOUND")
	})

	t.Run("compute for unknown customer is a 422", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPost, "/api/v1/invoices/compute", map[string]any{
			"customerId": "6f1f2dd5-94f1-4ee0-a3c7-000000000000",
			"startDate":  "2024-03-01",
			"endDate":    "2024-03-31",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_REFERENCE")
	})
}

func TestBundleEndpoints(t *testing.T) {
	engine := newTestEngine(t)

	rec := doJSON(t, engine, http.MethodPost, "/api/v1/system/reset", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	export := doJSON(t, engine, http.MethodGet, "/api/v1/bundle", nil)
	require.Equal(t, http.StatusOK, export.Code)
	assert.Contains(t, export.Body.String(), "Demo ISP")
	assert.Contains(t, export.Body.String(), "Home 10Mbps")
	assert.Contains(t, export.Body.String(), "Jane Doe")

	// Re-import the exported bundle into the same instance.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bundle", bytes.NewReader(export.Body.Bytes()))
	req.Header.Set("Content-Type", "application/json")
	imported := httptest.NewRecorder()
	engine.ServeHTTP(imported, req)
	require.Equal(t, http.StatusOK, imported.Code)

	bad := doJSON(t, engine, http.MethodPost, "/api/v1/bundle", map[string]any{"plans": []any{}})
	assert.Equal(t, http.StatusBadRequest, bad.Code)
	assert.Contains(t, bad.Body.String(), "IMPORT_ERROR")
}
