package adminapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amdora/dlccontrol/config"
	"github.com/amdora/dlccontrol/internal/app"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.Local)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.AppConfig{
		System: config.SysConfig{Appid: "dlccontrol-test", Location: "Local", Workdir: t.TempDir()},
		Logger: config.LogConfig{Mode: "development"},
	}
	application := app.NewApplication(cfg)
	application.OverrideClock(func() time.Time { return testNow })
	require.NoError(t, application.Init())
	t.Cleanup(application.Release)
	return NewServer(application)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echoHeaderContentType, "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

const echoHeaderContentType = "Content-Type"

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Code string                 `json:"code"`
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "OK", envelope.Code)
	return envelope.Data
}

func TestProductsAPI_CreateListDelete(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/dlc/products", map[string]interface{}{
		"category":   "Extras",
		"name":       "Molho Picante Caseiro",
		"expiryDate": "2025-06-18",
		"dlcType":    "Primária",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeData(t, rec)
	id, _ := created["id"].(string)
	assert.NotEmpty(t, id)
	assert.Equal(t, "critical", created["status"])
	assert.EqualValues(t, 3, created["daysToExpiry"])

	rec = doJSON(t, s, http.MethodGet, "/api/dlc/products?q=picante", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listData := decodeData(t, rec)
	assert.EqualValues(t, 1, listData["total"])

	rec = doJSON(t, s, http.MethodDelete, "/api/dlc/products/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/api/dlc/products/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductsAPI_Validation(t *testing.T) {
	s := newTestServer(t)

	t.Run("missing name", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/dlc/products", map[string]interface{}{
			"category": "Extras", "expiryDate": "2025-06-18",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing expiry date", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/dlc/products", map[string]interface{}{
			"category": "Extras", "name": "Sem Data",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown dlc type", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPost, "/api/dlc/products", map[string]interface{}{
			"category": "Extras", "name": "X", "expiryDate": "2025-06-18", "dlcType": "Terciária",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("update unknown id", func(t *testing.T) {
		rec := doJSON(t, s, http.MethodPut, "/api/dlc/products/missing", map[string]interface{}{
			"category": "Extras", "name": "X", "expiryDate": "2025-06-18",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSummaryAndCategoriesAPI(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/dlc/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := decodeData(t, rec)
	assert.Greater(t, summary["total"].(float64), float64(0))

	rec = doJSON(t, s, http.MethodGet, "/api/dlc/summary?dlcType=Secundária", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/dlc/summary?dlcType=Nope", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/dlc/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Molhos do Dia")

	rec = doJSON(t, s, http.MethodGet, "/api/dlc/statuses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Vence Hoje")
}

func TestVerificationsAPI(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/dlc/verifications/last", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeData(t, rec)
	assert.Equal(t, false, status["verifiedToday"])

	rec = doJSON(t, s, http.MethodPost, "/api/dlc/verifications", map[string]interface{}{
		"verifiedBy":  "Maria",
		"observation": "tudo conforme",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	entry := decodeData(t, rec)
	assert.Equal(t, "Maria", entry["verifiedBy"])
	assert.Greater(t, entry["productsCount"].(float64), float64(0))

	rec = doJSON(t, s, http.MethodGet, "/api/dlc/verifications/last", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status = decodeData(t, rec)
	assert.Equal(t, true, status["verifiedToday"])

	rec = doJSON(t, s, http.MethodGet, "/api/dlc/verifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listData := decodeData(t, rec)
	assert.EqualValues(t, 1, listData["total"])
}

func TestExportAPI(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/dlc/verifications", map[string]interface{}{})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/dlc/verifications/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "verificacoes_dlc_secundaria_2025-06-15.csv")
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Data e Hora,Responsável,Produtos Verificados,Observações"))
	assert.Contains(t, rec.Body.String(), `"-"`, "missing optionals render as dash")

	rec = doJSON(t, s, http.MethodGet, "/api/dlc/products/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "produtos_dlc_2025-06-15.csv")
	assert.Contains(t, rec.Body.String(), "Categoria")
}

func TestRenewAndResetAPI(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/dlc/products/renew-secundaria", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	renewData := decodeData(t, rec)
	assert.Greater(t, renewData["renewed"].(float64), float64(0))

	rec = doJSON(t, s, http.MethodPost, "/api/dlc/verifications", map[string]interface{}{})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/dlc/products/reset", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/dlc/verifications", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	listData := decodeData(t, rec)
	assert.EqualValues(t, 0, listData["total"], "reset discards the ledger")
}
