package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(repo Repository) *httptest.Server {
	svc := NewService(repo, nil, nil)
	h := NewHandler(nil, svc)
	r := chi.NewRouter()
	r.Route("/api/products", h.MountRoutes)
	return httptest.NewServer(r)
}

func request(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestHandlerCreateAndList(t *testing.T) {
	srv := newTestServer(newMemoryRepo())
	defer srv.Close()

	body := `{"data":{"nombre":"Coca Cola 2L","sku":"COCA-2L","precioVenta":12,"cantidad":24,"codigoBarras":"779000111"}}`
	resp, decoded := request(t, http.MethodPost, srv.URL+"/api/products", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", decoded["status"])
	assert.Equal(t, "Producto añadido", decoded["message"])

	resp, decoded = request(t, http.MethodGet, srv.URL+"/api/products", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decoded["data"].([]any)
	require.Len(t, data, 1)
	product := data[0].(map[string]any)
	assert.Equal(t, "COCA-2L", product["sku"])
	assert.Equal(t, float64(24), product["cantidad"])
}

func TestHandlerCreateValidation(t *testing.T) {
	srv := newTestServer(newMemoryRepo())
	defer srv.Close()

	// nombre is required.
	resp, decoded := request(t, http.MethodPost, srv.URL+"/api/products", `{"data":{"sku":"X"}}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "error", decoded["status"])
	assert.Equal(t, "Datos de producto inválidos", decoded["message"])
}

func TestHandlerUpdateRequiresOriginalSKU(t *testing.T) {
	srv := newTestServer(newMemoryRepo())
	defer srv.Close()

	resp, decoded := request(t, http.MethodPut, srv.URL+"/api/products", `{"data":{"nombre":"Coca","sku":"X"}}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decoded["message"], "originalSku")
}

func TestHandlerUpdateMissingProduct(t *testing.T) {
	srv := newTestServer(newMemoryRepo())
	defer srv.Close()

	body := `{"data":{"nombre":"Nada","sku":"GHOST","originalSku":"GHOST"}}`
	resp, decoded := request(t, http.MethodPut, srv.URL+"/api/products", body)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "error", decoded["status"])
}
