package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductScenario(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, nethttp.MethodPost, "/products", `{"name":"Widget","price":9.99}`)
	require.Equal(t, nethttp.StatusCreated, w.Code)

	var created struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Widget", created.Name)
	assert.InDelta(t, 9.99, created.Price, 1e-9)

	// Round-trip: the created record shows up in the listing unchanged.
	w = doJSON(t, r, nethttp.MethodGet, "/products", "")
	require.Equal(t, nethttp.StatusOK, w.Code)

	var list []struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Widget", list[0].Name)
	assert.InDelta(t, 9.99, list[0].Price, 1e-9)
}

func TestListProductsEmpty(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, nethttp.MethodGet, "/products", "")
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreateProductMissingPrice(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, nethttp.MethodPost, "/products", `{"name":"Widget"}`)
	require.Equal(t, nethttp.StatusBadRequest, w.Code)

	var body struct {
		Error     string            `json:"error"`
		RequestID string            `json:"request_id"`
		Fields    map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Error)
	assert.NotEmpty(t, body.RequestID)
	assert.Contains(t, body.Fields, "price")
}

func TestCreateProductBadJSON(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, nethttp.MethodPost, "/products", `{not json`)
	assert.Equal(t, nethttp.StatusBadRequest, w.Code)
}

func TestCreateProductZeroPriceAccepted(t *testing.T) {
	r, _ := newTestRouter(t)

	// Presence is validated, sign and magnitude are not.
	w := doJSON(t, r, nethttp.MethodPost, "/products", `{"name":"Freebie","price":0}`)
	assert.Equal(t, nethttp.StatusCreated, w.Code)
}

func TestRequestIDHeaderEchoed(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/products", nil)
	req.Header.Set("X-Request-ID", "rid-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "rid-123", w.Header().Get("X-Request-ID"))
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, nethttp.MethodGet, "/healthz", "")
	require.Equal(t, nethttp.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
