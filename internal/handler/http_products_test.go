package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/SergeyBogomolovv/fulfillment-service/internal/handler"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/repo"
	"github.com/SergeyBogomolovv/fulfillment-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	products := repo.NewMemoryStore().Products()

	r := chi.NewRouter()
	handler.NewProductHandler(logger,
		service.NewCatalogService(logger, products, service.DefaultLowStockThreshold),
		service.NewInventoryService(logger, products),
	).Init(r)
	return r
}

func createProduct(t *testing.T, r http.Handler, body string) handler.Product {
	t.Helper()
	status, resp := serve(t, r, http.MethodPost, "/products", body)
	require.Equal(t, http.StatusCreated, status, resp)

	var p handler.Product
	require.NoError(t, json.Unmarshal([]byte(resp), &p))
	return p
}

func TestProductHandler_Create(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			body:       `{"name":"Desk Lamp","price":"19.99","stock_quantity":4,"category":"lighting","sku":"LMP-1"}`,
			wantStatus: http.StatusCreated,
			wantBody:   `"price":"19.99"`,
		},
		{
			name:       "numeric price",
			body:       `{"name":"Desk Lamp","price":19.5,"stock_quantity":4,"category":"lighting"}`,
			wantStatus: http.StatusCreated,
			wantBody:   `"price":"19.50"`,
		},
		{
			name:       "missing name",
			body:       `{"price":"19.99","category":"lighting"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"Name":"required"`,
		},
		{
			name:       "price with three decimals",
			body:       `{"name":"Desk Lamp","price":"1.999","category":"lighting"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"INVALID_ARGUMENT"`,
		},
		{
			name:       "malformed body",
			body:       `[`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := serve(t, productRouter(t), http.MethodPost, "/products", tc.body)
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestProductHandler_DuplicateSKU(t *testing.T) {
	r := productRouter(t)
	body := `{"name":"Desk Lamp","price":"19.99","category":"lighting","sku":"LMP-1"}`
	createProduct(t, r, body)

	status, resp := serve(t, r, http.MethodPost, "/products", body)
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, resp, `"code":"DUPLICATE_RESOURCE"`)

	status, resp = serve(t, r, http.MethodGet, "/products/sku/LMP-1", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, resp, `"name":"Desk Lamp"`)
}

func TestProductHandler_Lifecycle(t *testing.T) {
	r := productRouter(t)
	p := createProduct(t, r, `{"name":"Desk Lamp","price":"80.00","stock_quantity":4,"category":"lighting"}`)

	status, body := serve(t, r, http.MethodPut, "/products/"+p.ID,
		`{"name":"Desk Lamp XL","price":"90.00","stock_quantity":500,"category":"lighting"}`)
	require.Equal(t, http.StatusOK, status, body)
	assert.Contains(t, body, `"name":"Desk Lamp XL"`)
	assert.Contains(t, body, `"stock_quantity":4`)

	status, body = serve(t, r, http.MethodPost, "/products/"+p.ID+"/deactivate", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"active":false`)

	status, body = serve(t, r, http.MethodGet, "/products/active", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]\n", body)

	status, body = serve(t, r, http.MethodPost, "/products/"+p.ID+"/activate", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"active":true`)

	status, body = serve(t, r, http.MethodGet, "/products/"+p.ID+"/discounted-price?percent=25", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `"price":"67.50"`)

	status, _ = serve(t, r, http.MethodGet, "/products/"+p.ID+"/discounted-price?percent=120", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = serve(t, r, http.MethodDelete, "/products/"+p.ID, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, body = serve(t, r, http.MethodGet, "/products/"+p.ID, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, `"code":"NOT_FOUND"`)
}

func TestProductHandler_Stock(t *testing.T) {
	r := productRouter(t)
	p := createProduct(t, r, `{"name":"Desk Lamp","price":"10.00","stock_quantity":4,"category":"lighting"}`)

	testCases := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "check available", method: http.MethodGet, target: "/stock/check?quantity=4", wantStatus: http.StatusOK, wantBody: `"available":true`},
		{name: "check too many", method: http.MethodGet, target: "/stock/check?quantity=5", wantStatus: http.StatusOK, wantBody: `"available":false`},
		{name: "add", method: http.MethodPost, target: "/stock/add?quantity=6", wantStatus: http.StatusOK, wantBody: `"stock_quantity":10`},
		{name: "remove", method: http.MethodPost, target: "/stock/remove?quantity=3", wantStatus: http.StatusOK, wantBody: `"stock_quantity":7`},
		{name: "remove too many", method: http.MethodPost, target: "/stock/remove?quantity=8", wantStatus: http.StatusConflict, wantBody: `"code":"INSUFFICIENT_STOCK"`},
		{name: "set", method: http.MethodPatch, target: "/stock?quantity=42", wantStatus: http.StatusOK, wantBody: `"stock_quantity":42`},
		{name: "set negative", method: http.MethodPatch, target: "/stock?quantity=-1", wantStatus: http.StatusBadRequest, wantBody: `"code":"INVALID_ARGUMENT"`},
		{name: "quantity not a number", method: http.MethodPost, target: "/stock/add?quantity=many", wantStatus: http.StatusBadRequest, wantBody: `query parameter quantity`},
	}

	// cases share the product and run in order
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := serve(t, r, tc.method, "/products/"+p.ID+tc.target, "")
			assert.Equal(t, tc.wantStatus, status)
			assert.Contains(t, body, tc.wantBody)
		})
	}

	status, body := serve(t, r, http.MethodPost, "/products/missing/stock/add?quantity=1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, `"code":"NOT_FOUND"`)
}

func TestProductHandler_Queries(t *testing.T) {
	r := productRouter(t)
	lamp := createProduct(t, r, `{"name":"Desk Lamp","description":"Warm LED light","price":"20.00","stock_quantity":3,"category":"lighting"}`)
	chair := createProduct(t, r, `{"name":"Chair","price":"45.50","stock_quantity":12,"category":"furniture"}`)

	testCases := []struct {
		name       string
		target     string
		wantStatus int
		wantIDs    []string
		wantBody   string
	}{
		{name: "all", target: "/products", wantStatus: http.StatusOK, wantIDs: []string{lamp.ID, chair.ID}},
		{name: "category", target: "/products/category/furniture", wantStatus: http.StatusOK, wantIDs: []string{chair.ID}},
		{name: "search", target: "/products/search?keyword=led", wantStatus: http.StatusOK, wantIDs: []string{lamp.ID}},
		{name: "search without keyword", target: "/products/search", wantStatus: http.StatusBadRequest, wantBody: `"code":"INVALID_ARGUMENT"`},
		{name: "price range", target: "/products/price-range?min=40&max=50", wantStatus: http.StatusOK, wantIDs: []string{chair.ID}},
		{name: "price range inverted", target: "/products/price-range?min=50&max=40", wantStatus: http.StatusBadRequest, wantBody: `"code":"INVALID_ARGUMENT"`},
		{name: "price range missing bound", target: "/products/price-range?min=1", wantStatus: http.StatusBadRequest, wantBody: `query parameter max`},
		{name: "low stock default", target: "/products/low-stock", wantStatus: http.StatusOK, wantIDs: []string{lamp.ID}},
		{name: "low stock threshold", target: "/products/low-stock?threshold=20", wantStatus: http.StatusOK, wantIDs: []string{lamp.ID, chair.ID}},
		{name: "categories", target: "/products/categories", wantStatus: http.StatusOK, wantBody: `["furniture","lighting"]`},
		{name: "total value", target: "/products/total-value", wantStatus: http.StatusOK, wantBody: `{"total":"606.00"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := serve(t, r, http.MethodGet, tc.target, "")
			require.Equal(t, tc.wantStatus, status, body)
			assert.Contains(t, body, tc.wantBody)

			if tc.wantIDs != nil {
				var ps []handler.Product
				require.NoError(t, json.Unmarshal([]byte(body), &ps))
				ids := make([]string, 0, len(ps))
				for _, p := range ps {
					ids = append(ids, p.ID)
				}
				assert.ElementsMatch(t, tc.wantIDs, ids)
			}
		})
	}
}
