package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockboard/internal/application/dto"
	"github.com/jhoicas/stockboard/internal/application/usecase"
	"github.com/jhoicas/stockboard/internal/infrastructure/memory"
	"github.com/jhoicas/stockboard/internal/infrastructure/metrics"
	"github.com/jhoicas/stockboard/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/stockboard/internal/interfaces/http"
	"github.com/jhoicas/stockboard/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)

// buildTestApp construye la app completa sobre un store en memoria con el catálogo de demostración.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	rec := metrics.NewRecorder()
	opts := usecase.Options{Clock: func() time.Time { return testNow }, Observer: rec}
	store := memory.NewStore(memory.StoreOptions{ActivityCapacity: 20})

	inv := usecase.NewInventoryUseCase(store.Items, store.Activity, decimal.Zero, opts)
	clients := usecase.NewClientUseCase(store.Clients, store.Purchases, store.Activity, opts)
	purchases := usecase.NewPurchaseUseCase(store.Purchases, store.Activity, opts)
	require.NoError(t, usecase.SeedDemo(inv, clients, purchases))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		InventoryUC: inv,
		ClientUC:    clients,
		PurchaseUC:  purchases,
		DashboardUC: usecase.NewDashboardUseCase(store.Items, store.Clients, store.Purchases, store.Activity, opts),
		ReportUC:    usecase.NewReportUseCase(inv, purchases, pdf.NewMarotoGenerator("Test"), opts),
		Metrics:     rec,
		Log:         logger.Nop(),
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Items
// ──────────────────────────────────────────────────────────────────────────────

func TestItems_ListarConBusqueda(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/items?q="+url.QueryEscape("écran"), "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.ItemListResponse](t, resp)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Écran Samsung 27\"", out.Items[0].Name)
	assert.Equal(t, "22199.74", out.Totals.TotalValue.StringFixed(2))
}

func TestItems_Resumen(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/items/summary", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw := decode[map[string]any](t, resp)
	assert.Equal(t, "22199.74", raw["total_value"], "los decimales viajan como string")
	assert.Equal(t, float64(26), raw["total_quantity"])
}

func TestItems_CrearSinCategoria(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/items",
		`{"name":"Chaise","supplier":"Ikea","quantity":4,"price":"49.90"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, out.Code)
	assert.Equal(t, []string{"category"}, out.Fields)
}

func TestItems_CrearYObtener(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/items",
		`{"name":"Chaise","category":"Mobilier","supplier":"Ikea","quantity":4,"price":49.9,"min_stock":2}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.ItemResponse](t, resp)
	assert.Equal(t, "199.60", created.StockValue.StringFixed(2))

	resp = doRequest(t, app, http.MethodGet, "/api/items/"+created.ID, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, decode[dto.ItemResponse](t, resp).ID)
}

func TestItems_CantidadNegativa(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/items",
		`{"name":"Chaise","category":"Mobilier","supplier":"Ikea","quantity":-1}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"quantity"}, decode[dto.ErrorResponse](t, resp).Fields)
}

func TestItems_CantidadDesbordada(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/items",
		`{"name":"Chaise","category":"Mobilier","supplier":"Ikea","quantity":9223372036854775807,"min_stock":1000000001}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"quantity", "min_stock"}, decode[dto.ErrorResponse](t, resp).Fields)

	sum := decode[dto.ItemTotalsResponse](t, doRequest(t, app, http.MethodGet, "/api/items/summary", ""))
	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, 26, sum.TotalQuantity)
}

func TestItems_EditarDesconocido(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPut, "/api/items/nope",
		`{"name":"Chaise","category":"Mobilier","supplier":"Ikea"}`)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, decode[dto.ErrorResponse](t, resp).Code)

	resp = doRequest(t, app, http.MethodGet, "/api/items/nope", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestItems_CuerpoInvalido(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/items", `{"name":`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidBody, decode[dto.ErrorResponse](t, resp).Code)
}

func TestItems_Reposicion(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/items/replenishment", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[[]dto.ReplenishmentSuggestionDTO](t, resp)
	require.Len(t, out, 1)
	assert.Equal(t, 12, out[0].SuggestedQty)
}

func TestCategorias(t *testing.T) {
	app := buildTestApp(t)
	out := decode[[]string](t, doRequest(t, app, http.MethodGet, "/api/categories", ""))
	assert.Equal(t, []string{"Électronique", "Accessoires", "Mobilier", "Vêtements", "Alimentation", "Autres"}, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Clients y compras
// ──────────────────────────────────────────────────────────────────────────────

func TestClients_EmailInvalido(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/clients", `{"name":"Ana","email":"no-es-email"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"email"}, decode[dto.ErrorResponse](t, resp).Fields)
}

func TestClients_EmailConEspacios(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/clients", `{"name":" Ana ","email":" ana@exemple.fr "}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decode[dto.ClientResponse](t, resp)
	assert.Equal(t, "Ana", out.Name)
	assert.Equal(t, "ana@exemple.fr", out.Email)
}

func TestClients_Listar(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodGet, "/api/clients", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.ClientListResponse](t, resp)
	assert.Len(t, out.Clients, 3)
	assert.Equal(t, 2, out.Totals.Active)
	assert.Equal(t, "3699.93", out.Totals.TotalRevenue.StringFixed(2))
}

func TestPurchases_CrearCalculaTotal(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/purchases",
		`{"client_name":"Ana","lines":[{"name":"Souris","quantity":3,"unit_price":"10.50"},{"name":"","quantity":1,"unit_price":"99"}],"total":"1"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decode[dto.PurchaseResponse](t, resp)
	assert.Equal(t, "31.50", out.Total.StringFixed(2))
	assert.Len(t, out.Lines, 1)
	assert.Equal(t, "2024-01-20", out.Date)
}

func TestPurchases_LineaInvalida(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/purchases",
		`{"client_name":"Ana","lines":[{"name":"Souris","quantity":-2,"unit_price":"10"}]}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"lines[0].quantity"}, decode[dto.ErrorResponse](t, resp).Fields)
}

func TestPurchases_LineaSinNombreIgnorada(t *testing.T) {
	app := buildTestApp(t)
	resp := doRequest(t, app, http.MethodPost, "/api/purchases",
		`{"client_name":"Ana","lines":[{"name":"Souris","quantity":1,"unit_price":"10"},{"name":"","quantity":-1}]}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	out := decode[dto.PurchaseResponse](t, resp)
	require.Len(t, out.Lines, 1)
	assert.Equal(t, "10.00", out.Total.StringFixed(2))
}

func TestPurchases_ResumenYRecibo(t *testing.T) {
	app := buildTestApp(t)
	sum := decode[dto.PurchaseTotalsResponse](t, doRequest(t, app, http.MethodGet, "/api/purchases/summary", ""))
	assert.Equal(t, "3699.93", sum.Revenue.StringFixed(2))

	list := decode[dto.PurchaseListResponse](t, doRequest(t, app, http.MethodGet, "/api/purchases", ""))
	require.NotEmpty(t, list.Purchases)

	resp := doRequest(t, app, http.MethodGet, "/api/purchases/"+list.Purchases[0].ID+"/receipt.pdf", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "recu_")

	resp = doRequest(t, app, http.MethodGet, "/api/purchases/nope/receipt.pdf", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard(t *testing.T) {
	app := buildTestApp(t)
	overview := decode[dto.DashboardOverviewDTO](t, doRequest(t, app, http.MethodGet, "/api/dashboard/overview", ""))
	assert.Equal(t, 26, overview.UnitsInStock)
	assert.Equal(t, 3, overview.PurchasesThisMonth)

	analytics := decode[dto.AnalyticsDTO](t, doRequest(t, app, http.MethodGet, "/api/dashboard/analytics?top=1", ""))
	require.Len(t, analytics.TopProducts, 2)
	assert.Equal(t, "Autres", analytics.TopProducts[1].Name)
	assert.Equal(t, "3699.93", analytics.RevenueThisMonth.StringFixed(2))
	require.Len(t, analytics.ClientActivity, 1)
	assert.Equal(t, 3, analytics.ClientActivity[0].New)

	activity := decode[[]dto.ActivityDTO](t, doRequest(t, app, http.MethodGet, "/api/dashboard/activity?limit=2", ""))
	assert.Len(t, activity, 2)
}

func TestMetrics(t *testing.T) {
	app := buildTestApp(t)
	doRequest(t, app, http.MethodGet, "/api/items", "")

	resp := doRequest(t, app, http.MethodGet, "/metrics", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `stockboard_mutations_total{entity="item",op="add"} 3`)
	assert.Contains(t, string(body), "stockboard_http_requests_total")
}
