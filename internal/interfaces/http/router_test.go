package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/inventario-bom/internal/application/analytics"
	"github.com/jhoicas/inventario-bom/internal/application/auth"
	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/application/production"
	"github.com/jhoicas/inventario-bom/internal/application/usecase"
	domaininv "github.com/jhoicas/inventario-bom/internal/domain/inventory"
	"github.com/jhoicas/inventario-bom/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventario-bom/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventario-bom/internal/interfaces/http"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

const testPassword = "clave-segura"

func newAPI(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.Nop()
	store := memory.NewStore()
	tx := memory.NewTxRunner(store)
	ledger := inventory.NewStockLedger(log)

	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SupplierUC:    usecase.NewSupplierUseCase(tx, log),
		ItemUC:        usecase.NewItemUseCase(tx, log),
		BOMUC:         usecase.NewBOMUseCase(tx, log),
		TransactionUC: inventory.NewTransactionUseCase(tx, ledger, log),
		Planner:       production.NewPlanner(tx),
		Orchestrator:  production.NewOrchestrator(tx, ledger, log),
		PlanPDF:       infrapdf.NewMarotoPDFGenerator(),
		DashboardUC:   appanalytics.NewDashboardUseCase(tx, 10),
		AuthUC: auth.NewAuthUseCase(
			auth.Credentials{Username: testUsername, PasswordHash: hash},
			auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer},
		),
		JWTSecret: testJWTSecret,
		Logger:    log,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func login(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: testUsername, Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	decode(t, resp, &out)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var e dto.ErrorResponse
	decode(t, resp, &e)
	return e.Code
}

func TestLogin(t *testing.T) {
	app := newAPI(t)
	login(t, app)

	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: testUsername, Password: "otra"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: testUsername})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/items", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSuppliers_ErroresDeValidacion(t *testing.T) {
	app := newAPI(t)
	token := login(t, app)

	resp := call(t, app, http.MethodPost, "/api/suppliers", token, dto.CreateSupplierRequest{Name: "Maderas", BusinessNumber: "1234567890"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.SupplierResponse
	decode(t, resp, &created)
	assert.Equal(t, 1, created.ID)

	resp = call(t, app, http.MethodPost, "/api/suppliers", token, dto.CreateSupplierRequest{Name: "Maderas"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_NAME", errorCode(t, resp))

	resp = call(t, app, http.MethodPost, "/api/suppliers", token, dto.CreateSupplierRequest{Name: "Otro", BusinessNumber: "12-34"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "BAD_FORMAT", errorCode(t, resp))

	resp = call(t, app, http.MethodGet, "/api/suppliers/99", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/suppliers/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_ID", errorCode(t, resp))

	resp = call(t, app, http.MethodDelete, "/api/suppliers/1", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestProduccion_PlanEjecucionYMovimientos(t *testing.T) {
	app := newAPI(t)
	token := login(t, app)

	createItem := func(name string, stock int64) dto.ItemResponse {
		resp := call(t, app, http.MethodPost, "/api/items", token, dto.CreateItemRequest{
			Name: name, Stock: decimal.NewFromInt(stock), UnitPrice: decimal.NewFromInt(100),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var it dto.ItemResponse
		decode(t, resp, &it)
		return it
	}
	product := createItem("Mesa", 0)
	material := createItem("Tabla", 10)

	resp := call(t, app, http.MethodPost, "/api/bom/1/materials", token, dto.AddMaterialRequest{MaterialID: material.ID, Quantity: decimal.NewFromInt(2)})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/bom/1/materials", token, dto.AddMaterialRequest{MaterialID: material.ID, Quantity: decimal.NewFromInt(1)})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_MATERIAL", errorCode(t, resp))

	resp = call(t, app, http.MethodPost, "/api/production/plan", token, dto.PlanRequest{ProductID: product.ID, Quantity: 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var plan domaininv.ProductionPlan
	decode(t, resp, &plan)
	assert.True(t, plan.Feasible)
	require.Len(t, plan.Materials, 1)
	assert.True(t, plan.Materials[0].RequiredQuantity.Equal(decimal.NewFromInt(10)))

	resp = call(t, app, http.MethodPost, "/api/production/plan", token, dto.PlanRequest{ProductID: material.ID, Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "NO_BOM_DEFINED", errorCode(t, resp))

	resp = call(t, app, http.MethodPost, "/api/production/plan.pdf", token, dto.PlanRequest{ProductID: product.ID, Quantity: 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	resp.Body.Close()

	resp = call(t, app, http.MethodPost, "/api/production/execute", token, dto.ExecuteRequest{ProductID: product.ID, Quantity: 5, ProductionDate: "2024-05-10"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result production.ExecutionResult
	decode(t, resp, &result)
	assert.True(t, result.Completed)
	assert.Len(t, result.TransactionIDs, 2)

	resp = call(t, app, http.MethodGet, "/api/items/2", token, nil)
	var tabla dto.ItemResponse
	decode(t, resp, &tabla)
	assert.True(t, tabla.Stock.IsZero())

	resp = call(t, app, http.MethodGet, "/api/items/1", token, nil)
	var mesa dto.ItemResponse
	decode(t, resp, &mesa)
	assert.True(t, mesa.Stock.Equal(decimal.NewFromInt(5)))

	// Sin material restante el plan ya no es factible.
	resp = call(t, app, http.MethodPost, "/api/production/execute", token, dto.ExecuteRequest{ProductID: product.ID, Quantity: 1})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_MATERIALS", errorCode(t, resp))

	resp = call(t, app, http.MethodPost, "/api/transactions", token, dto.RegisterTransactionRequest{Type: "out", ItemID: material.ID, Quantity: decimal.NewFromInt(1)})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", errorCode(t, resp))

	resp = call(t, app, http.MethodPost, "/api/transactions", token, dto.RegisterTransactionRequest{Type: "traspaso", ItemID: material.ID, Quantity: decimal.NewFromInt(1)})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSACTION_TYPE", errorCode(t, resp))

	resp = call(t, app, http.MethodGet, "/api/transactions?item_id=2", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.TransactionListResponse
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Page.Total)
	assert.Equal(t, "outbound", list.Items[0].TransactionType)

	resp = call(t, app, http.MethodGet, "/api/dashboard/summary", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var summary dto.DashboardSummaryDTO
	decode(t, resp, &summary)
	assert.Equal(t, 2, summary.TotalItems)
	assert.True(t, summary.TotalStockValue.Equal(decimal.NewFromInt(500)))
}

func TestItems_ImportCSV(t *testing.T) {
	app := newAPI(t)
	token := login(t, app)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "items.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("물품명,품번,초기재고,단가\n볼트,B-1,100,5\n볼트,B-2,1,1\n너트,,,\n와셔,,abc,\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/items/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report dto.ImportReport
	decode(t, resp, &report)
	assert.Equal(t, 2, report.Imported)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, 3, report.Errors[0].Line)
	assert.Equal(t, 5, report.Errors[1].Line)

	resp = call(t, app, http.MethodGet, "/api/items?q="+url.QueryEscape("너트"), token, nil)
	var items []dto.ItemResponse
	decode(t, resp, &items)
	require.Len(t, items, 1)
	assert.True(t, items[0].Stock.IsZero())
}
