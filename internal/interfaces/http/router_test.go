package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superventas/pos-api/internal/application/auth"
	"github.com/superventas/pos-api/internal/application/dto"
	"github.com/superventas/pos-api/internal/application/usecase"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/infrastructure/api"
	"github.com/superventas/pos-api/internal/infrastructure/demo"
	"github.com/superventas/pos-api/internal/infrastructure/pdf"
	apphttp "github.com/superventas/pos-api/internal/interfaces/http"
)

type toggle struct{ on atomic.Bool }

func (t *toggle) IsDemoActive() bool { return t.on.Load() }

// buildAPI arma la API completa sobre el almacén demo y un backend falso que responde 500.
func buildAPI(t *testing.T, demoOn bool) *fiber.App {
	t.Helper()
	store, err := demo.NewStore(demo.WithSeed(7))
	require.NoError(t, err)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "fallo remoto", http.StatusInternalServerError)
	}))
	t.Cleanup(upstream.Close)
	client := api.NewClient(api.Config{BaseURL: upstream.URL})

	mode := &toggle{}
	mode.on.Store(demoOn)
	d := usecase.Deps{Mode: mode}

	users := usecase.NewUserUseCase(demo.NewUserRepository(store), api.NewUserRepository(client), d)
	companies := usecase.NewCompanyUseCase(demo.NewCompanyRepository(store), api.NewCompanyRepository(client), d)
	clients := usecase.NewClientUseCase(demo.NewClientRepository(store), api.NewClientRepository(client), d)
	sales := usecase.NewSaleUseCase(demo.NewSaleRepository(store), api.NewSaleRepository(client), d)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:         auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		DemoUC:         usecase.NewDemoUseCase(store, d),
		CompanyUC:      companies,
		UserUC:         users,
		RegisterUC:     usecase.NewRegisterUseCase(demo.NewRegisterRepository(store), api.NewRegisterRepository(client), d),
		CategoryUC:     usecase.NewCategoryUseCase(demo.NewCategoryRepository(store), api.NewCategoryRepository(client), d),
		ProductUC:      usecase.NewProductUseCase(demo.NewProductRepository(store), api.NewProductRepository(client), d),
		ClientUC:       clients,
		SupplierUC:     usecase.NewSupplierUseCase(demo.NewSupplierRepository(store), api.NewSupplierRepository(client), d),
		SaleUC:         sales,
		SaleLineUC:     usecase.NewSaleLineUseCase(demo.NewSaleLineRepository(store), api.NewSaleLineRepository(client), d),
		PurchaseUC:     usecase.NewPurchaseUseCase(demo.NewPurchaseRepository(store), api.NewPurchaseRepository(client), d),
		PurchaseLineUC: usecase.NewPurchaseLineUseCase(demo.NewPurchaseLineRepository(store), api.NewPurchaseLineRepository(client), d),
		ExpenseUC:      usecase.NewExpenseUseCase(demo.NewExpenseRepository(store), api.NewExpenseRepository(client), d),
		PendingSaleUC:  usecase.NewPendingSaleUseCase(demo.NewPendingSaleRepository(store), api.NewPendingSaleRepository(client), d),
		ReceiptUC:      usecase.NewReceiptUseCase(sales, companies, clients, users, pdf.NewReceiptGenerator()),
		JWTSecret:      testJWTSecret,
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Code
}

func TestLogin_DemoDevuelveToken(t *testing.T) {
	app := buildAPI(t, true)

	resp := call(t, app, http.MethodPost, "/api/auth/login", `{"email":"owner@superventas.com","password":"demo123"}`, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Token string      `json:"token"`
		User  entity.User `json:"usuario"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleOwner, out.User.Role)

	list := call(t, app, http.MethodGet, "/api/productos", "", "Bearer "+out.Token)
	require.Equal(t, http.StatusOK, list.StatusCode)
	var products []entity.Product
	require.NoError(t, json.NewDecoder(list.Body).Decode(&products))
	assert.Len(t, products, demo.NumProducts)
}

func TestLogin_CredencialesInvalidas401(t *testing.T) {
	app := buildAPI(t, true)
	resp := call(t, app, http.MethodPost, "/api/auth/login", `{"email":"owner@superventas.com","password":"mala"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_BodyInvalido400(t *testing.T) {
	app := buildAPI(t, true)
	resp := call(t, app, http.MethodPost, "/api/auth/login", `{"email":"no-es-email"}`, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, resp))
}

func TestErrores_MapeoDeCodigos(t *testing.T) {
	demoApp := buildAPI(t, true)
	token := tokenForRole(t, entity.RoleOwner)

	notFound := call(t, demoApp, http.MethodGet, "/api/productos/9999", "", token)
	assert.Equal(t, http.StatusNotFound, notFound.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, notFound))

	badID := call(t, demoApp, http.MethodGet, "/api/productos/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, badID.StatusCode)

	invalidOp := call(t, demoApp, http.MethodDelete, "/api/empresas/1", "", token)
	assert.Equal(t, http.StatusForbidden, invalidOp.StatusCode)
	assert.Equal(t, "INVALID_OPERATION", errorCode(t, invalidOp))

	noToken := call(t, demoApp, http.MethodGet, "/api/productos", "", "")
	assert.Equal(t, http.StatusUnauthorized, noToken.StatusCode)

	liveApp := buildAPI(t, false)
	upstream := call(t, liveApp, http.MethodGet, "/api/productos/1", "", token)
	assert.Equal(t, http.StatusBadGateway, upstream.StatusCode)
	assert.Equal(t, "UPSTREAM", errorCode(t, upstream))

	reset := call(t, liveApp, http.MethodPost, "/api/demo/reset", "", token)
	assert.Equal(t, http.StatusForbidden, reset.StatusCode)
}

func TestPendingSale_CompletarValidaCuerpo(t *testing.T) {
	app := buildAPI(t, true)
	token := tokenForRole(t, entity.RoleCashier)

	bad := call(t, app, http.MethodPost, "/api/ventas-pendientes/1/completar", `{"pagado":"10","cambio":"0","cajaId":0}`, token)
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)

	ok := call(t, app, http.MethodPost, "/api/ventas-pendientes/1/completar",
		`{"pagado":"5000","cambio":"0","cajaId":1,"usuarioId":3,"empresaId":1}`, token)
	require.Equal(t, http.StatusOK, ok.StatusCode)
	var sale entity.Sale
	require.NoError(t, json.NewDecoder(ok.Body).Decode(&sale))
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
	assert.Equal(t, demo.NumSales+1, sale.ID)

	again := call(t, app, http.MethodPost, "/api/ventas-pendientes/1/completar",
		`{"pagado":"5000","cambio":"0","cajaId":1,"usuarioId":3,"empresaId":1}`, token)
	assert.Equal(t, http.StatusNotFound, again.StatusCode)
}

func TestDemo_StatusYReset(t *testing.T) {
	app := buildAPI(t, true)

	anon := call(t, app, http.MethodPost, "/api/demo/reset", "", "")
	assert.Equal(t, http.StatusUnauthorized, anon.StatusCode)

	cashier := call(t, app, http.MethodPost, "/api/demo/reset", "", tokenForRole(t, entity.RoleCashier))
	assert.Equal(t, http.StatusForbidden, cashier.StatusCode)

	resp := call(t, app, http.MethodPost, "/api/demo/reset", "", tokenForRole(t, entity.RoleAdmin))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	status := call(t, app, http.MethodGet, "/api/demo/status", "", "")
	require.Equal(t, http.StatusOK, status.StatusCode)
	var out usecase.DemoStatus
	require.NoError(t, json.NewDecoder(status.Body).Decode(&out))
	assert.True(t, out.Active)
	assert.Equal(t, demo.NumSales, out.Counts[demo.EntitySales])
}

func TestVentas_Comprobante(t *testing.T) {
	app := buildAPI(t, true)
	resp := call(t, app, http.MethodGet, "/api/ventas/1/comprobante", "", tokenForRole(t, entity.RoleSeller))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}
