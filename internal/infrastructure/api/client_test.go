package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

type recorded struct {
	method string
	uri    string
	auth   string
	reqID  string
	body   string
}

type recorder struct {
	mu    sync.Mutex
	items []recorded
}

func (r *recorder) all() []recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]recorded(nil), r.items...)
}

// backend servidor falso que guarda cada request y responde con status y body fijos.
func backend(t *testing.T, status int, body string) (*Client, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.items = append(rec.items, recorded{
			method: r.Method,
			uri:    r.URL.RequestURI(),
			auth:   r.Header.Get("Authorization"),
			reqID:  r.Header.Get("X-Request-ID"),
			body:   string(raw),
		})
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/", Token: "tok"}), rec
}

func TestClient_RutasCRUD(t *testing.T) {
	c, rec := backend(t, http.StatusOK, `{"id":4,"nombre":"Bebidas"}`)
	repo := NewCategoryRepository(c)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Bebidas", got.Name)

	_, err = repo.Create(ctx, &entity.Category{Name: "Bebidas"})
	require.NoError(t, err)
	name := "Refrescos"
	_, err = repo.Update(ctx, 4, entity.CategoryPatch{Name: &name})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, 4))

	calls := rec.all()
	require.Len(t, calls, 4)
	assert.Equal(t, "GET", calls[0].method)
	assert.Equal(t, "/categorias/getById/4", calls[0].uri)
	assert.Equal(t, "POST", calls[1].method)
	assert.Equal(t, "/categorias/create", calls[1].uri)
	assert.Equal(t, "PUT", calls[2].method)
	assert.Equal(t, "/categorias/update/4", calls[2].uri)
	assert.JSONEq(t, `{"nombre":"Refrescos"}`, calls[2].body)
	assert.Equal(t, "DELETE", calls[3].method)
	assert.Equal(t, "/categorias/delete/4", calls[3].uri)

	for _, call := range calls {
		assert.Equal(t, "Bearer tok", call.auth)
		assert.NotEmpty(t, call.reqID)
	}
}

func TestClient_ListadosConFiltros(t *testing.T) {
	c, rec := backend(t, http.StatusOK, `[]`)
	ctx := context.Background()

	_, err := NewProductRepository(c).ListAll(ctx, 1)
	require.NoError(t, err)
	_, err = NewSaleRepository(c).List(ctx, repository.SaleFilter{CompanyID: 1, Status: entity.SaleStatusPending})
	require.NoError(t, err)
	_, err = NewSaleRepository(c).List(ctx, repository.SaleFilter{})
	require.NoError(t, err)
	_, err = NewSaleRepository(c).GetByCode(ctx, "V-2026 01")
	require.Error(t, err) // el cuerpo [] no es una venta
	_, err = NewPurchaseLineRepository(c).ListByPurchaseCode(ctx, "C-1")
	require.NoError(t, err)
	_, err = NewPendingSaleRepository(c).ListAll(ctx, 1)
	require.NoError(t, err)

	calls := rec.all()
	uris := make([]string, 0, len(calls))
	for _, call := range calls {
		uris = append(uris, call.uri)
	}
	assert.Equal(t, []string{
		"/productos/all?empresaId=1",
		"/ventas/all-relations?empresaId=1&estado=pendiente",
		"/ventas/all-relations?",
		"/ventas/by-codigo/V-2026%2001",
		"/compra-detalles/by-compra-codigo/C-1",
		"/ventas/all-relations?empresaId=1&estado=pendiente",
	}, uris)
}

func TestClient_ErrorDelBackend(t *testing.T) {
	c, _ := backend(t, http.StatusNotFound, `{"message":"no existe"}`)

	_, err := NewProductRepository(c).GetByID(context.Background(), 9)
	require.Error(t, err)

	var up *domain.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, http.StatusNotFound, up.Status)
	assert.Equal(t, "productos/getById/9", up.Path)
	assert.Contains(t, up.Body, "no existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_Error500NoEsNotFound(t *testing.T) {
	c, _ := backend(t, http.StatusInternalServerError, "")
	err := NewExpenseRepository(c).Delete(context.Background(), 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{BaseURL: srv.URL, Timeout: 20 * time.Millisecond})
	_, err := NewProductRepository(c).ListAll(context.Background(), 1)
	require.Error(t, err)
	var up *domain.UpstreamError
	assert.False(t, errors.As(err, &up))
}

func TestUserRepository_Authenticate(t *testing.T) {
	c, rec := backend(t, http.StatusOK, `{"usuario":{"id":3,"email":"cajero@superventas.com","cargo":"Cajero"}}`)
	u, err := NewUserRepository(c).Authenticate(context.Background(), "cajero@superventas.com", "demo123")
	require.NoError(t, err)
	assert.Equal(t, 3, u.ID)
	calls := rec.all()
	assert.Equal(t, "/auth/login", calls[0].uri)
	assert.JSONEq(t, `{"email":"cajero@superventas.com","clave":"demo123"}`, calls[0].body)

	denied, _ := backend(t, http.StatusUnauthorized, `credenciales inválidas`)
	_, err = NewUserRepository(denied).Authenticate(context.Background(), "x@y.com", "z")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegisterRepository_NormalizaColumnas(t *testing.T) {
	c, _ := backend(t, http.StatusOK, `[
		{"id":1,"caja_numero":1,"caja_nombre":"Caja Principal","estado":"abierta","caja_efectivo":"1000.50","empresa_id":1,"created_at":"2026-01-01T00:00:00Z"},
		{"id":2,"numero":2,"nombre":"Caja Secundaria","estado":"cerrada","efectivo":"500","empresaId":1}
	]`)

	regs, err := NewRegisterRepository(c).ListAll(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, regs, 2)

	assert.Equal(t, 1, regs[0].Number)
	assert.Equal(t, "Caja Principal", regs[0].Name)
	assert.True(t, decimal.RequireFromString("1000.50").Equal(regs[0].Cash))
	assert.Equal(t, 1, regs[0].CompanyID)
	assert.Equal(t, 2026, regs[0].CreatedAt.Year())

	assert.Equal(t, 2, regs[1].Number)
	assert.Equal(t, "Caja Secundaria", regs[1].Name)
	assert.True(t, decimal.NewFromInt(500).Equal(regs[1].Cash))
	assert.Nil(t, regs[1].DeletedAt)
}

func TestPendingSaleRepository_CompletarEnviaEstadoYPago(t *testing.T) {
	c, rec := backend(t, http.StatusOK, `{"id":5,"estado":"completada"}`)
	repo := NewPendingSaleRepository(c)
	payment := entity.PaymentInfo{Paid: decimal.NewFromInt(100), Change: decimal.NewFromInt(5), RegisterID: 1, UserID: 3, CompanyID: 1}

	sale, err := repo.Complete(context.Background(), 5, payment)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)

	_, err = repo.CompleteWithLines(context.Background(), 5, payment, nil)
	require.NoError(t, err)
	_, err = repo.Convert(context.Background(), 5)
	require.NoError(t, err)

	calls := rec.all()
	require.Len(t, calls, 3)
	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(calls[0].body), &first))
	assert.Equal(t, "completada", first["estado"])
	assert.Equal(t, "100", first["pagado"])
	assert.NotContains(t, first, "detalles")

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(calls[1].body), &second))
	assert.Equal(t, []any{}, second["detalles"])

	assert.Equal(t, "POST", calls[2].method)
	assert.Equal(t, "/ventas/convertir/5", calls[2].uri)
}
