package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// Recursos REST del backend.
const (
	ResourceProducts      = "productos"
	ResourceClients       = "clientes"
	ResourceSuppliers     = "proveedores"
	ResourceCategories    = "categorias"
	ResourceRegisters     = "cajas"
	ResourceExpenses      = "gastos"
	ResourceSales         = "ventas"
	ResourceSaleLines     = "venta-detalles"
	ResourcePurchases     = "compras"
	ResourcePurchaseLines = "compra-detalles"
	ResourceCompanies     = "empresas"
	ResourceUsers         = "usuarios"
)

// Repository CRUD genérico contra el backend:
// <recurso>/all, /getById/<id>, /create, /update/<id>, /delete/<id>.
type Repository[T any, P entity.Patch[T]] struct {
	client       *Client
	resource     string
	updateMethod string
}

func newRepository[T any, P entity.Patch[T]](c *Client, resource string) *Repository[T, P] {
	return &Repository[T, P]{client: c, resource: resource, updateMethod: http.MethodPatch}
}

func (r *Repository[T, P]) ListAll(ctx context.Context, companyID int) ([]*T, error) {
	return r.list(ctx, r.resource+"/all"+query(companyQuery(companyID)))
}

func (r *Repository[T, P]) GetByID(ctx context.Context, id int) (*T, error) {
	return r.get(ctx, fmt.Sprintf("%s/getById/%d", r.resource, id))
}

func (r *Repository[T, P]) Create(ctx context.Context, rec *T) (*T, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: registro vacío", domain.ErrInvalidInput)
	}
	out := new(T)
	if err := r.client.Post(ctx, r.resource+"/create", rec, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T, P]) Update(ctx context.Context, id int, patch P) (*T, error) {
	out := new(T)
	path := fmt.Sprintf("%s/update/%d", r.resource, id)
	var err error
	if r.updateMethod == http.MethodPut {
		err = r.client.Put(ctx, path, patch, out)
	} else {
		err = r.client.Patch(ctx, path, patch, out)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T, P]) Delete(ctx context.Context, id int) error {
	return r.client.Delete(ctx, fmt.Sprintf("%s/delete/%d", r.resource, id))
}

func (r *Repository[T, P]) get(ctx context.Context, path string) (*T, error) {
	out := new(T)
	if err := r.client.Get(ctx, path, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[T, P]) list(ctx context.Context, path string) ([]*T, error) {
	var out []*T
	if err := r.client.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type (
	ProductRepository  = Repository[entity.Product, entity.ProductPatch]
	ClientRepository   = Repository[entity.Client, entity.ClientPatch]
	SupplierRepository = Repository[entity.Supplier, entity.SupplierPatch]
	CategoryRepository = Repository[entity.Category, entity.CategoryPatch]
	ExpenseRepository  = Repository[entity.Expense, entity.ExpensePatch]
)

func NewProductRepository(c *Client) *ProductRepository {
	return newRepository[entity.Product, entity.ProductPatch](c, ResourceProducts)
}

func NewClientRepository(c *Client) *ClientRepository {
	return newRepository[entity.Client, entity.ClientPatch](c, ResourceClients)
}

func NewSupplierRepository(c *Client) *SupplierRepository {
	return newRepository[entity.Supplier, entity.SupplierPatch](c, ResourceSuppliers)
}

// NewCategoryRepository el backend actualiza categorías con PUT.
func NewCategoryRepository(c *Client) *CategoryRepository {
	r := newRepository[entity.Category, entity.CategoryPatch](c, ResourceCategories)
	r.updateMethod = http.MethodPut
	return r
}

func NewExpenseRepository(c *Client) *ExpenseRepository {
	return newRepository[entity.Expense, entity.ExpensePatch](c, ResourceExpenses)
}

func companyQuery(companyID int) url.Values {
	v := url.Values{}
	if companyID != 0 {
		v.Set("empresaId", strconv.Itoa(companyID))
	}
	return v
}

func query(values url.Values) string {
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

var (
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.ClientRepository   = (*ClientRepository)(nil)
	_ repository.SupplierRepository = (*SupplierRepository)(nil)
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
	_ repository.ExpenseRepository  = (*ExpenseRepository)(nil)
)
