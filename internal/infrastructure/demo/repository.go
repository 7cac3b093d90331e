package demo

import (
	"context"
	"fmt"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// Repository implementación CRUD genérica sobre una colección del Store.
// soft indica si Delete es borrado lógico (true) o físico (false).
type Repository[T any, P entity.Patch[T], R entity.Record[T]] struct {
	col  *Collection[T, R]
	soft bool
}

func newRepository[T any, P entity.Patch[T], R entity.Record[T]](col *Collection[T, R], soft bool) *Repository[T, P, R] {
	return &Repository[T, P, R]{col: col, soft: soft}
}

func (r *Repository[T, P, R]) ListAll(_ context.Context, companyID int) ([]*T, error) {
	return r.col.All(companyID), nil
}

func (r *Repository[T, P, R]) GetByID(_ context.Context, id int) (*T, error) {
	rec, ok := r.col.Get(id)
	if !ok {
		return nil, domain.NotFound(r.col.Name(), id)
	}
	return rec, nil
}

func (r *Repository[T, P, R]) Create(_ context.Context, rec *T) (*T, error) {
	if rec == nil {
		return nil, fmt.Errorf("%w: registro vacío", domain.ErrInvalidInput)
	}
	return r.col.Insert(*rec), nil
}

func (r *Repository[T, P, R]) Update(_ context.Context, id int, patch P) (*T, error) {
	rec, ok := r.col.Update(id, func(v *T) { patch.Apply(v) })
	if !ok {
		return nil, domain.NotFound(r.col.Name(), id)
	}
	return rec, nil
}

func (r *Repository[T, P, R]) Delete(_ context.Context, id int) error {
	if r.soft {
		r.col.SoftDelete(id)
	} else {
		r.col.Remove(id)
	}
	return nil
}

type (
	ProductRepository  = Repository[entity.Product, entity.ProductPatch, *entity.Product]
	ClientRepository   = Repository[entity.Client, entity.ClientPatch, *entity.Client]
	SupplierRepository = Repository[entity.Supplier, entity.SupplierPatch, *entity.Supplier]
	CategoryRepository = Repository[entity.Category, entity.CategoryPatch, *entity.Category]
	RegisterRepository = Repository[entity.Register, entity.RegisterPatch, *entity.Register]
	ExpenseRepository  = Repository[entity.Expense, entity.ExpensePatch, *entity.Expense]
)

func NewProductRepository(s *Store) *ProductRepository {
	return newRepository[entity.Product, entity.ProductPatch](s.Products, true)
}

func NewClientRepository(s *Store) *ClientRepository {
	return newRepository[entity.Client, entity.ClientPatch](s.Clients, true)
}

func NewSupplierRepository(s *Store) *SupplierRepository {
	return newRepository[entity.Supplier, entity.SupplierPatch](s.Suppliers, true)
}

func NewCategoryRepository(s *Store) *CategoryRepository {
	return newRepository[entity.Category, entity.CategoryPatch](s.Categories, true)
}

func NewRegisterRepository(s *Store) *RegisterRepository {
	return newRepository[entity.Register, entity.RegisterPatch](s.Registers, true)
}

func NewExpenseRepository(s *Store) *ExpenseRepository {
	return newRepository[entity.Expense, entity.ExpensePatch](s.Expenses, true)
}

var (
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.ClientRepository   = (*ClientRepository)(nil)
	_ repository.SupplierRepository = (*SupplierRepository)(nil)
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
	_ repository.RegisterRepository = (*RegisterRepository)(nil)
	_ repository.ExpenseRepository  = (*ExpenseRepository)(nil)
)
