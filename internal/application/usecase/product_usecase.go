package usecase

import (
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos (demo o backend según el modo).
type ProductUseCase struct {
	*crud[entity.Product, entity.ProductPatch, repository.ProductRepository]
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(demo, live repository.ProductRepository, d Deps) *ProductUseCase {
	return &ProductUseCase{newCrud[entity.Product, entity.ProductPatch]("productos", demo, live, d)}
}

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	*crud[entity.Category, entity.CategoryPatch, repository.CategoryRepository]
}

func NewCategoryUseCase(demo, live repository.CategoryRepository, d Deps) *CategoryUseCase {
	return &CategoryUseCase{newCrud[entity.Category, entity.CategoryPatch]("categorias", demo, live, d)}
}

// ClientUseCase casos de uso CRUD para clientes.
type ClientUseCase struct {
	*crud[entity.Client, entity.ClientPatch, repository.ClientRepository]
}

func NewClientUseCase(demo, live repository.ClientRepository, d Deps) *ClientUseCase {
	return &ClientUseCase{newCrud[entity.Client, entity.ClientPatch]("clientes", demo, live, d)}
}

// SupplierUseCase casos de uso CRUD para proveedores.
type SupplierUseCase struct {
	*crud[entity.Supplier, entity.SupplierPatch, repository.SupplierRepository]
}

func NewSupplierUseCase(demo, live repository.SupplierRepository, d Deps) *SupplierUseCase {
	return &SupplierUseCase{newCrud[entity.Supplier, entity.SupplierPatch]("proveedores", demo, live, d)}
}

// RegisterUseCase casos de uso CRUD para cajas.
type RegisterUseCase struct {
	*crud[entity.Register, entity.RegisterPatch, repository.RegisterRepository]
}

func NewRegisterUseCase(demo, live repository.RegisterRepository, d Deps) *RegisterUseCase {
	return &RegisterUseCase{newCrud[entity.Register, entity.RegisterPatch]("cajas", demo, live, d)}
}

// ExpenseUseCase casos de uso CRUD para gastos.
type ExpenseUseCase struct {
	*crud[entity.Expense, entity.ExpensePatch, repository.ExpenseRepository]
}

func NewExpenseUseCase(demo, live repository.ExpenseRepository, d Deps) *ExpenseUseCase {
	return &ExpenseUseCase{newCrud[entity.Expense, entity.ExpensePatch]("gastos", demo, live, d)}
}
