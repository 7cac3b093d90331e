package repository

import "github.com/superventas/pos-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Repository[entity.Product, entity.ProductPatch]
}

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Repository[entity.Client, entity.ClientPatch]
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Repository[entity.Supplier, entity.SupplierPatch]
}

// RegisterRepository define el puerto de persistencia para las cajas.
type RegisterRepository interface {
	Repository[entity.Register, entity.RegisterPatch]
}

// ExpenseRepository define el puerto de persistencia para Expense.
type ExpenseRepository interface {
	Repository[entity.Expense, entity.ExpensePatch]
}
