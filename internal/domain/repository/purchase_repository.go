package repository

import (
	"context"

	"github.com/superventas/pos-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para Purchase.
type PurchaseRepository interface {
	Repository[entity.Purchase, entity.PurchasePatch]
	GetByCode(ctx context.Context, code string) (*entity.Purchase, error)
}

// PurchaseLineRepository define el puerto para los detalles de compra. Delete es borrado físico.
type PurchaseLineRepository interface {
	Repository[entity.PurchaseLine, entity.PurchaseLinePatch]
	ListByPurchaseCode(ctx context.Context, code string) ([]*entity.PurchaseLine, error)
}
