package api

import (
	"context"
	"net/url"

	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

type PurchaseRepository struct {
	*Repository[entity.Purchase, entity.PurchasePatch]
}

func NewPurchaseRepository(c *Client) *PurchaseRepository {
	return &PurchaseRepository{Repository: newRepository[entity.Purchase, entity.PurchasePatch](c, ResourcePurchases)}
}

func (r *PurchaseRepository) GetByCode(ctx context.Context, code string) (*entity.Purchase, error) {
	return r.get(ctx, ResourcePurchases+"/by-codigo/"+url.PathEscape(code))
}

type PurchaseLineRepository struct {
	*Repository[entity.PurchaseLine, entity.PurchaseLinePatch]
}

func NewPurchaseLineRepository(c *Client) *PurchaseLineRepository {
	return &PurchaseLineRepository{Repository: newRepository[entity.PurchaseLine, entity.PurchaseLinePatch](c, ResourcePurchaseLines)}
}

func (r *PurchaseLineRepository) ListByPurchaseCode(ctx context.Context, code string) ([]*entity.PurchaseLine, error) {
	return r.list(ctx, ResourcePurchaseLines+"/by-compra-codigo/"+url.PathEscape(code))
}

var (
	_ repository.PurchaseRepository     = (*PurchaseRepository)(nil)
	_ repository.PurchaseLineRepository = (*PurchaseLineRepository)(nil)
)
