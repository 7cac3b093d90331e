package demo

import (
	"context"
	"fmt"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// PurchaseRepository compras del modo demo, con sus líneas hidratadas por código.
type PurchaseRepository struct {
	*Repository[entity.Purchase, entity.PurchasePatch, *entity.Purchase]
	store *Store
}

func NewPurchaseRepository(s *Store) *PurchaseRepository {
	return &PurchaseRepository{
		Repository: newRepository[entity.Purchase, entity.PurchasePatch](s.Purchases, true),
		store:      s,
	}
}

func (r *PurchaseRepository) ListAll(_ context.Context, companyID int) ([]*entity.Purchase, error) {
	purchases := r.store.Purchases.All(companyID)
	byCode := make(map[string][]entity.PurchaseLine)
	for _, l := range r.store.PurchaseLines.All(0) {
		byCode[l.PurchaseCode] = append(byCode[l.PurchaseCode], *l)
	}
	for _, p := range purchases {
		p.Lines = byCode[p.Code]
	}
	return purchases, nil
}

func (r *PurchaseRepository) GetByID(ctx context.Context, id int) (*entity.Purchase, error) {
	p, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Lines = r.linesFor(p.Code)
	return p, nil
}

func (r *PurchaseRepository) GetByCode(_ context.Context, code string) (*entity.Purchase, error) {
	p, ok := r.store.Purchases.First(func(p *entity.Purchase) bool { return p.Code == code })
	if !ok {
		return nil, domain.NotFound(EntityPurchases, code)
	}
	p.Lines = r.linesFor(p.Code)
	return p, nil
}

func (r *PurchaseRepository) Create(_ context.Context, p *entity.Purchase) (*entity.Purchase, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: compra vacía", domain.ErrInvalidInput)
	}
	return r.store.CreatePurchase(*p)
}

func (r *PurchaseRepository) Update(_ context.Context, id int, patch entity.PurchasePatch) (*entity.Purchase, error) {
	return r.store.UpdatePurchase(id, patch)
}

func (r *PurchaseRepository) linesFor(code string) []entity.PurchaseLine {
	var out []entity.PurchaseLine
	for _, l := range r.store.PurchaseLines.Find(func(l *entity.PurchaseLine) bool { return l.PurchaseCode == code }) {
		out = append(out, *l)
	}
	return out
}

// PurchaseLineRepository detalles de compra del modo demo. Delete es físico.
type PurchaseLineRepository struct {
	*Repository[entity.PurchaseLine, entity.PurchaseLinePatch, *entity.PurchaseLine]
	store *Store
}

func NewPurchaseLineRepository(s *Store) *PurchaseLineRepository {
	return &PurchaseLineRepository{
		Repository: newRepository[entity.PurchaseLine, entity.PurchaseLinePatch](s.PurchaseLines, false),
		store:      s,
	}
}

func (r *PurchaseLineRepository) ListByPurchaseCode(_ context.Context, code string) ([]*entity.PurchaseLine, error) {
	return r.store.PurchaseLines.Find(func(l *entity.PurchaseLine) bool { return l.PurchaseCode == code }), nil
}

var (
	_ repository.PurchaseRepository     = (*PurchaseRepository)(nil)
	_ repository.PurchaseLineRepository = (*PurchaseLineRepository)(nil)
)
