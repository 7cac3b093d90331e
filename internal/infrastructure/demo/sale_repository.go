package demo

import (
	"context"
	"fmt"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// SaleRepository ventas del modo demo. Las líneas se hidratan desde ventaDetalles por código.
type SaleRepository struct {
	*Repository[entity.Sale, entity.SalePatch, *entity.Sale]
	store *Store
}

func NewSaleRepository(s *Store) *SaleRepository {
	return &SaleRepository{
		Repository: newRepository[entity.Sale, entity.SalePatch](s.Sales, true),
		store:      s,
	}
}

func (r *SaleRepository) ListAll(ctx context.Context, companyID int) ([]*entity.Sale, error) {
	return r.List(ctx, repository.SaleFilter{CompanyID: companyID})
}

// List filtra por empresa, estado y producto (ventas con al menos una línea del producto).
func (r *SaleRepository) List(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	sales := r.store.Sales.Find(func(s *entity.Sale) bool {
		return (f.CompanyID == 0 || s.CompanyID == f.CompanyID) &&
			(f.Status == "" || s.Status == f.Status)
	})
	byCode := r.linesByCode()
	out := sales[:0]
	for _, s := range sales {
		s.Lines = byCode[s.Code]
		if f.ProductID != 0 && !hasProduct(s.Lines, f.ProductID) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *SaleRepository) GetByID(ctx context.Context, id int) (*entity.Sale, error) {
	s, err := r.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.Lines = r.linesFor(s.Code)
	return s, nil
}

func (r *SaleRepository) GetByCode(_ context.Context, code string) (*entity.Sale, error) {
	s, ok := r.store.Sales.First(func(s *entity.Sale) bool { return s.Code == code })
	if !ok {
		return nil, domain.NotFound(EntitySales, code)
	}
	s.Lines = r.linesFor(s.Code)
	return s, nil
}

// Create guarda la venta y sus líneas; el estado por defecto es completada.
func (r *SaleRepository) Create(_ context.Context, s *entity.Sale) (*entity.Sale, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: venta vacía", domain.ErrInvalidInput)
	}
	return r.store.CreateSale(*s)
}

// Update no recalcula el total; un cambio de código se propaga a las líneas.
func (r *SaleRepository) Update(_ context.Context, id int, patch entity.SalePatch) (*entity.Sale, error) {
	return r.store.UpdateSale(id, patch)
}

func (r *SaleRepository) linesFor(code string) []entity.SaleLine {
	var out []entity.SaleLine
	for _, l := range r.store.SaleLines.Find(func(l *entity.SaleLine) bool { return l.SaleCode == code }) {
		out = append(out, *l)
	}
	return out
}

func (r *SaleRepository) linesByCode() map[string][]entity.SaleLine {
	m := make(map[string][]entity.SaleLine)
	for _, l := range r.store.SaleLines.All(0) {
		m[l.SaleCode] = append(m[l.SaleCode], *l)
	}
	return m
}

func hasProduct(lines []entity.SaleLine, productID int) bool {
	for _, l := range lines {
		if l.ProductID == productID {
			return true
		}
	}
	return false
}

// SaleLineRepository detalles de venta del modo demo. Delete es físico.
type SaleLineRepository struct {
	*Repository[entity.SaleLine, entity.SaleLinePatch, *entity.SaleLine]
	store *Store
}

func NewSaleLineRepository(s *Store) *SaleLineRepository {
	return &SaleLineRepository{
		Repository: newRepository[entity.SaleLine, entity.SaleLinePatch](s.SaleLines, false),
		store:      s,
	}
}

// ListBySaleID devuelve vacío si la venta no existe.
func (r *SaleLineRepository) ListBySaleID(ctx context.Context, saleID int) ([]*entity.SaleLine, error) {
	sale, ok := r.store.Sales.Get(saleID)
	if !ok {
		return []*entity.SaleLine{}, nil
	}
	return r.ListBySaleCode(ctx, sale.Code)
}

func (r *SaleLineRepository) ListBySaleCode(_ context.Context, code string) ([]*entity.SaleLine, error) {
	return r.store.SaleLines.Find(func(l *entity.SaleLine) bool { return l.SaleCode == code }), nil
}

// PendingSaleRepository ventas pendientes del modo demo.
type PendingSaleRepository struct {
	*Repository[entity.PendingSale, entity.PendingSalePatch, *entity.PendingSale]
	store *Store
}

func NewPendingSaleRepository(s *Store) *PendingSaleRepository {
	return &PendingSaleRepository{
		Repository: newRepository[entity.PendingSale, entity.PendingSalePatch](s.PendingSales, true),
		store:      s,
	}
}

// Create fuerza el estado pendiente.
func (r *PendingSaleRepository) Create(ctx context.Context, ps *entity.PendingSale) (*entity.PendingSale, error) {
	if ps == nil {
		return nil, fmt.Errorf("%w: venta pendiente vacía", domain.ErrInvalidInput)
	}
	rec := ps.Clone()
	rec.Status = entity.SaleStatusPending
	if rec.ClientID == nil && rec.ClientName == "" {
		rec.ClientName = entity.GeneralClientName
	}
	return r.Repository.Create(ctx, &rec)
}

func (r *PendingSaleRepository) Complete(_ context.Context, id int, payment entity.PaymentInfo) (*entity.Sale, error) {
	return r.promote(id, &payment)
}

func (r *PendingSaleRepository) Convert(_ context.Context, id int) (*entity.Sale, error) {
	return r.promote(id, nil)
}

func (r *PendingSaleRepository) promote(id int, payment *entity.PaymentInfo) (*entity.Sale, error) {
	sale, ok := r.store.Promote(id, payment)
	if !ok {
		return nil, domain.NotFound(EntityPendingSales, id)
	}
	return sale, nil
}

var (
	_ repository.SaleRepository        = (*SaleRepository)(nil)
	_ repository.SaleLineRepository    = (*SaleLineRepository)(nil)
	_ repository.PendingSaleRepository = (*PendingSaleRepository)(nil)
)
