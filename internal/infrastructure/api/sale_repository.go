package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// SaleRepository ventas del backend; los listados usan all-relations para traer detalles.
type SaleRepository struct {
	*Repository[entity.Sale, entity.SalePatch]
}

func NewSaleRepository(c *Client) *SaleRepository {
	return &SaleRepository{Repository: newRepository[entity.Sale, entity.SalePatch](c, ResourceSales)}
}

func (r *SaleRepository) ListAll(ctx context.Context, companyID int) ([]*entity.Sale, error) {
	return r.List(ctx, repository.SaleFilter{CompanyID: companyID})
}

func (r *SaleRepository) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, error) {
	q := companyQuery(f.CompanyID)
	if f.Status != "" {
		q.Set("estado", string(f.Status))
	}
	if f.ProductID != 0 {
		q.Set("productoId", strconv.Itoa(f.ProductID))
	}
	// El backend espera el '?' aunque no haya filtros.
	return r.list(ctx, ResourceSales+"/all-relations?"+q.Encode())
}

func (r *SaleRepository) GetByCode(ctx context.Context, code string) (*entity.Sale, error) {
	return r.get(ctx, ResourceSales+"/by-codigo/"+url.PathEscape(code))
}

// SaleLineRepository detalles de venta del backend.
type SaleLineRepository struct {
	*Repository[entity.SaleLine, entity.SaleLinePatch]
}

func NewSaleLineRepository(c *Client) *SaleLineRepository {
	return &SaleLineRepository{Repository: newRepository[entity.SaleLine, entity.SaleLinePatch](c, ResourceSaleLines)}
}

func (r *SaleLineRepository) ListBySaleID(ctx context.Context, saleID int) ([]*entity.SaleLine, error) {
	return r.list(ctx, fmt.Sprintf("%s/all-relations?ventaId=%d", ResourceSaleLines, saleID))
}

func (r *SaleLineRepository) ListBySaleCode(ctx context.Context, code string) ([]*entity.SaleLine, error) {
	return r.list(ctx, ResourceSaleLines+"/by-codigo/"+url.PathEscape(code))
}

// PendingSaleRepository ventas pendientes: en el backend son ventas con estado pendiente.
type PendingSaleRepository struct {
	*Repository[entity.PendingSale, entity.PendingSalePatch]
}

func NewPendingSaleRepository(c *Client) *PendingSaleRepository {
	return &PendingSaleRepository{Repository: newRepository[entity.PendingSale, entity.PendingSalePatch](c, ResourceSales)}
}

func (r *PendingSaleRepository) ListAll(ctx context.Context, companyID int) ([]*entity.PendingSale, error) {
	q := url.Values{"estado": {string(entity.SaleStatusPending)}}
	if companyID != 0 {
		q.Set("empresaId", strconv.Itoa(companyID))
	}
	return r.list(ctx, ResourceSales+"/all-relations?"+q.Encode())
}

type completeRequest struct {
	Status entity.SaleStatus `json:"estado"`
	entity.PaymentInfo
	Lines *[]entity.SaleLine `json:"detalles,omitempty"`
}

// Complete finaliza la venta en el backend con los datos de cobro.
func (r *PendingSaleRepository) Complete(ctx context.Context, id int, payment entity.PaymentInfo) (*entity.Sale, error) {
	return r.complete(ctx, id, completeRequest{Status: entity.SaleStatusCompleted, PaymentInfo: payment})
}

// CompleteWithLines igual que Complete pero reenvía los detalles actualizados.
func (r *PendingSaleRepository) CompleteWithLines(ctx context.Context, id int, payment entity.PaymentInfo, lines []entity.SaleLine) (*entity.Sale, error) {
	if lines == nil {
		lines = []entity.SaleLine{}
	}
	return r.complete(ctx, id, completeRequest{Status: entity.SaleStatusCompleted, PaymentInfo: payment, Lines: &lines})
}

func (r *PendingSaleRepository) complete(ctx context.Context, id int, body completeRequest) (*entity.Sale, error) {
	out := new(entity.Sale)
	if err := r.client.Patch(ctx, fmt.Sprintf("%s/update/%d", ResourceSales, id), body, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PendingSaleRepository) Convert(ctx context.Context, id int) (*entity.Sale, error) {
	out := new(entity.Sale)
	if err := r.client.Post(ctx, fmt.Sprintf("%s/convertir/%d", ResourceSales, id), struct{}{}, out); err != nil {
		return nil, err
	}
	return out, nil
}

var (
	_ repository.SaleRepository        = (*SaleRepository)(nil)
	_ repository.SaleLineRepository    = (*SaleLineRepository)(nil)
	_ repository.PendingSaleRepository = (*PendingSaleRepository)(nil)
)
