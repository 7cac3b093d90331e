package repository

import (
	"context"

	"github.com/superventas/pos-api/internal/domain/entity"
)

// SaleFilter filtra el listado de ventas con relaciones. Los campos cero no filtran.
type SaleFilter struct {
	CompanyID int
	Status    entity.SaleStatus
	ProductID int
}

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas se devuelven con sus detalles (Lines) hidratados.
type SaleRepository interface {
	Repository[entity.Sale, entity.SalePatch]
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)
	GetByCode(ctx context.Context, code string) (*entity.Sale, error)
}

// SaleLineRepository define el puerto de persistencia para los detalles de venta.
// Delete es borrado físico.
type SaleLineRepository interface {
	Repository[entity.SaleLine, entity.SaleLinePatch]
	ListBySaleID(ctx context.Context, saleID int) ([]*entity.SaleLine, error)
	ListBySaleCode(ctx context.Context, code string) ([]*entity.SaleLine, error)
}

// PendingSaleRepository define el puerto para ventas pendientes y su promoción.
type PendingSaleRepository interface {
	Repository[entity.PendingSale, entity.PendingSalePatch]
	// Complete promueve la venta pendiente aplicando los datos de cobro.
	Complete(ctx context.Context, id int, payment entity.PaymentInfo) (*entity.Sale, error)
	// Convert promueve la venta pendiente sin datos de cobro.
	Convert(ctx context.Context, id int) (*entity.Sale, error)
}
