package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
	"github.com/superventas/pos-api/internal/domain/repository"
)

// SaleUseCase casos de uso de ventas. Las ventas se devuelven con sus detalles.
type SaleUseCase struct {
	*crud[entity.Sale, entity.SalePatch, repository.SaleRepository]
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(demo, live repository.SaleRepository, d Deps) *SaleUseCase {
	return &SaleUseCase{newCrud[entity.Sale, entity.SalePatch]("ventas", demo, live, d)}
}

// List ventas con relaciones filtradas por empresa y estado.
func (uc *SaleUseCase) List(ctx context.Context, companyID int, status entity.SaleStatus) ([]*entity.Sale, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: estado de venta %q", domain.ErrInvalidInput, status)
	}
	f := repository.SaleFilter{CompanyID: companyID, Status: status}
	return call(uc.modal, "list_relations", func(r repository.SaleRepository) ([]*entity.Sale, error) {
		return r.List(ctx, f)
	})
}

// ListByProduct ventas que incluyen al producto en alguno de sus detalles.
func (uc *SaleUseCase) ListByProduct(ctx context.Context, productID int) ([]*entity.Sale, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrInvalidInput, productID)
	}
	f := repository.SaleFilter{ProductID: productID}
	return call(uc.modal, "list_by_product", func(r repository.SaleRepository) ([]*entity.Sale, error) {
		return r.List(ctx, f)
	})
}

// GetByCode busca una venta por su código (V-YYYYMMDD-NNNN).
func (uc *SaleUseCase) GetByCode(ctx context.Context, code string) (*entity.Sale, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: código vacío", domain.ErrInvalidInput)
	}
	return call(uc.modal, "get_by_code", func(r repository.SaleRepository) (*entity.Sale, error) {
		return r.GetByCode(ctx, code)
	})
}

// SaleLineUseCase casos de uso de detalles de venta. Delete es borrado físico.
type SaleLineUseCase struct {
	*crud[entity.SaleLine, entity.SaleLinePatch, repository.SaleLineRepository]
}

func NewSaleLineUseCase(demo, live repository.SaleLineRepository, d Deps) *SaleLineUseCase {
	return &SaleLineUseCase{newCrud[entity.SaleLine, entity.SaleLinePatch]("ventaDetalles", demo, live, d)}
}

// ListBySaleID detalles de la venta; lista vacía si la venta no existe.
func (uc *SaleLineUseCase) ListBySaleID(ctx context.Context, saleID int) ([]*entity.SaleLine, error) {
	return call(uc.modal, "list_by_sale", func(r repository.SaleLineRepository) ([]*entity.SaleLine, error) {
		return r.ListBySaleID(ctx, saleID)
	})
}

func (uc *SaleLineUseCase) ListBySaleCode(ctx context.Context, code string) ([]*entity.SaleLine, error) {
	return call(uc.modal, "list_by_code", func(r repository.SaleLineRepository) ([]*entity.SaleLine, error) {
		return r.ListBySaleCode(ctx, code)
	})
}

// PurchaseUseCase casos de uso de compras.
type PurchaseUseCase struct {
	*crud[entity.Purchase, entity.PurchasePatch, repository.PurchaseRepository]
}

func NewPurchaseUseCase(demo, live repository.PurchaseRepository, d Deps) *PurchaseUseCase {
	return &PurchaseUseCase{newCrud[entity.Purchase, entity.PurchasePatch]("compras", demo, live, d)}
}

func (uc *PurchaseUseCase) GetByCode(ctx context.Context, code string) (*entity.Purchase, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("%w: código vacío", domain.ErrInvalidInput)
	}
	return call(uc.modal, "get_by_code", func(r repository.PurchaseRepository) (*entity.Purchase, error) {
		return r.GetByCode(ctx, code)
	})
}

// PurchaseLineUseCase casos de uso de detalles de compra. Delete es borrado físico.
type PurchaseLineUseCase struct {
	*crud[entity.PurchaseLine, entity.PurchaseLinePatch, repository.PurchaseLineRepository]
}

func NewPurchaseLineUseCase(demo, live repository.PurchaseLineRepository, d Deps) *PurchaseLineUseCase {
	return &PurchaseLineUseCase{newCrud[entity.PurchaseLine, entity.PurchaseLinePatch]("compraDetalles", demo, live, d)}
}

func (uc *PurchaseLineUseCase) ListByPurchaseCode(ctx context.Context, code string) ([]*entity.PurchaseLine, error) {
	return call(uc.modal, "list_by_code", func(r repository.PurchaseLineRepository) ([]*entity.PurchaseLine, error) {
		return r.ListByPurchaseCode(ctx, code)
	})
}
