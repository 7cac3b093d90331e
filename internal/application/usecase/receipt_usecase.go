package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/superventas/pos-api/internal/application/ports"
	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
)

// ReceiptUseCase genera el comprobante PDF de una venta, en el modo activo.
type ReceiptUseCase struct {
	sales     *SaleUseCase
	companies *CompanyUseCase
	clients   *ClientUseCase
	users     *UserUseCase
	renderer  ports.ReceiptRenderer
}

// NewReceiptUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReceiptUseCase(sales *SaleUseCase, companies *CompanyUseCase, clients *ClientUseCase, users *UserUseCase, renderer ports.ReceiptRenderer) *ReceiptUseCase {
	return &ReceiptUseCase{sales: sales, companies: companies, clients: clients, users: users, renderer: renderer}
}

// SaleReceipt devuelve los bytes del PDF y un nombre de archivo sugerido.
// Cliente o vendedor inexistentes no impiden generar el comprobante.
func (uc *ReceiptUseCase) SaleReceipt(ctx context.Context, saleID int) ([]byte, string, error) {
	sale, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	company, err := uc.companies.GetByID(ctx, sale.CompanyID)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener empresa: %w", err)
	}

	data := ports.ReceiptData{Company: company, Sale: sale, ClientName: entity.GeneralClientName}
	if sale.ClientID != nil {
		client, err := uc.clients.GetByID(ctx, *sale.ClientID)
		switch {
		case err == nil:
			data.ClientName = client.FullName()
		case !errors.Is(err, domain.ErrNotFound):
			return nil, "", fmt.Errorf("comprobante: obtener cliente: %w", err)
		}
	}
	if seller, err := uc.users.GetByID(ctx, sale.UserID); err == nil {
		data.SellerName = seller.FullName()
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", fmt.Errorf("comprobante: obtener vendedor: %w", err)
	}

	pdf, err := uc.renderer.RenderSaleReceipt(ctx, data)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("comprobante-%s.pdf", sale.Code), nil
}
