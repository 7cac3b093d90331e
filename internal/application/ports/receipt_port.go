package ports

import (
	"context"

	"github.com/superventas/pos-api/internal/domain/entity"
)

// ReceiptData datos ya resueltos para imprimir el comprobante de una venta.
type ReceiptData struct {
	Company    *entity.Company
	Sale       *entity.Sale
	ClientName string
	SellerName string
}

// ReceiptRenderer genera la representación imprimible (PDF) de una venta.
type ReceiptRenderer interface {
	RenderSaleReceipt(ctx context.Context, data ReceiptData) ([]byte, error)
}
