package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superventas/pos-api/internal/application/ports"
	"github.com/superventas/pos-api/internal/domain/entity"
)

func receiptData() ports.ReceiptData {
	product := entity.Product{ID: 1, CompanyID: 1, Name: "Café molido 500g", SalePrice: decimal.RequireFromString("45.50")}
	line := entity.NewSaleLine(product, 3, "V-20260301-0001")
	clientID := 2
	return ports.ReceiptData{
		Company: &entity.Company{ID: 1, Name: "SuperVentas Demo", TaxID: "12345678-9", Address: "Zona 10"},
		Sale: &entity.Sale{
			ID:       1,
			Code:     "V-20260301-0001",
			Date:     "2026-03-01",
			Time:     "10:15:00",
			Total:    line.Total,
			Paid:     decimal.NewFromInt(150),
			Change:   decimal.NewFromInt(150).Sub(line.Total),
			ClientID: &clientID,
			Status:   entity.SaleStatusCompleted,
			Lines:    []entity.SaleLine{line},
		},
		ClientName: "Luis Ramírez",
		SellerName: "Ana Martínez",
	}
}

func TestRenderSaleReceipt_GeneraPDF(t *testing.T) {
	out, err := NewReceiptGenerator().RenderSaleReceipt(context.Background(), receiptData())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Greater(t, len(out), 1000)
}

func TestRenderSaleReceipt_SinLineas(t *testing.T) {
	data := receiptData()
	data.Sale.Lines = nil
	data.ClientName = ""
	out, err := NewReceiptGenerator().RenderSaleReceipt(context.Background(), data)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderSaleReceipt_DatosObligatorios(t *testing.T) {
	_, err := NewReceiptGenerator().RenderSaleReceipt(context.Background(), ports.ReceiptData{})
	assert.Error(t, err)
}

func TestFormatQuetzal(t *testing.T) {
	got := formatQuetzal(decimal.RequireFromString("1234.5"))
	assert.True(t, len(got) > 2 && got[:2] == "Q ", got)
	assert.Contains(t, got, "234")
	assert.Equal(t, "50", got[len(got)-2:])

	assert.Equal(t, "00", formatQuetzal(decimal.Zero)[len(formatQuetzal(decimal.Zero))-2:])
}

func TestNonEmpty(t *testing.T) {
	assert.Equal(t, "x", nonEmpty("x", "y"))
	assert.Equal(t, "y", nonEmpty("", "y"))
}
