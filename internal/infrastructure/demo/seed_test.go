package demo

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superventas/pos-api/internal/domain/entity"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func generate(t *testing.T, seed uint64) *Dataset {
	t.Helper()
	ds, err := Generate(GenerateOptions{Seed: seed, Now: fixedNow})
	require.NoError(t, err)
	return ds
}

func TestGenerate_Cardinalidades(t *testing.T) {
	ds := generate(t, 1)

	assert.Equal(t, CompanyID, ds.Company.ID)
	assert.Len(t, ds.Users, NumUsers)
	assert.Len(t, ds.Registers, NumRegisters)
	assert.Len(t, ds.Categories, NumCategories)
	assert.Len(t, ds.Products, NumProducts)
	assert.Len(t, ds.Clients, NumClients)
	assert.Len(t, ds.Suppliers, NumSuppliers)
	assert.Len(t, ds.Sales, NumSales)
	assert.Len(t, ds.Purchases, NumPurchases)
	assert.Len(t, ds.Expenses, NumExpenses)
	assert.Len(t, ds.PendingSales, NumPendingSales)
	assert.NotEmpty(t, ds.SaleLines)
	assert.NotEmpty(t, ds.PurchaseLines)
}

func TestGenerate_MismaSemillaMismosDatos(t *testing.T) {
	a, b := generate(t, 99), generate(t, 99)

	require.Len(t, b.Products, len(a.Products))
	for i := range a.Products {
		assert.Equal(t, a.Products[i].Name, b.Products[i].Name)
		assert.True(t, a.Products[i].SalePrice.Equal(b.Products[i].SalePrice))
	}
	require.Len(t, b.Sales, len(a.Sales))
	for i := range a.Sales {
		assert.Equal(t, a.Sales[i].Code, b.Sales[i].Code)
		assert.True(t, a.Sales[i].Total.Equal(b.Sales[i].Total))
	}
	assert.Equal(t, len(a.SaleLines), len(b.SaleLines))
}

// El total de cada venta es la suma de sus líneas y el cambio es pagado - total.
func TestGenerate_TotalesCuadran(t *testing.T) {
	ds := generate(t, 5)

	byCode := map[string]decimal.Decimal{}
	for _, l := range ds.SaleLines {
		assert.True(t, l.Total.Equal(l.SalePrice.Mul(decimal.NewFromInt(int64(l.Quantity)))), "línea %d", l.ID)
		byCode[l.SaleCode] = byCode[l.SaleCode].Add(l.Total)
	}
	for _, s := range ds.Sales {
		assert.True(t, s.Total.Equal(byCode[s.Code]), "venta %s", s.Code)
		assert.True(t, s.Change.Equal(s.Paid.Sub(s.Total)), "venta %s", s.Code)
		assert.False(t, s.Change.IsNegative())
		assert.Nil(t, s.Lines)
	}

	purchases := map[string]decimal.Decimal{}
	for _, l := range ds.PurchaseLines {
		purchases[l.PurchaseCode] = purchases[l.PurchaseCode].Add(l.Total)
	}
	for _, p := range ds.Purchases {
		assert.True(t, p.Total.Equal(purchases[p.Code]), "compra %s", p.Code)
	}

	for _, ps := range ds.PendingSales {
		assert.Equal(t, entity.SaleStatusPending, ps.Status)
		assert.True(t, ps.Total.Equal(ps.LinesTotal()), "pendiente %s", ps.Code)
		assert.True(t, ps.Paid.LessThanOrEqual(ps.Total))
		if ps.ClientID == nil {
			assert.Equal(t, entity.GeneralClientName, ps.ClientName)
		}
	}
}

func TestGenerate_IDsDeLineasGlobales(t *testing.T) {
	ds := generate(t, 8)
	for i, l := range ds.SaleLines {
		assert.Equal(t, i+1, l.ID)
	}
	for i, l := range ds.PurchaseLines {
		assert.Equal(t, i+1, l.ID)
	}
}

func TestGenerate_Referencias(t *testing.T) {
	ds := generate(t, 13)
	registers := map[int]bool{}
	for _, r := range ds.Registers {
		registers[r.ID] = true
	}
	users := map[int]bool{}
	for _, u := range ds.Users {
		users[u.ID] = true
		assert.Equal(t, entity.UserStatusActive, u.Status)
		assert.NotEmpty(t, u.PasswordHash)
	}
	for _, s := range ds.Sales {
		assert.True(t, registers[s.RegisterID])
		assert.True(t, users[s.UserID])
		assert.True(t, s.Status.Valid())
	}
	for _, p := range ds.Products {
		assert.True(t, p.SalePrice.GreaterThan(p.PurchasePrice), p.Code)
		assert.Regexp(t, `^.+-[A-Z][0-9][A-Z][0-9]$`, p.Model)
		assert.True(t, strings.HasPrefix(p.Model, p.Brand+"-"), p.Model)
	}
}

var codePattern = regexp.MustCompile(`^(V|C|VP)-(\d{8})-(\d{4})$`)

// assertCode verifica prefijo, fecha del registro y secuencia del código.
func assertCode(t *testing.T, prefix, code, date string, seq int) {
	t.Helper()
	m := codePattern.FindStringSubmatch(code)
	require.NotNil(t, m, code)
	assert.Equal(t, prefix, m[1], code)
	assert.Equal(t, strings.ReplaceAll(date, "-", ""), m[2], code)
	assert.Equal(t, fmt.Sprintf("%04d", seq), m[3], code)
}

func TestGenerate_FormatoDeCodigos(t *testing.T) {
	ds := generate(t, 17)
	seen := map[string]bool{}
	for _, s := range ds.Sales {
		assertCode(t, "V", s.Code, s.Date, s.ID)
		assert.False(t, seen[s.Code], s.Code)
		seen[s.Code] = true
	}
	for _, p := range ds.Purchases {
		assertCode(t, "C", p.Code, p.Date, p.ID)
		assert.False(t, seen[p.Code], p.Code)
		seen[p.Code] = true
	}
	for _, ps := range ds.PendingSales {
		assertCode(t, "VP", ps.Code, ps.Date, ps.ID)
		assert.False(t, seen[ps.Code], ps.Code)
		seen[ps.Code] = true
	}
}

func TestGenerate_ClavesForaneas(t *testing.T) {
	ds := generate(t, 23)
	ids := func(n int, id func(int) int) map[int]bool {
		out := map[int]bool{}
		for i := 0; i < n; i++ {
			out[id(i)] = true
		}
		return out
	}
	categories := ids(len(ds.Categories), func(i int) int { return ds.Categories[i].ID })
	products := ids(len(ds.Products), func(i int) int { return ds.Products[i].ID })
	clients := ids(len(ds.Clients), func(i int) int { return ds.Clients[i].ID })
	suppliers := ids(len(ds.Suppliers), func(i int) int { return ds.Suppliers[i].ID })
	registers := ids(len(ds.Registers), func(i int) int { return ds.Registers[i].ID })
	users := ids(len(ds.Users), func(i int) int { return ds.Users[i].ID })
	sales := map[string]bool{}
	for _, s := range ds.Sales {
		sales[s.Code] = true
	}
	purchases := map[string]bool{}
	for _, p := range ds.Purchases {
		purchases[p.Code] = true
	}

	for _, p := range ds.Products {
		assert.True(t, categories[p.CategoryID], "producto %d", p.ID)
	}
	for _, s := range ds.Sales {
		require.NotNil(t, s.ClientID, s.Code)
		assert.True(t, clients[*s.ClientID], s.Code)
	}
	for _, l := range ds.SaleLines {
		assert.True(t, products[l.ProductID], "línea %d", l.ID)
		assert.True(t, sales[l.SaleCode], "línea %d", l.ID)
	}
	for _, p := range ds.Purchases {
		assert.True(t, suppliers[p.SupplierID], p.Code)
		assert.True(t, registers[p.RegisterID], p.Code)
		assert.True(t, users[p.UserID], p.Code)
	}
	for _, l := range ds.PurchaseLines {
		assert.True(t, products[l.ProductID], "línea %d", l.ID)
		assert.True(t, purchases[l.PurchaseCode], "línea %d", l.ID)
	}
	for _, e := range ds.Expenses {
		assert.True(t, registers[e.RegisterID], "gasto %d", e.ID)
	}
	for _, ps := range ds.PendingSales {
		assert.True(t, users[ps.UserID], ps.Code)
		assert.True(t, registers[ps.RegisterID], ps.Code)
		if ps.ClientID != nil {
			assert.True(t, clients[*ps.ClientID], ps.Code)
		}
		for _, l := range ps.Lines {
			assert.True(t, products[l.ProductID], ps.Code)
			assert.Equal(t, ps.Code, l.SaleCode)
		}
	}
}

func TestGenerate_RangosDeCantidades(t *testing.T) {
	ds := generate(t, 31)
	for _, l := range ds.SaleLines {
		assert.GreaterOrEqual(t, l.Quantity, 1)
		assert.LessOrEqual(t, l.Quantity, 10)
	}
	for _, l := range ds.PurchaseLines {
		assert.GreaterOrEqual(t, l.Quantity, 5)
		assert.LessOrEqual(t, l.Quantity, 50)
	}
	for _, ps := range ds.PendingSales {
		require.NotEmpty(t, ps.Lines, ps.Code)
		assert.LessOrEqual(t, len(ps.Lines), 5)
		sum := decimal.Zero
		for _, l := range ps.Lines {
			assert.GreaterOrEqual(t, l.Quantity, 1)
			assert.LessOrEqual(t, l.Quantity, 10)
			sum = sum.Add(l.Total)
		}
		assert.True(t, ps.Total.Equal(sum), ps.Code)
	}
}
