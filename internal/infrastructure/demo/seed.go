package demo

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"github.com/superventas/pos-api/internal/domain/entity"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// GenerateOptions parámetros del generador de la semilla.
type GenerateOptions struct {
	// Seed 0 usa una fuente aleatoria.
	Seed     uint64
	Now      time.Time
	Password string
}

type generator struct {
	f   *gofakeit.Faker
	now time.Time
	ds  *Dataset
}

// Generate construye el dataset demo completo. El orden importa: cada entidad
// referencia IDs de las generadas antes (empresa, usuarios, cajas, categorías,
// productos, clientes, proveedores, ventas, compras, gastos, ventas pendientes).
func Generate(opts GenerateOptions) (*Dataset, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	if opts.Password == "" {
		opts.Password = DefaultPassword
	}
	hash, err := hashPassword(opts.Password)
	if err != nil {
		return nil, fmt.Errorf("hash contraseña demo: %w", err)
	}

	g := &generator{f: gofakeit.New(opts.Seed), now: opts.Now, ds: &Dataset{}}
	g.company()
	g.users(hash)
	g.registers()
	g.categories()
	g.products()
	g.clients()
	g.suppliers()
	g.sales()
	g.purchases()
	g.expenses()
	g.pendingSales()
	return g.ds, nil
}

func (g *generator) company() {
	g.ds.Company = entity.Company{
		ID:      CompanyID,
		Name:    "SuperVentas Demo",
		TaxID:   "12345678-9",
		Phone:   "+502 2345-6789",
		Email:   "info@superventas-demo.com",
		Address: "Zona 10, Ciudad de Guatemala",
		OwnerID: 1,
		Photo:   "https://via.placeholder.com/150/0088FE/FFFFFF?text=SV",
		Audit:   g.audit(g.now, g.now),
	}
}

func (g *generator) users(hash string) {
	for i, u := range seedUsers {
		g.ds.Users = append(g.ds.Users, entity.User{
			ID:                 i + 1,
			CompanyID:          CompanyID,
			FirstName:          u.first,
			LastName:           u.last,
			Email:              u.email,
			Username:           u.username,
			PasswordHash:       hash,
			Role:               u.role,
			Photo:              u.photo,
			RegisterID:         u.registerID,
			Status:             entity.UserStatusActive,
			HasChangedPassword: true,
			Audit:              g.audit(g.now, g.now),
		})
	}
}

func (g *generator) registers() {
	opened := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, r := range []struct {
		name string
		cash int64
	}{{"Caja Principal", 1000}, {"Caja Secundaria", 500}} {
		g.ds.Registers = append(g.ds.Registers, entity.Register{
			ID:        i + 1,
			CompanyID: CompanyID,
			Number:    i + 1,
			Name:      r.name,
			Status:    entity.RegisterOpen,
			Cash:      decimal.NewFromInt(r.cash),
			Audit:     g.audit(opened, g.now),
		})
	}
}

func (g *generator) categories() {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range categoryCatalog {
		g.ds.Categories = append(g.ds.Categories, entity.Category{
			ID:        i + 1,
			CompanyID: CompanyID,
			Name:      c.name,
			Location:  c.location,
			Audit:     g.audit(created, g.now),
		})
	}
}

func (g *generator) products() {
	for id := 1; id <= NumProducts; id++ {
		cat := g.ds.Categories[g.index(len(g.ds.Categories))]
		brand := g.f.RandomString(brands)
		purchase := g.money(10, 500)
		markup := decimal.New(int64(g.f.Number(120, 250)), -2)
		g.ds.Products = append(g.ds.Products, entity.Product{
			ID:            id,
			CompanyID:     CompanyID,
			Code:          fmt.Sprintf("PROD-%05d", id),
			Name:          g.f.ProductName(),
			Description:   g.f.ProductDescription(),
			Stock:         g.f.Number(0, 200),
			UnitType:      g.f.RandomString(unitTypes),
			PurchasePrice: purchase,
			SalePrice:     purchase.Mul(markup).Round(2),
			Brand:         brand,
			Model:         brand + "-" + strings.ToUpper(g.f.Numerify(g.f.Lexify("?#?#"))),
			Status:        entity.ProductStatusActive,
			Photo:         "https://via.placeholder.com/300/0088FE/FFFFFF?text=" + url.QueryEscape(cat.Name),
			CategoryID:    cat.ID,
			Audit:         g.audit(g.daysAgo(180), g.now),
		})
	}
}

func (g *generator) place() (department, municipality string) {
	department = g.f.RandomString(departments)
	if ms, ok := municipalities[department]; ok {
		return department, g.f.RandomString(ms)
	}
	return department, department
}

func (g *generator) phone() string {
	return "+502 " + g.f.Numerify("####-####")
}

func (g *generator) clients() {
	docTypes := []string{entity.DocumentDPI, entity.DocumentNIT, entity.DocumentPassport}
	for id := 1; id <= NumClients; id++ {
		dep, mun := g.place()
		g.ds.Clients = append(g.ds.Clients, entity.Client{
			ID:             id,
			CompanyID:      CompanyID,
			DocumentType:   g.f.RandomString(docTypes),
			DocumentNumber: fmt.Sprintf("%d%s", g.f.Number(1, 9), g.f.Numerify("############")),
			FirstName:      g.f.FirstName(),
			LastName:       g.f.LastName(),
			Department:     dep,
			Municipality:   mun,
			Address:        g.f.Street(),
			Phone:          g.phone(),
			Email:          g.f.Email(),
			Audit:          g.audit(g.daysAgo(365), g.now),
		})
	}
}

func (g *generator) suppliers() {
	for id := 1; id <= NumSuppliers; id++ {
		dep, mun := g.place()
		g.ds.Suppliers = append(g.ds.Suppliers, entity.Supplier{
			ID:             id,
			CompanyID:      CompanyID,
			DocumentType:   entity.DocumentNIT,
			DocumentNumber: fmt.Sprintf("%d-%d", g.f.Number(0, 9999998), g.f.Number(0, 8)),
			Name:           g.f.Company(),
			Department:     dep,
			Municipality:   mun,
			Address:        g.f.Street(),
			Phone:          g.phone(),
			Email:          g.f.Email(),
			Audit:          g.audit(g.daysAgo(365), g.now),
		})
	}
}

// saleLines genera entre 1 y 5 líneas con cantidad 1..10 y devuelve su suma.
func (g *generator) saleLines(code string, at time.Time) ([]entity.SaleLine, decimal.Decimal) {
	n := g.f.Number(1, 5)
	lines := make([]entity.SaleLine, 0, n)
	for i := 0; i < n; i++ {
		p := g.ds.Products[g.index(len(g.ds.Products))]
		l := entity.NewSaleLine(p, g.f.Number(1, 10), code)
		l.ID = i + 1
		l.Audit = g.audit(at, at)
		lines = append(lines, l)
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total)
	}
	return lines, total
}

func (g *generator) staff(roles ...string) entity.User {
	var pool []entity.User
	for _, u := range g.ds.Users {
		for _, r := range roles {
			if u.Role == r {
				pool = append(pool, u)
			}
		}
	}
	return pool[g.index(len(pool))]
}

func (g *generator) sales() {
	for id := 1; id <= NumSales; id++ {
		at := g.daysAgo(180)
		code := fmt.Sprintf("V-%s-%04d", at.Format("20060102"), id)
		lines, total := g.saleLines(code, at)
		paid := total.Add(g.money(0, 100))
		client := g.ds.Clients[g.index(len(g.ds.Clients))].ID
		user := g.staff(entity.RoleAdmin, entity.RoleCashier, entity.RoleSeller)

		g.ds.Sales = append(g.ds.Sales, entity.Sale{
			ID:         id,
			CompanyID:  CompanyID,
			Code:       code,
			Date:       at.Format(dateLayout),
			Time:       at.Format(timeLayout),
			Total:      total,
			Paid:       paid,
			Change:     paid.Sub(total),
			UserID:     user.ID,
			ClientID:   &client,
			RegisterID: g.ds.Registers[g.index(len(g.ds.Registers))].ID,
			Status:     entity.SaleStatus(g.f.RandomString(seededSaleStatuses)),
			Audit:      g.audit(at, at),
		})
		for _, l := range lines {
			l.ID = len(g.ds.SaleLines) + 1
			g.ds.SaleLines = append(g.ds.SaleLines, l)
		}
	}
}

func (g *generator) purchases() {
	for id := 1; id <= NumPurchases; id++ {
		at := g.daysAgo(90)
		code := fmt.Sprintf("C-%s-%04d", at.Format("20060102"), id)
		user := g.staff(entity.RoleOwner, entity.RoleAdmin)

		total := decimal.Zero
		n := g.f.Number(1, 8)
		for i := 0; i < n; i++ {
			p := g.ds.Products[g.index(len(g.ds.Products))]
			l := entity.NewPurchaseLine(p, g.f.Number(5, 50), code)
			l.ID = len(g.ds.PurchaseLines) + 1
			l.Audit = g.audit(at, at)
			total = total.Add(l.Total)
			g.ds.PurchaseLines = append(g.ds.PurchaseLines, l)
		}

		g.ds.Purchases = append(g.ds.Purchases, entity.Purchase{
			ID:         id,
			CompanyID:  CompanyID,
			Code:       code,
			Date:       at.Format(dateLayout),
			Time:       at.Format(timeLayout),
			Total:      total,
			Paid:       total,
			Change:     decimal.Zero,
			UserID:     user.ID,
			SupplierID: g.ds.Suppliers[g.index(len(g.ds.Suppliers))].ID,
			RegisterID: g.ds.Registers[g.index(len(g.ds.Registers))].ID,
			Audit:      g.audit(at, at),
		})
	}
}

func (g *generator) expenses() {
	for id := 1; id <= NumExpenses; id++ {
		g.ds.Expenses = append(g.ds.Expenses, entity.Expense{
			ID:         id,
			CompanyID:  CompanyID,
			Reason:     g.f.RandomString(expenseReasons),
			Amount:     g.money(50, 2000),
			Funding:    g.f.RandomString(fundings),
			RegisterID: g.ds.Registers[g.index(len(g.ds.Registers))].ID,
			Audit:      g.audit(g.daysAgo(90), g.now),
		})
	}
}

func (g *generator) pendingSales() {
	for id := 1; id <= NumPendingSales; id++ {
		at := g.daysAgo(7)
		code := fmt.Sprintf("VP-%s-%04d", at.Format("20060102"), id)
		lines, total := g.saleLines(code, at)
		user := g.staff(entity.RoleAdmin, entity.RoleCashier, entity.RoleSeller)

		ps := entity.PendingSale{
			Sale: entity.Sale{
				ID:         id,
				CompanyID:  CompanyID,
				Code:       code,
				Date:       at.Format(dateLayout),
				Time:       at.Format(timeLayout),
				Total:      total,
				Paid:       g.moneyUpTo(total),
				Change:     decimal.Zero,
				UserID:     user.ID,
				RegisterID: g.ds.Registers[g.index(len(g.ds.Registers))].ID,
				Status:     entity.SaleStatusPending,
				Lines:      lines,
				Audit:      g.audit(at, at),
			},
			ClientName: entity.GeneralClientName,
			SellerName: user.FullName(),
		}
		// 7 de cada 10 tienen cliente.
		if g.f.Number(1, 10) <= 7 {
			c := g.ds.Clients[g.index(len(g.ds.Clients))]
			cid := c.ID
			ps.ClientID = &cid
			ps.ClientName = c.FullName()
		}
		g.ds.PendingSales = append(g.ds.PendingSales, ps)
	}
}

func (g *generator) index(n int) int { return g.f.Number(0, n-1) }

// money monto aleatorio con dos decimales en [min, max].
func (g *generator) money(min, max int) decimal.Decimal {
	return decimal.New(int64(g.f.Number(min*100, max*100)), -2)
}

func (g *generator) moneyUpTo(max decimal.Decimal) decimal.Decimal {
	cents := max.Shift(2).IntPart()
	return decimal.New(int64(g.f.Number(0, int(cents))), -2)
}

// daysAgo instante aleatorio dentro de los últimos n días.
func (g *generator) daysAgo(n int) time.Time {
	return g.now.Add(-time.Duration(g.f.Number(0, n*86400-1)) * time.Second)
}

func (g *generator) audit(created, updated time.Time) entity.Audit {
	return entity.Audit{CreatedAt: created, UpdatedAt: updated}
}
