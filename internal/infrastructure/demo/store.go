package demo

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/superventas/pos-api/internal/domain"
	"github.com/superventas/pos-api/internal/domain/entity"
)

// Nombres de entidad con los que se direccionan las colecciones.
const (
	EntityCompany      = "empresa"
	EntityUsers        = "usuarios"
	EntityRegisters    = "cajas"
	EntityCategories   = "categorias"
	EntityProducts     = "productos"
	EntityClients      = "clientes"
	EntitySuppliers    = "proveedores"
	EntitySales        = "ventas"
	EntitySaleLines    = "ventaDetalles"
	EntityPurchases    = "compras"
	EntityPurchaseLine = "compraDetalles"
	EntityExpenses     = "gastos"
	EntityPendingSales = "ventasPendientes"
)

// Dataset es el contenido completo del almacén. Las ventas y compras se guardan
// sin Lines: sus detalles viven en SaleLines y PurchaseLines.
type Dataset struct {
	Company       entity.Company
	Users         []entity.User
	Registers     []entity.Register
	Categories    []entity.Category
	Products      []entity.Product
	Clients       []entity.Client
	Suppliers     []entity.Supplier
	Sales         []entity.Sale
	SaleLines     []entity.SaleLine
	Purchases     []entity.Purchase
	PurchaseLines []entity.PurchaseLine
	Expenses      []entity.Expense
	PendingSales  []entity.PendingSale
}

// Store es el almacén en memoria del modo demo: una colección por entidad.
// Los flujos que tocan varias colecciones toman los locks en este orden fijo:
// ventasPendientes, ventas, ventaDetalles; compras, compraDetalles.
type Store struct {
	Companies     *Collection[entity.Company, *entity.Company]
	Users         *Collection[entity.User, *entity.User]
	Registers     *Collection[entity.Register, *entity.Register]
	Categories    *Collection[entity.Category, *entity.Category]
	Products      *Collection[entity.Product, *entity.Product]
	Clients       *Collection[entity.Client, *entity.Client]
	Suppliers     *Collection[entity.Supplier, *entity.Supplier]
	Sales         *Collection[entity.Sale, *entity.Sale]
	SaleLines     *Collection[entity.SaleLine, *entity.SaleLine]
	Purchases     *Collection[entity.Purchase, *entity.Purchase]
	PurchaseLines *Collection[entity.PurchaseLine, *entity.PurchaseLine]
	Expenses      *Collection[entity.Expense, *entity.Expense]
	PendingSales  *Collection[entity.PendingSale, *entity.PendingSale]

	resetMu sync.Mutex
	seed    *Dataset
	now     func() time.Time
}

// Option configura el Store.
type Option func(*storeOptions)

type storeOptions struct {
	seed     uint64
	now      func() time.Time
	password string
	dataset  *Dataset
}

// WithSeed fija la semilla del generador para obtener datos reproducibles.
func WithSeed(seed uint64) Option {
	return func(o *storeOptions) { o.seed = seed }
}

// WithClock reemplaza el reloj usado para fechas de auditoría y generación.
func WithClock(now func() time.Time) Option {
	return func(o *storeOptions) { o.now = now }
}

// WithPassword contraseña de los usuarios demo (por defecto DefaultPassword).
func WithPassword(password string) Option {
	return func(o *storeOptions) { o.password = password }
}

// WithDataset usa un dataset ya generado como semilla.
func WithDataset(ds *Dataset) Option {
	return func(o *storeOptions) { o.dataset = ds }
}

// NewStore genera la semilla una sola vez y carga una copia en las colecciones.
func NewStore(opts ...Option) (*Store, error) {
	o := storeOptions{now: time.Now, password: DefaultPassword}
	for _, opt := range opts {
		opt(&o)
	}
	ds := o.dataset
	if ds == nil {
		var err error
		ds, err = Generate(GenerateOptions{Seed: o.seed, Now: o.now(), Password: o.password})
		if err != nil {
			return nil, fmt.Errorf("generar datos demo: %w", err)
		}
	}
	s := &Store{seed: ds, now: o.now}
	s.load(ds)
	return s, nil
}

func (s *Store) load(ds *Dataset) {
	now := s.now
	if s.Companies == nil {
		s.Companies = newCollection[entity.Company, *entity.Company](EntityCompany, now, []entity.Company{ds.Company})
		s.Users = newCollection[entity.User, *entity.User](EntityUsers, now, ds.Users)
		s.Registers = newCollection[entity.Register, *entity.Register](EntityRegisters, now, ds.Registers)
		s.Categories = newCollection[entity.Category, *entity.Category](EntityCategories, now, ds.Categories)
		s.Products = newCollection[entity.Product, *entity.Product](EntityProducts, now, ds.Products)
		s.Clients = newCollection[entity.Client, *entity.Client](EntityClients, now, ds.Clients)
		s.Suppliers = newCollection[entity.Supplier, *entity.Supplier](EntitySuppliers, now, ds.Suppliers)
		s.Sales = newCollection[entity.Sale, *entity.Sale](EntitySales, now, ds.Sales)
		s.SaleLines = newCollection[entity.SaleLine, *entity.SaleLine](EntitySaleLines, now, ds.SaleLines)
		s.Purchases = newCollection[entity.Purchase, *entity.Purchase](EntityPurchases, now, ds.Purchases)
		s.PurchaseLines = newCollection[entity.PurchaseLine, *entity.PurchaseLine](EntityPurchaseLine, now, ds.PurchaseLines)
		s.Expenses = newCollection[entity.Expense, *entity.Expense](EntityExpenses, now, ds.Expenses)
		s.PendingSales = newCollection[entity.PendingSale, *entity.PendingSale](EntityPendingSales, now, ds.PendingSales)
		return
	}
	s.Companies.replace([]entity.Company{ds.Company})
	s.Users.replace(ds.Users)
	s.Registers.replace(ds.Registers)
	s.Categories.replace(ds.Categories)
	s.Products.replace(ds.Products)
	s.Clients.replace(ds.Clients)
	s.Suppliers.replace(ds.Suppliers)
	s.PendingSales.replace(ds.PendingSales)
	s.Sales.replace(ds.Sales)
	s.SaleLines.replace(ds.SaleLines)
	s.Purchases.replace(ds.Purchases)
	s.PurchaseLines.replace(ds.PurchaseLines)
	s.Expenses.replace(ds.Expenses)
}

// Reset restaura todas las colecciones a la semilla original. Las mutaciones
// anteriores se pierden y los IDs vuelven a contar desde el máximo de la semilla.
func (s *Store) Reset() {
	s.resetMu.Lock()
	defer s.resetMu.Unlock()
	s.load(s.seed)
}

// Seed devuelve una copia profunda de la semilla con la que se creó el Store.
func (s *Store) Seed() *Dataset {
	st := &Store{now: s.now}
	st.load(s.seed)
	return st.Data()
}

// Data devuelve una copia profunda del contenido actual.
func (s *Store) Data() *Dataset {
	ds := &Dataset{
		Users:         s.Users.snapshot(),
		Registers:     s.Registers.snapshot(),
		Categories:    s.Categories.snapshot(),
		Products:      s.Products.snapshot(),
		Clients:       s.Clients.snapshot(),
		Suppliers:     s.Suppliers.snapshot(),
		Sales:         s.Sales.snapshot(),
		SaleLines:     s.SaleLines.snapshot(),
		Purchases:     s.Purchases.snapshot(),
		PurchaseLines: s.PurchaseLines.snapshot(),
		Expenses:      s.Expenses.snapshot(),
		PendingSales:  s.PendingSales.snapshot(),
	}
	if companies := s.Companies.snapshot(); len(companies) > 0 {
		ds.Company = companies[0]
	}
	return ds
}

// Counts número de registros por nombre de entidad.
func (s *Store) Counts() map[string]int {
	return map[string]int{
		EntityCompany:      s.Companies.Len(),
		EntityUsers:        s.Users.Len(),
		EntityRegisters:    s.Registers.Len(),
		EntityCategories:   s.Categories.Len(),
		EntityProducts:     s.Products.Len(),
		EntityClients:      s.Clients.Len(),
		EntitySuppliers:    s.Suppliers.Len(),
		EntitySales:        s.Sales.Len(),
		EntitySaleLines:    s.SaleLines.Len(),
		EntityPurchases:    s.Purchases.Len(),
		EntityPurchaseLine: s.PurchaseLines.Len(),
		EntityExpenses:     s.Expenses.Len(),
		EntityPendingSales: s.PendingSales.Len(),
	}
}

// Len número de registros de la entidad indicada.
func (s *Store) Len(name string) (int, error) {
	n, ok := s.Counts()[name]
	if !ok {
		return 0, fmt.Errorf("%w: entidad desconocida %q", domain.ErrInvalidInput, name)
	}
	return n, nil
}

// EntityNames nombres de entidad ordenados alfabéticamente.
func EntityNames() []string {
	names := []string{
		EntityCompany, EntityUsers, EntityRegisters, EntityCategories, EntityProducts,
		EntityClients, EntitySuppliers, EntitySales, EntitySaleLines, EntityPurchases,
		EntityPurchaseLine, EntityExpenses, EntityPendingSales,
	}
	sort.Strings(names)
	return names
}

// CreateSale inserta la cabecera y sus líneas con el código de la venta.
// Estado por defecto: completada. El código es obligatorio y único entre ventas.
func (s *Store) CreateSale(sale entity.Sale) (*entity.Sale, error) {
	s.Sales.mu.Lock()
	defer s.Sales.mu.Unlock()
	s.SaleLines.mu.Lock()
	defer s.SaleLines.mu.Unlock()

	if err := s.checkSaleCodeLocked(sale.Code, 0); err != nil {
		return nil, err
	}
	lines := sale.Lines
	sale.Lines = nil
	if sale.Status == "" {
		sale.Status = entity.SaleStatusCompleted
	}
	created := s.Sales.insertLocked(sale)
	created.Lines = s.insertSaleLinesLocked(lines, created.Code, created.CompanyID)
	return created, nil
}

// UpdateSale aplica el patch; si cambia el código lo propaga a sus líneas.
func (s *Store) UpdateSale(id int, patch entity.SalePatch) (*entity.Sale, error) {
	s.Sales.mu.Lock()
	defer s.Sales.mu.Unlock()
	s.SaleLines.mu.Lock()
	defer s.SaleLines.mu.Unlock()

	before, ok := s.Sales.getLocked(id)
	if !ok {
		return nil, domain.NotFound(EntitySales, id)
	}
	next := before.Clone()
	patch.Apply(&next)
	if next.Code != before.Code {
		if err := s.checkSaleCodeLocked(next.Code, id); err != nil {
			return nil, err
		}
	}
	updated, _ := s.Sales.updateLocked(id, func(v *entity.Sale) { patch.Apply(v) })
	if updated.Code != before.Code {
		s.SaleLines.updateWhereLocked(
			func(l *entity.SaleLine) bool { return l.SaleCode == before.Code },
			func(l *entity.SaleLine) { l.SaleCode = updated.Code },
		)
	}
	updated.Lines = s.saleLinesLocked(updated.Code)
	return updated, nil
}

// CreatePurchase inserta la cabecera y sus líneas con el código de la compra.
// El código es obligatorio y único entre compras.
func (s *Store) CreatePurchase(p entity.Purchase) (*entity.Purchase, error) {
	s.Purchases.mu.Lock()
	defer s.Purchases.mu.Unlock()
	s.PurchaseLines.mu.Lock()
	defer s.PurchaseLines.mu.Unlock()

	if err := s.checkPurchaseCodeLocked(p.Code, 0); err != nil {
		return nil, err
	}
	lines := p.Lines
	p.Lines = nil
	created := s.Purchases.insertLocked(p)
	for _, l := range lines {
		l.PurchaseCode = created.Code
		if l.CompanyID == 0 {
			l.CompanyID = created.CompanyID
		}
		created.Lines = append(created.Lines, *s.PurchaseLines.insertLocked(l))
	}
	return created, nil
}

// UpdatePurchase aplica el patch; si cambia el código lo propaga a sus líneas.
func (s *Store) UpdatePurchase(id int, patch entity.PurchasePatch) (*entity.Purchase, error) {
	s.Purchases.mu.Lock()
	defer s.Purchases.mu.Unlock()
	s.PurchaseLines.mu.Lock()
	defer s.PurchaseLines.mu.Unlock()

	before, ok := s.Purchases.getLocked(id)
	if !ok {
		return nil, domain.NotFound(EntityPurchases, id)
	}
	next := before.Clone()
	patch.Apply(&next)
	if next.Code != before.Code {
		if err := s.checkPurchaseCodeLocked(next.Code, id); err != nil {
			return nil, err
		}
	}
	updated, _ := s.Purchases.updateLocked(id, func(v *entity.Purchase) { patch.Apply(v) })
	if updated.Code != before.Code {
		s.PurchaseLines.updateWhereLocked(
			func(l *entity.PurchaseLine) bool { return l.PurchaseCode == before.Code },
			func(l *entity.PurchaseLine) { l.PurchaseCode = updated.Code },
		)
	}
	for i := range s.PurchaseLines.items {
		if s.PurchaseLines.items[i].PurchaseCode == updated.Code {
			updated.Lines = append(updated.Lines, clone(s.PurchaseLines.items[i]))
		}
	}
	return updated, nil
}

// checkSaleCodeLocked exige un código no vacío que ninguna otra venta use,
// incluidas las de borrado lógico. selfID se excluye de la comparación.
func (s *Store) checkSaleCodeLocked(code string, selfID int) error {
	if strings.TrimSpace(code) == "" {
		return domain.InvalidInput("la venta requiere código")
	}
	for i := range s.Sales.items {
		if v := &s.Sales.items[i]; v.Code == code && v.ID != selfID {
			return domain.InvalidInput(fmt.Sprintf("el código de venta %q ya existe", code))
		}
	}
	return nil
}

func (s *Store) checkPurchaseCodeLocked(code string, selfID int) error {
	if strings.TrimSpace(code) == "" {
		return domain.InvalidInput("la compra requiere código")
	}
	for i := range s.Purchases.items {
		if v := &s.Purchases.items[i]; v.Code == code && v.ID != selfID {
			return domain.InvalidInput(fmt.Sprintf("el código de compra %q ya existe", code))
		}
	}
	return nil
}

// Promote mueve la venta pendiente a ventas como completada, en un solo paso
// atómico respecto de las tres colecciones. Si payment no es nil se aplican
// pagado, cambio y caja. false si la venta pendiente no existe.
func (s *Store) Promote(pendingID int, payment *entity.PaymentInfo) (*entity.Sale, bool) {
	s.PendingSales.mu.Lock()
	defer s.PendingSales.mu.Unlock()
	s.Sales.mu.Lock()
	defer s.Sales.mu.Unlock()
	s.SaleLines.mu.Lock()
	defer s.SaleLines.mu.Unlock()

	pending, ok := s.PendingSales.removeLocked(pendingID)
	if !ok {
		return nil, false
	}
	sale := pending.Promote(s.Sales.nextIDLocked(), payment)
	lines := sale.Lines
	sale.Lines = nil
	sale.UpdatedAt = s.now()
	s.Sales.appendLocked(sale)

	out := sale.Clone()
	out.Lines = s.insertSaleLinesLocked(lines, sale.Code, sale.CompanyID)
	return &out, true
}

func (s *Store) insertSaleLinesLocked(lines []entity.SaleLine, code string, companyID int) []entity.SaleLine {
	out := make([]entity.SaleLine, 0, len(lines))
	for _, l := range lines {
		l.SaleCode = code
		if l.CompanyID == 0 {
			l.CompanyID = companyID
		}
		out = append(out, *s.SaleLines.insertLocked(l))
	}
	return out
}

func (s *Store) saleLinesLocked(code string) []entity.SaleLine {
	var out []entity.SaleLine
	for i := range s.SaleLines.items {
		if s.SaleLines.items[i].SaleCode == code {
			out = append(out, clone(s.SaleLines.items[i]))
		}
	}
	return out
}
