package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/superventas/pos-api/internal/application/auth"
	"github.com/superventas/pos-api/internal/application/usecase"
	"github.com/superventas/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	DemoUC         *usecase.DemoUseCase
	CompanyUC      *usecase.CompanyUseCase
	UserUC         *usecase.UserUseCase
	RegisterUC     *usecase.RegisterUseCase
	CategoryUC     *usecase.CategoryUseCase
	ProductUC      *usecase.ProductUseCase
	ClientUC       *usecase.ClientUseCase
	SupplierUC     *usecase.SupplierUseCase
	SaleUC         *usecase.SaleUseCase
	SaleLineUC     *usecase.SaleLineUseCase
	PurchaseUC     *usecase.PurchaseUseCase
	PurchaseLineUC *usecase.PurchaseLineUseCase
	ExpenseUC      *usecase.ExpenseUseCase
	PendingSaleUC  *usecase.PendingSaleUseCase
	ReceiptUC      *usecase.ReceiptUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	managers := RequireRole(entity.RoleOwner, entity.RoleAdmin)

	// Auth y estado demo (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	demoHandler := NewDemoHandler(deps.DemoUC)
	api.Get("/demo/status", demoHandler.Status)
	api.Post("/demo/reset", AuthMiddleware(deps.JWTSecret), managers, demoHandler.Reset)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	companies := protected.Group("/empresas")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/owner/:id", companyHandler.ByOwner)
	companies.Get("/empleado/:id", companyHandler.ByEmployee)
	NewCRUDHandler[entity.Company, entity.CompanyPatch](deps.CompanyUC).Mount(companies, RequireRole(entity.RoleOwner))

	NewCRUDHandler[entity.User, entity.UserPatch](deps.UserUC).Mount(protected.Group("/usuarios"), managers)
	NewCRUDHandler[entity.Register, entity.RegisterPatch](deps.RegisterUC).Mount(protected.Group("/cajas"), managers)
	NewCRUDHandler[entity.Category, entity.CategoryPatch](deps.CategoryUC).Mount(protected.Group("/categorias"))
	NewCRUDHandler[entity.Product, entity.ProductPatch](deps.ProductUC).Mount(protected.Group("/productos"))
	NewCRUDHandler[entity.Client, entity.ClientPatch](deps.ClientUC).Mount(protected.Group("/clientes"))
	NewCRUDHandler[entity.Supplier, entity.SupplierPatch](deps.SupplierUC).Mount(protected.Group("/proveedores"))
	NewCRUDHandler[entity.Expense, entity.ExpensePatch](deps.ExpenseUC).Mount(protected.Group("/gastos"))

	// Ventas: rutas específicas antes de /:id
	saleHandler := NewSaleHandler(deps.SaleUC, deps.SaleLineUC, deps.ReceiptUC)
	sales := protected.Group("/ventas")
	sales.Get("/relations", saleHandler.ListRelations)
	sales.Get("/codigo/:codigo", saleHandler.GetByCode)
	sales.Get("/producto/:productoId", saleHandler.ListByProduct)
	sales.Get("/:id/comprobante", saleHandler.Receipt)
	NewCRUDHandler[entity.Sale, entity.SalePatch](deps.SaleUC).Mount(sales)

	saleLines := protected.Group("/venta-detalles")
	saleLines.Get("/venta/:ventaId", saleHandler.LinesBySale)
	saleLines.Get("/codigo/:codigo", saleHandler.LinesByCode)
	NewCRUDHandler[entity.SaleLine, entity.SaleLinePatch](deps.SaleLineUC).Mount(saleLines)

	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.PurchaseLineUC)
	purchases := protected.Group("/compras")
	purchases.Get("/codigo/:codigo", purchaseHandler.GetByCode)
	NewCRUDHandler[entity.Purchase, entity.PurchasePatch](deps.PurchaseUC).Mount(purchases, managers)

	purchaseLines := protected.Group("/compra-detalles")
	purchaseLines.Get("/compra/:codigo", purchaseHandler.LinesByCode)
	NewCRUDHandler[entity.PurchaseLine, entity.PurchaseLinePatch](deps.PurchaseLineUC).Mount(purchaseLines, managers)

	pendingHandler := NewPendingSaleHandler(deps.PendingSaleUC)
	pending := protected.Group("/ventas-pendientes")
	pending.Post("/:id/completar", pendingHandler.Complete)
	pending.Post("/:id/convertir", pendingHandler.Convert)
	pending.Patch("/:id/finalizar", pendingHandler.UpdateAndComplete)
	NewCRUDHandler[entity.PendingSale, entity.PendingSalePatch](deps.PendingSaleUC).Mount(pending)
}
