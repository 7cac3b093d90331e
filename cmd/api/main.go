package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/superventas/pos-api/docs"
	"github.com/superventas/pos-api/internal/application/auth"
	"github.com/superventas/pos-api/internal/application/usecase"
	"github.com/superventas/pos-api/internal/infrastructure/api"
	"github.com/superventas/pos-api/internal/infrastructure/demo"
	infrapdf "github.com/superventas/pos-api/internal/infrastructure/pdf"
	httpRouter "github.com/superventas/pos-api/internal/interfaces/http"
	"github.com/superventas/pos-api/pkg/config"
	"github.com/superventas/pos-api/pkg/logger"
	"github.com/superventas/pos-api/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("demo", cfg.Demo.Enabled).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET no configurado")
	}

	m := metrics.New("superventas_pos")

	store, err := demo.NewStore(demo.WithSeed(cfg.Demo.Seed), demo.WithPassword(cfg.Demo.Password))
	if err != nil {
		log.Fatal().Err(err).Msg("generar almacén demo")
	}
	log.Info().Interface("counts", store.Counts()).Msg("almacén demo cargado")

	client := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Token:   cfg.API.Token,
		Timeout: cfg.API.Timeout,
	})
	mode := config.NewEnvModeSwitch()
	deps := usecase.Deps{Mode: mode, Log: log, Metrics: m}

	userUC := usecase.NewUserUseCase(demo.NewUserRepository(store), api.NewUserRepository(client), deps)
	companyUC := usecase.NewCompanyUseCase(demo.NewCompanyRepository(store), api.NewCompanyRepository(client), deps)
	registerUC := usecase.NewRegisterUseCase(demo.NewRegisterRepository(store), api.NewRegisterRepository(client), deps)
	categoryUC := usecase.NewCategoryUseCase(demo.NewCategoryRepository(store), api.NewCategoryRepository(client), deps)
	productUC := usecase.NewProductUseCase(demo.NewProductRepository(store), api.NewProductRepository(client), deps)
	clientUC := usecase.NewClientUseCase(demo.NewClientRepository(store), api.NewClientRepository(client), deps)
	supplierUC := usecase.NewSupplierUseCase(demo.NewSupplierRepository(store), api.NewSupplierRepository(client), deps)
	saleUC := usecase.NewSaleUseCase(demo.NewSaleRepository(store), api.NewSaleRepository(client), deps)
	saleLineUC := usecase.NewSaleLineUseCase(demo.NewSaleLineRepository(store), api.NewSaleLineRepository(client), deps)
	purchaseUC := usecase.NewPurchaseUseCase(demo.NewPurchaseRepository(store), api.NewPurchaseRepository(client), deps)
	purchaseLineUC := usecase.NewPurchaseLineUseCase(demo.NewPurchaseLineRepository(store), api.NewPurchaseLineRepository(client), deps)
	expenseUC := usecase.NewExpenseUseCase(demo.NewExpenseRepository(store), api.NewExpenseRepository(client), deps)
	pendingSaleUC := usecase.NewPendingSaleUseCase(demo.NewPendingSaleRepository(store), api.NewPendingSaleRepository(client), deps)
	demoUC := usecase.NewDemoUseCase(store, deps)

	// Comprobante PDF de venta
	receiptUC := usecase.NewReceiptUseCase(saleUC, companyUC, clientUC, userUC, infrapdf.NewReceiptGenerator())
	authUC := auth.NewAuthUseCase(userUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SuperVentas POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		current := "live"
		if mode.IsDemoActive() {
			current = "demo"
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "mode": current})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		DemoUC:         demoUC,
		CompanyUC:      companyUC,
		UserUC:         userUC,
		RegisterUC:     registerUC,
		CategoryUC:     categoryUC,
		ProductUC:      productUC,
		ClientUC:       clientUC,
		SupplierUC:     supplierUC,
		SaleUC:         saleUC,
		SaleLineUC:     saleLineUC,
		PurchaseUC:     purchaseUC,
		PurchaseLineUC: purchaseLineUC,
		ExpenseUC:      expenseUC,
		PendingSaleUC:  pendingSaleUC,
		ReceiptUC:      receiptUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
