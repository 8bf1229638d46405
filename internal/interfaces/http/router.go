package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventario-bom/internal/application/analytics"
	"github.com/jhoicas/inventario-bom/internal/application/auth"
	"github.com/jhoicas/inventario-bom/internal/application/inventory"
	"github.com/jhoicas/inventario-bom/internal/application/production"
	"github.com/jhoicas/inventario-bom/internal/application/usecase"
	"github.com/jhoicas/inventario-bom/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SupplierUC    *usecase.SupplierUseCase
	ItemUC        *usecase.ItemUseCase
	BOMUC         *usecase.BOMUseCase
	TransactionUC *inventory.TransactionUseCase
	Planner       *production.Planner
	Orchestrator  *production.Orchestrator
	PlanPDF       production.PlanPDFGenerator
	DashboardUC   *appanalytics.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
	Logger        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token del operador)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), RequireRole(auth.RoleOperator))

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, log)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Post("/import", supplierHandler.Import)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, log)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Post("/import", itemHandler.Import)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	bom := protected.Group("/bom")
	bomHandler := NewBOMHandler(deps.BOMUC, deps.Planner, log)
	bom.Get("/", bomHandler.ListProducts)
	bom.Get("/:productId", bomHandler.Get)
	bom.Get("/:productId/available-materials", bomHandler.AvailableMaterials)
	bom.Post("/:productId/materials", bomHandler.AddMaterial)
	bom.Put("/:productId/materials/:materialId", bomHandler.UpdateMaterial)
	bom.Delete("/:productId/materials/:materialId", bomHandler.RemoveMaterial)
	bom.Post("/:productId/copy", bomHandler.Copy)

	transactions := protected.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.TransactionUC, log)
	transactions.Get("/", transactionHandler.List)
	transactions.Post("/", transactionHandler.Register)
	transactions.Post("/import", transactionHandler.Import)
	transactions.Delete("/:id", transactionHandler.Delete)

	prod := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.Planner, deps.Orchestrator, deps.PlanPDF, log)
	prod.Post("/plan", productionHandler.Plan)
	prod.Post("/plan.pdf", productionHandler.PlanPDF)
	prod.Post("/execute", productionHandler.Execute)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
