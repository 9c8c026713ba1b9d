package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DocumentTypes DocumentTypeService
	Categories    ProductCategoryService
	Customers     CustomerService
	Products      ProductService
	Purchases     PurchaseService
	Lookup        LookupService
	Export        ExportService
	Loyalty       LoyaltyService
	Auth          AuthService
	JWTSecret     string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	reports := NewReportHandler(deps.Lookup, deps.Export, deps.Loyalty, log)
	auth := AuthMiddleware(deps.JWTSecret)

	// Reportes públicos
	app.Get("/api/customer", reports.LookupCustomers)
	app.Get("/api/customer/:document_number", reports.LookupCustomers)
	app.Get("/api/export-customer/:document_number/pdf", reports.ExportCustomerPDF)
	app.Get("/api/export-customer/:document_number", reports.ExportCustomer)
	app.Get("/api/loyalty-report", reports.LoyaltyReport)

	// Misma generación, con sesión
	app.Get("/reports/loyalty", auth, reports.LoyaltyReport)

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.Auth, log)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", auth)
	protected.Post("/users", RequireRole(entity.RoleAdmin), authHandler.CreateUser)

	docTypes := protected.Group("/document-types")
	docTypeHandler := NewDocumentTypeHandler(deps.DocumentTypes, log)
	docTypes.Get("/", docTypeHandler.List)
	docTypes.Post("/", docTypeHandler.Create)
	docTypes.Get("/:id", docTypeHandler.GetByID)
	docTypes.Put("/:id", docTypeHandler.Update)
	docTypes.Delete("/:id", RequireRole(entity.RoleAdmin), docTypeHandler.Delete)

	categories := protected.Group("/product-categories")
	categoryHandler := NewProductCategoryHandler(deps.Categories, log)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.Customers, log)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", RequireRole(entity.RoleAdmin), customerHandler.Delete)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Products, log)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.Purchases, log)
	purchases.Get("/", purchaseHandler.List)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Put("/:id", purchaseHandler.Update)
	purchases.Delete("/:id", RequireRole(entity.RoleAdmin), purchaseHandler.Delete)

	// Panel administrativo
	admin := app.Group("/admin/customers", auth)
	adminHandler := NewAdminHandler(deps.Customers, deps.Loyalty, log)
	admin.Get("/", adminHandler.ListCustomers)
	admin.Get("/loyalty-report", adminHandler.LoyaltyReport)
}
