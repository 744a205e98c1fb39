package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/carniceria-pos/internal/application/auth"
	"github.com/jhoicas/carniceria-pos/internal/application/usecase"
	"github.com/jhoicas/carniceria-pos/pkg/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	CatalogUC *usecase.CatalogUseCase
	SaleUC    *usecase.SaleUseCase
	ReportUC  *usecase.ReportUseCase
	Session   *session.Store
}

// Router registra las rutas de la fachada del terminal.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Sesión (login público; estado y logout también, para que la UI pueda
	// preguntar antes de tener token)
	sessionHandler := NewSessionHandler(deps.AuthUC)
	ses := api.Group("/sesion")
	ses.Post("/login", sessionHandler.Login)
	ses.Get("/", sessionHandler.Status)
	ses.Delete("/", sessionHandler.Logout)

	// Rutas protegidas (requieren sesión activa contra el backend)
	protected := api.Group("/", RequireSession(deps.Session))

	// Catálogo (pantalla de administración)
	products := protected.Group("/productos")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	products.Get("/", catalogHandler.List)
	products.Post("/", catalogHandler.Create)
	products.Put("/:id", catalogHandler.Update)
	products.Delete("/:id", catalogHandler.Delete)

	// Venta en curso
	sales := protected.Group("/venta")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/sesion", saleHandler.StartSession)
	sales.Get("/productos", saleHandler.Products)
	sales.Post("/linea", saleHandler.BeginLine)
	sales.Get("/linea", saleHandler.LineState)
	sales.Post("/linea/confirmar", saleHandler.ConfirmLine)
	sales.Delete("/linea", saleHandler.CancelLine)
	sales.Put("/linea/:campo", saleHandler.EditField)
	sales.Get("/", saleHandler.Cart)
	sales.Delete("/items/:productoID", saleHandler.RemoveItem)
	sales.Post("/registrar", saleHandler.RegisterSale)
	sales.Get("/ticket", saleHandler.Ticket)

	// Reportes
	reports := protected.Group("/reportes")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/ventas", reportHandler.Sales)
	reports.Get("/mas-vendidos", reportHandler.TopProducts)
	reports.Get("/inventario", reportHandler.Inventory)
}
