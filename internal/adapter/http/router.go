package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/YelzhanWeb/kiosk/internal/adapter/logger"
	"github.com/YelzhanWeb/kiosk/internal/adapter/printer"
	"github.com/YelzhanWeb/kiosk/internal/interfaces"
)

// Services are the application services exposed over HTTP.
type Services struct {
	Orders     interfaces.OrderService
	Catalog    interfaces.CatalogService
	Attendance interfaces.AttendanceService
	Settings   interfaces.SettingsService
	Reports    interfaces.ReportingService
	Printer    interfaces.ReceiptPrinter
	Receipt    printer.Layout
	Now        interfaces.Clock
}

func NewRouter(svc Services, lgr logger.Logger) http.Handler {
	if svc.Now == nil {
		svc.Now = time.Now
	}

	menu := NewMenuHandler(svc.Catalog, lgr)
	cart := NewCartHandler(svc.Orders, lgr)
	orders := NewOrderHandler(svc.Orders, svc.Printer, svc.Receipt, lgr)
	staff := NewStaffHandler(svc.Attendance, lgr)
	admin := NewAdminHandler(svc.Settings, svc.Reports, svc.Now, lgr)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RecoveryMiddleware(lgr))
	r.Use(LoggingMiddleware(lgr))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/menu", func(r chi.Router) {
		r.Get("/", menu.ListMenu)
		r.Get("/categories", menu.ListCategories)
		r.Post("/recommend", menu.Recommend)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cart.GetCart)
		r.Post("/items", cart.AddItem)
		r.Patch("/items/{cartID}", cart.UpdateQuantity)
		r.Delete("/items/{cartID}", cart.RemoveItem)
	})

	r.Post("/orders", orders.PlaceOrder)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", admin.Login)

		r.Group(func(r chi.Router) {
			r.Use(AdminMiddleware(svc.Settings, lgr))

			r.Put("/menu/{id}/image", menu.UpdateImage)

			r.Get("/orders", orders.ListOrders)
			r.Get("/orders/active", orders.ListActive)
			r.Patch("/orders/{id}/status", orders.UpdateStatus)
			r.Get("/orders/{id}/receipt", orders.Receipt)
			r.Post("/orders/{id}/print", orders.PrintReceipt)

			r.Get("/staff", staff.ListStaff)
			r.Post("/staff", staff.AddStaff)
			r.Put("/staff/{id}", staff.UpdateStaff)
			r.Delete("/staff/{id}", staff.RemoveStaff)
			r.Post("/staff/{id}/clock-in", staff.ClockIn)
			r.Post("/attendance/{logID}/clock-out", staff.ClockOut)
			r.Get("/attendance", staff.ListAttendance)

			r.Get("/dashboard", admin.Dashboard)
			r.Get("/reports/{period}", admin.ExportReport)
			r.Get("/settings", admin.GetSettings)
			r.Put("/settings", admin.UpdateSettings)
			r.Put("/pin", admin.ChangePIN)
		})
	})

	return r
}
