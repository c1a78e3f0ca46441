package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/erp/docs" //nolint:revive,nolintlint
	"github.com/samandr77/microservices/erp/pkg/metrics"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.Metrics)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
			r.Method(http.MethodGet, "/metrics", metrics.Handler())
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/calendar/events", h.CalendarEvents)

			r.Route("/assistant", func(r chi.Router) {
				r.Get("/status", h.AssistantStatus)
				r.Post("/chat", h.Chat)
				r.Post("/chat/stream", h.ChatStream)
				r.Post("/sql", h.GenerateSQL)
				r.Post("/query", h.RunQuery)
				r.Post("/analyze", h.Analyze)
				r.Post("/map-columns", h.MapColumns)
				r.Post("/report", h.Report)
				r.Post("/dispatch", h.Dispatch)
			})

			r.Get("/tasks", h.Tasks)
			r.Post("/tasks", h.CreateTask)
			r.Put("/tasks/{id}/status", h.UpdateTaskStatus)

			r.Route("/payroll", func(r chi.Router) {
				r.Post("/calculate", h.CalculateSalary)
				r.Post("/gross-from-net", h.GrossFromNet)
				r.Post("/records", h.SaveSalaryRecord)
				r.Get("/records", h.SalaryRecords)
			})

			r.Route("/einvoices", func(r chi.Router) {
				r.Post("/parse", h.ParseInvoice)
				r.Get("/incoming", h.IncomingInvoices)
				r.Post("/incoming/sync", h.SyncIncoming)
				r.Get("/{id}/details", h.InvoiceDetails)
				r.Get("/{id}/pdf", h.InvoicePDF)
			})

			r.Route("/sales-invoices", func(r chi.Router) {
				r.Post("/", h.CreateSalesInvoice)
				r.Get("/next-number", h.NextInvoiceNumber)
				r.Post("/{id}/send", h.SendSalesInvoice)
				r.Get("/{id}/status", h.SalesInvoiceStatus)
			})

			r.Get("/reports/{id}/download", h.DownloadReport)
		})
	})

	return router
}
