package api

import (
	"expense-tracker-api/src/db"
	"expense-tracker-api/src/handlers"
	"expense-tracker-api/src/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(store db.Store, allowedOrigin string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORSMiddleware(allowedOrigin))

	r.Get("/", handlers.Root())

	r.Route("/api", func(r chi.Router) {
		// Expenses
		r.Get("/expenses", handlers.GetAllExpenses(store))
		r.Post("/expenses", handlers.CreateExpense(store))
		r.Put("/expenses/{id}", handlers.UpdateExpense(store))
		r.Delete("/expenses/{id}", handlers.DeleteExpense(store))

		// Budget
		r.Get("/budget", handlers.GetCurrentBudget(store))
		r.Post("/budget", handlers.SetBudget(store))
	})

	return r
}
