package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemsvc/pkg/app"
	"github.com/ghuser/itemsvc/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemsvc/services/item/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/items", func(r chi.Router) {
		r.Post("/", handlers.NewPostItemHandler(svcs, a.Logger).Execute)
		r.Get("/", handlers.NewGetItemsHandler(svcs, a.Logger).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs, a.Logger).Execute)
		r.Put("/{id}", handlers.NewPutItemHandler(svcs, a.Logger).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs, a.Logger).Execute)
	})
}
