package quotation

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Snapshot)
	r.Delete("/", h.Reset)
	r.Put("/client", h.SetClientData)
	r.Post("/items", h.AddItem)
	r.Patch("/items/{id}", h.UpdateItem)
	r.Delete("/items/{id}", h.RemoveItem)
	r.Put("/items/{id}/material", h.SelectMaterial)
	r.Put("/settings/tax", h.SetTaxRate)
	r.Put("/settings/discount", h.SetDiscount)
}
