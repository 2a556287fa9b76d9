package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quotecraft/quotecraft/internal/platform/httpx"
)

// Handler serves the read-only catalog API.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/materials", h.List)
	r.Get("/materials/{id}", h.Show)
	r.Get("/categories", h.Categories)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.service.Search(r.Context(),
		r.URL.Query().Get("q"),
		r.URL.Query().Get("category"))
	httpx.JSON(w, http.StatusOK, entries)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	entry, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, entry)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, h.service.Categories(r.Context()))
}
