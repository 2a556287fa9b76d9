package quotation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/quotecraft/quotecraft/internal/platform/httpx"
)

// MaterialLookup resolves a catalog entry by id. The catalog package
// implements it; the store never talks to the catalog directly.
type MaterialLookup interface {
	Material(ctx context.Context, id string) (Material, error)
}

// Handler exposes the store to UI collaborators as a JSON API.
type Handler struct {
	logger    *slog.Logger
	store     *Store
	catalog   MaterialLookup
	validator *validator.Validate
}

func NewHandler(logger *slog.Logger, store *Store, catalog MaterialLookup) *Handler {
	return &Handler{
		logger:    logger,
		store:     store,
		catalog:   catalog,
		validator: validator.New(),
	}
}

// Snapshot serves the current quotation state with freshly derived
// totals.
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Snapshot{
		ClientData: h.store.ClientData(),
		LineItems:  h.store.LineItems(),
		Settings:   h.store.Settings(),
		Totals:     h.store.Totals(),
	})
}

func (h *Handler) SetClientData(w http.ResponseWriter, r *http.Request) {
	var req SetClientDataRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	h.store.SetClientData(r.Context(), ClientData{
		ClientName:         req.ClientName,
		ClientEmail:        req.ClientEmail,
		ClientPhone:        req.ClientPhone,
		ProjectName:        req.ProjectName,
		ProjectAddress:     req.ProjectAddress,
		ProjectDescription: req.ProjectDescription,
		ValidUntil:         req.ValidUntil,
		PaymentTerms:       req.PaymentTerms,
	})
	w.WriteHeader(http.StatusNoContent)
}

// AddItem appends a fresh default line item and returns it. The id is
// assigned here; the store treats ids as an opaque caller contract.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	item := NewLineItem(uuid.NewString())
	h.store.AddLineItem(r.Context(), item)
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	err := h.store.UpdateLineItem(r.Context(), id, ItemField(req.Field), req.Value)
	if err != nil {
		if errors.Is(err, ErrUnknownField) || errors.Is(err, ErrFieldType) {
			httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
			return
		}
		h.logger.Error("update line item failed", slog.String("id", id), slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	// Unknown ids fall through here on purpose: stale UI actions are a
	// no-op, not a failure.
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveLineItem(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// SelectMaterial resolves a catalog entry and applies it to the item in
// one transition.
func (h *Handler) SelectMaterial(w http.ResponseWriter, r *http.Request) {
	var req SelectMaterialRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	mat, err := h.catalog.Material(r.Context(), req.MaterialID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	h.store.SelectMaterial(r.Context(), chi.URLParam(r, "id"), mat)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetTaxRate(w http.ResponseWriter, r *http.Request) {
	rate, ok := h.decodeRate(w, r)
	if !ok {
		return
	}
	h.store.SetTaxRate(r.Context(), rate)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SetDiscount(w http.ResponseWriter, r *http.Request) {
	rate, ok := h.decodeRate(w, r)
	if !ok {
		return
	}
	h.store.SetDiscount(r.Context(), rate)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.store.ResetQuotation(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeRate(w http.ResponseWriter, r *http.Request) (float64, bool) {
	var req SetRateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return 0, false
	}
	if err := h.validator.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return 0, false
	}
	return req.Rate, true
}
