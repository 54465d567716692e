package cms

import (
	"errors"
	"net/http"

	"github.com/dalemusser/stratatour/internal/app/system/jsonutil"
	"github.com/dalemusser/stratatour/internal/app/system/normalize"
	"github.com/dalemusser/stratatour/internal/app/system/timeouts"
	"github.com/dalemusser/stratatour/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListCulturalItems handles GET /cultural-items?category=.
func (h *Handler) ListCulturalItems(w http.ResponseWriter, r *http.Request) {
	category := normalize.Category(r.URL.Query().Get("category"))
	if category != "" && !models.IsValidCultureCategory(category) {
		jsonutil.BadRequest(w, "unknown culture category")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "list cultural items")
	defer cancel()

	items, err := h.culture.List(ctx, category)
	if err != nil {
		h.internal(w, r, "failed to list cultural items", err)
		return
	}
	jsonutil.OK(w, items)
}

// GetCulturalItem handles GET /cultural-items/{id}.
func (h *Handler) GetCulturalItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "get cultural item")
	defer cancel()

	item, err := h.culture.GetByID(ctx, chi.URLParam(r, "id"))
	if errors.Is(err, mongo.ErrNoDocuments) {
		jsonutil.NotFound(w, "cultural item not found")
		return
	}
	if err != nil {
		h.internal(w, r, "failed to load cultural item", err)
		return
	}
	jsonutil.OK(w, item)
}

// DeleteCulturalItem handles DELETE /cultural-items/{id}. The published
// content store is not touched; the item disappears from the public site
// with the next seed.
func (h *Handler) DeleteCulturalItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "delete cultural item")
	defer cancel()

	err := h.culture.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		jsonutil.NotFound(w, "cultural item not found")
		return
	}
	if err != nil {
		h.internal(w, r, "failed to delete cultural item", err)
		return
	}
	h.auditLog.CulturalItemDeleted(ctx, r, id)
	jsonutil.NoContent(w)
}
