package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"watchshelf/internal/catalog"
	"watchshelf/internal/session"
)

// patcher is a partial update applicable to an item of kind T.
type patcher[T any] interface {
	Apply(*T)
}

// resource exposes one catalog collection over HTTP. The session manager is
// consulted only to stamp the owner on add; reads and writes are not scoped
// to the active user.
type resource[T any, P patcher[T]] struct {
	name     string
	col      *catalog.Collection[T]
	fields   func(T) []string
	sessions *session.Manager
	log      *slog.Logger
	validate *validator.Validate
}

func newResource[T any, P patcher[T]](name string, col *catalog.Collection[T], fields func(T) []string,
	sessions *session.Manager, log *slog.Logger) *resource[T, P] {
	return &resource[T, P]{
		name:     name,
		col:      col,
		fields:   fields,
		sessions: sessions,
		log:      log,
		validate: validator.New(),
	}
}

// list applies the search filter and fixed-size pagination the original list
// views performed client-side: ?q= substring, ?page= 1-based.
func (h *resource[T, P]) list(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	filtered := catalog.Filter(h.col.List(), query, h.fields)
	items := catalog.Paginate(filtered, page)
	if items == nil {
		items = []T{}
	}

	render.JSON(w, r, OKWith(map[string]any{
		"items":      items,
		"page":       page,
		"totalPages": catalog.TotalPages(len(filtered)),
		"totalItems": len(filtered),
	}))
}

func (h *resource[T, P]) create(w http.ResponseWriter, r *http.Request) {
	var item T
	if err := render.DecodeJSON(r.Body, &item); err != nil {
		h.log.Error("failed to decode request body", "collection", h.name, "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error("failed to decode request"))
		return
	}
	if err := h.validate.Struct(item); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ValidationError(validateErrs))
			return
		}
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error("invalid request"))
		return
	}

	ownerID := ""
	if current := h.sessions.Current(); current != nil {
		ownerID = current.ID
	}

	added, err := h.col.Add(r.Context(), item, ownerID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	catalogWritesTotal.WithLabelValues(h.name, "add").Inc()
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, OKWith(added))
}

func (h *resource[T, P]) update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch P
	if err := render.DecodeJSON(r.Body, &patch); err != nil {
		h.log.Error("failed to decode request body", "collection", h.name, "error", err)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Error("failed to decode request"))
		return
	}

	// Validate the merged item so a partial update cannot push a field
	// outside its allowed range.
	updated, err := h.col.Update(r.Context(), id, func(item *T) error {
		patch.Apply(item)
		return h.validate.Struct(*item)
	})
	if err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, ValidationError(validateErrs))
			return
		}
		renderError(w, r, err)
		return
	}

	catalogWritesTotal.WithLabelValues(h.name, "update").Inc()
	render.JSON(w, r, OKWith(updated))
}

func (h *resource[T, P]) remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.col.Delete(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}

	catalogWritesTotal.WithLabelValues(h.name, "delete").Inc()
	render.JSON(w, r, OK())
}
