package cms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/stratatour/internal/app/system/auth"
	"github.com/dalemusser/stratatour/internal/app/system/htmlsanitize"
	"github.com/dalemusser/stratatour/internal/app/system/jsonutil"
	"github.com/dalemusser/stratatour/internal/app/system/normalize"
	"github.com/dalemusser/stratatour/internal/app/system/shape"
	"github.com/dalemusser/stratatour/internal/app/system/timeouts"
	"github.com/dalemusser/stratatour/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// scopeSections lists the sections editors may replace in each scope.
var scopeSections = map[string][]string{
	models.ScopeRegion: {models.SectionDefiningThemes},
	models.ScopeStates: {
		models.SectionSharedStory,
		models.SectionCulturalThreads,
		models.SectionCollageImages,
		models.SectionDefiningThemes,
	},
	models.ScopeDistricts: {models.SectionDefiningThemes},
}

// SectionAllowed reports whether section can be edited in scope.
func SectionAllowed(scope, section string) bool {
	for _, s := range scopeSections[scope] {
		if s == section {
			return true
		}
	}
	return false
}

// entityExists reports whether the repository has the entity a CMS path
// names. The region scope has the single slug models.RegionSlug.
func (h *Handler) entityExists(ctx context.Context, scope, slug string) (bool, error) {
	switch scope {
	case models.ScopeRegion:
		return slug == models.RegionSlug, nil
	case models.ScopeStates:
		st, err := h.repo.GetStateBySlug(ctx, slug)
		return st != nil, err
	case models.ScopeDistricts:
		d, err := h.repo.GetDistrictBySlug(ctx, slug)
		return d != nil, err
	}
	return false, nil
}

// GetContent handles GET /{scope}/{slug}: the saved editor content of one
// entity. An entity nobody has edited yet returns an empty document.
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	scope := normalize.Scope(chi.URLParam(r, "scope"))
	slug := chi.URLParam(r, "slug")
	if !models.IsValidScope(scope) {
		jsonutil.BadRequest(w, "unknown scope")
		return
	}

	ok, err := h.entityExists(r.Context(), scope, slug)
	if err != nil {
		h.internal(w, r, "content unavailable", err)
		return
	}
	if !ok {
		jsonutil.NotFound(w, "entity not found")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "get cms content")
	defer cancel()

	ec, err := h.sections.Get(ctx, scope, slug)
	if errors.Is(err, mongo.ErrNoDocuments) {
		jsonutil.OK(w, models.EntityContent{Scope: scope, Slug: slug})
		return
	}
	if err != nil {
		h.internal(w, r, "failed to load editor content", err)
		return
	}
	jsonutil.OK(w, ec)
}

// SaveSection handles PUT /{scope}/{slug}/{section}. The body is the full
// replacement value of the section. Text is sanitized, the value is
// validated, and the stored section is replaced as a whole.
func (h *Handler) SaveSection(w http.ResponseWriter, r *http.Request) {
	scope := normalize.Scope(chi.URLParam(r, "scope"))
	slug := chi.URLParam(r, "slug")
	section := chi.URLParam(r, "section")

	if !models.IsValidScope(scope) {
		jsonutil.BadRequest(w, "unknown scope")
		return
	}
	if !SectionAllowed(scope, section) {
		h.auditLog.SectionRejected(r.Context(), r, scope, slug, section, "section not editable")
		jsonutil.NotFound(w, fmt.Sprintf("section %q is not editable for %s", section, scope))
		return
	}

	ok, err := h.entityExists(r.Context(), scope, slug)
	if err != nil {
		h.internal(w, r, "content unavailable", err)
		return
	}
	if !ok {
		h.auditLog.SectionRejected(r.Context(), r, scope, slug, section, "entity not found")
		jsonutil.NotFound(w, "entity not found")
		return
	}

	value, err := decodeSection(w, r, section)
	if err != nil {
		h.auditLog.SectionRejected(r.Context(), r, scope, slug, section, "invalid body")
		jsonutil.BadRequest(w, err.Error())
		return
	}
	if fields := validateSection(value); len(fields) > 0 {
		h.auditLog.SectionRejected(r.Context(), r, scope, slug, section, "validation failed")
		jsonutil.ValidationError(w, fields)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "save cms section")
	defer cancel()

	if err := h.sections.SetSection(ctx, scope, slug, section, value, auth.Editor(r)); err != nil {
		h.internal(w, r, "failed to save section", err)
		return
	}
	h.auditLog.SectionSaved(ctx, r, scope, slug, section)

	ec, err := h.sections.Get(ctx, scope, slug)
	if err != nil {
		h.internal(w, r, "failed to load editor content", err)
		return
	}
	jsonutil.OK(w, ec)
}

// decodeSection reads the body for section and returns the sanitized value
// to store. List sections never decode to nil.
func decodeSection(w http.ResponseWriter, r *http.Request, section string) (any, error) {
	switch section {
	case models.SectionSharedStory:
		var s models.Story
		if err := jsonutil.Decode(w, r, &s); err != nil {
			return nil, err
		}
		return sanitizeStory(s), nil

	case models.SectionCulturalThreads:
		var ts []models.Thread
		if err := jsonutil.Decode(w, r, &ts); err != nil {
			return nil, err
		}
		out := make([]models.Thread, 0, len(ts))
		for _, t := range ts {
			out = append(out, sanitizeThread(t))
		}
		return out, nil

	case models.SectionCollageImages:
		var imgs []models.Image
		if err := jsonutil.Decode(w, r, &imgs); err != nil {
			return nil, err
		}
		out := make([]models.Image, 0, len(imgs))
		for _, img := range imgs {
			out = append(out, sanitizeImage(img))
		}
		return out, nil

	case models.SectionDefiningThemes:
		var ts []models.Theme
		if err := jsonutil.Decode(w, r, &ts); err != nil {
			return nil, err
		}
		out := make([]models.Theme, 0, len(ts))
		for _, t := range ts {
			out = append(out, sanitizeTheme(t))
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown section %q", section)
}

func sanitizeStory(s models.Story) models.Story {
	return models.Story{
		Title: htmlsanitize.PlainText(s.Title),
		Body:  htmlsanitize.RichText(s.Body),
	}
}

func sanitizeThread(t models.Thread) models.Thread {
	return models.Thread{
		Title:       htmlsanitize.PlainText(t.Title),
		Description: htmlsanitize.PlainText(t.Description),
		Image:       strings.TrimSpace(t.Image),
	}
}

func sanitizeImage(img models.Image) models.Image {
	return models.Image{
		URL:     strings.TrimSpace(img.URL),
		Alt:     htmlsanitize.PlainText(img.Alt),
		Caption: htmlsanitize.PlainText(img.Caption),
	}
}

func sanitizeTheme(t models.Theme) models.Theme {
	return models.Theme{
		Title:       htmlsanitize.PlainText(t.Title),
		Description: htmlsanitize.PlainText(t.Description),
		Icon:        htmlsanitize.PlainText(t.Icon),
	}
}

// validateSection checks a decoded section value and returns the failing
// fields keyed by JSON path, e.g. "[1].title": "required".
func validateSection(value any) map[string]string {
	fields := map[string]string{}
	switch v := value.(type) {
	case models.Story:
		if v.Title == "" && v.Body == "" {
			fields["title"] = "required"
		}
	case []models.Thread:
		for i := range v {
			addFieldErrors(fields, fmt.Sprintf("[%d].", i), shape.Struct(v[i]))
		}
	case []models.Image:
		for i := range v {
			addFieldErrors(fields, fmt.Sprintf("[%d].", i), shape.Struct(v[i]))
		}
	case []models.Theme:
		for i := range v {
			addFieldErrors(fields, fmt.Sprintf("[%d].", i), shape.Struct(v[i]))
		}
	}
	return fields
}

func addFieldErrors(fields map[string]string, prefix string, err error) {
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields[strings.TrimSuffix(prefix, ".")] = err.Error()
		return
	}
	for _, fe := range verrs {
		fields[prefix+strings.ToLower(fe.Field())] = fe.Tag()
	}
}
