package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"area-match-service/internal/app"
	"area-match-service/internal/domain"
)

// CatalogHandler serves the content catalog and accepts contact leads.
type CatalogHandler struct {
	catalogs app.CatalogRepository
	leads    *app.LeadService
	logger   *zap.Logger
}

func NewCatalogHandler(catalogs app.CatalogRepository, leads *app.LeadService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalogs: catalogs, leads: leads, logger: logger}
}

// Register wires the handler's routes onto mux.
func (h *CatalogHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/areas", h.listAreas)
	mux.HandleFunc("GET /api/areas/{slug}", h.getArea)
	mux.HandleFunc("GET /api/genres", h.listGenres)
	mux.HandleFunc("GET /api/genres/{slug}/areas", h.listAreasByGenre)
	mux.HandleFunc("GET /api/properties", h.listProperties)
	mux.HandleFunc("GET /api/faqs", h.listFAQs)
	mux.HandleFunc("GET /api/faqs/categories", h.listFAQCategories)
	mux.HandleFunc("GET /api/quiz/questions", h.listQuestions)
	mux.HandleFunc("POST /api/contact", h.submitLead)
}

func (h *CatalogHandler) listAreas(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.GetCatalog(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, catalog.Areas)
}

func (h *CatalogHandler) getArea(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.GetCatalog(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	area, ok := catalog.AreaBySlug(r.PathValue("slug"))
	if !ok {
		h.writeError(w, http.StatusNotFound, domain.ErrAreaNotFound.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		domain.Area
		Properties []domain.Property `json:"properties,omitempty"`
	}{Area: area, Properties: catalog.PropertiesByArea(area.Slug)})
}

func (h *CatalogHandler) listGenres(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.GetCatalog(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, catalog.Genres)
}

func (h *CatalogHandler) listAreasByGenre(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.GetCatalog(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	slug := r.PathValue("slug")
	if _, ok := catalog.GenreBySlug(slug); !ok {
		h.writeError(w, http.StatusNotFound, domain.ErrGenreNotFound.Error())
		return
	}
	areas := catalog.AreasByGenre(slug)
	if areas == nil {
		areas = []domain.Area{}
	}
	h.writeJSON(w, http.StatusOK, areas)
}

func (h *CatalogHandler) listProperties(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.GetCatalog(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}

	query := r.URL.Query()
	properties := catalog.Properties
	switch {
	case query.Get("area") != "":
		properties = catalog.PropertiesByArea(query.Get("area"))
	case query.Get("featured") != "":
		limit, err := strconv.Atoi(query.Get("featured"))
		if err != nil || limit < 0 {
			h.writeError(w, http.StatusBadRequest, "featured must be a non-negative integer")
			return
		}
		properties = catalog.FeaturedProperties(limit)
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	h.writeJSON(w, http.StatusOK, properties)
}

func (h *CatalogHandler) listFAQs(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.GetCatalog(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	faqs := catalog.FAQs
	if category := r.URL.Query().Get("category"); category != "" {
		faqs = catalog.FAQsByCategory(category)
	}
	if faqs == nil {
		faqs = []domain.FAQ{}
	}
	h.writeJSON(w, http.StatusOK, faqs)
}

func (h *CatalogHandler) listFAQCategories(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.GetCatalog(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	categories := catalog.FAQCategories()
	if categories == nil {
		categories = []string{}
	}
	h.writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) listQuestions(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogs.GetCatalog(r.Context())
	if err != nil {
		h.serverError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, struct {
		Questions []domain.QuizQuestion `json:"questions"`
		MaxScore  int                   `json:"maxScore"`
	}{Questions: catalog.Questions, MaxScore: app.MaxScore(catalog.Questions)})
}

func (h *CatalogHandler) submitLead(w http.ResponseWriter, r *http.Request) {
	var lead domain.Lead
	if err := json.NewDecoder(r.Body).Decode(&lead); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid lead payload")
		return
	}

	saved, err := h.leads.Submit(r.Context(), lead)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.serverError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, saved)
}

func (h *CatalogHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *CatalogHandler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, errorPayload{Message: message})
}

func (h *CatalogHandler) serverError(w http.ResponseWriter, err error) {
	h.logger.Error("request failed", zap.Error(err))
	h.writeError(w, http.StatusInternalServerError, "internal error")
}
