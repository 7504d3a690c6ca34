package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/cnk-ceneka/cnk/internal/i18n"
	"github.com/cnk-ceneka/cnk/internal/inquiry"
	"github.com/cnk-ceneka/cnk/internal/listing"
	"github.com/cnk-ceneka/cnk/internal/property"
)

type apiListResponse struct {
	*listing.Page
	Filter        property.Filter `json:"filter"`
	ActiveFilters int             `json:"activeFilters"`
}

type apiGalleryResponse struct {
	Images   []string `json:"images"`
	Fallback bool     `json:"fallback"`
	Message  string   `json:"message,omitempty"`
	RetryAt  string   `json:"retryAt,omitempty"`
}

type apiDictionaryResponse struct {
	Lang     i18n.Lang         `json:"lang"`
	Messages map[string]string `json:"messages"`
}

type apiInquiryRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	PropertyID *int64 `json:"propertyId"`
	Lang       string `json:"lang"`
}

type apiInquiryResponse struct {
	Reference string `json:"reference"`
	CreatedAt string `json:"createdAt"`
}

type apiErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// apiListProperties returns one page of listings with the filters applied
// to that page.
func (s *Server) apiListProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	size := s.opts.PageSize
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			apiError(w, r, "pageSize must be between 1 and 100", http.StatusBadRequest)
			return
		}
		size = n
	}

	page, err := s.deps.Listings.Fetch(r.Context(), parsePage(q.Get("page")), size)
	if err != nil {
		slog.Error("loading listings", "error", err)
		apiError(w, r, "catalog unavailable", http.StatusBadGateway)
		return
	}

	filter := property.ParseFilter(q)
	filtered := *page
	filtered.Properties = property.Apply(page.Properties, filter)

	apiJSON(w, r, apiListResponse{
		Page:          &filtered,
		Filter:        filter,
		ActiveFilters: filter.Active(),
	}, http.StatusOK)
}

// apiGetProperty returns a single property with its enums resolved.
func (s *Server) apiGetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parsePropertyID(chi.URLParam(r, "id"))
	if err != nil {
		apiError(w, r, "invalid property id", http.StatusBadRequest)
		return
	}

	prop, err := s.deps.Resolver.Resolve(r.Context(), id)
	if errors.Is(err, listing.ErrNotFound) {
		apiError(w, r, "property not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("resolving property", "id", id, "error", err)
		apiError(w, r, "catalog unavailable", http.StatusBadGateway)
		return
	}

	apiJSON(w, r, prop, http.StatusOK)
}

// apiGallery returns the carousel images. It always succeeds; fallback
// images carry a localized notice.
func (s *Server) apiGallery(w http.ResponseWriter, r *http.Request) {
	res := s.deps.Gallery.Fetch(r.Context())
	apiJSON(w, r, apiGalleryResponse{
		Images:   res.Images,
		Fallback: res.Fallback,
		Message:  res.Message(translator(r).T),
		RetryAt:  res.RetryAt,
	}, http.StatusOK)
}

// apiDictionary returns every UI string for the negotiated language.
func (s *Server) apiDictionary(w http.ResponseWriter, r *http.Request) {
	lang := translator(r).Lang()
	apiJSON(w, r, apiDictionaryResponse{Lang: lang, Messages: i18n.Dictionary(lang)}, http.StatusOK)
}

// apiCreateInquiry stores a contact request sent as JSON.
func (s *Server) apiCreateInquiry(w http.ResponseWriter, r *http.Request) {
	if s.deps.Inquiries == nil {
		apiError(w, r, "inquiries are disabled", http.StatusServiceUnavailable)
		return
	}

	var req apiInquiryRequest
	if err := render.DecodeJSON(http.MaxBytesReader(w, r.Body, 64<<10), &req); err != nil {
		apiError(w, r, "invalid JSON", http.StatusBadRequest)
		return
	}

	lang := i18n.Lang(req.Lang)
	if _, ok := i18n.ParseLang(req.Lang); !ok {
		lang = translator(r).Lang()
	}

	inq, err := s.deps.Inquiries.Submit(inquiry.Input{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		PropertyID: req.PropertyID,
		Lang:       lang,
		RemoteIP:   remoteIP(r),
	})
	var ve *inquiry.ValidationError
	switch {
	case errors.As(err, &ve):
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, apiErrorResponse{Error: inquiry.ErrInvalid.Error(), Fields: ve.Fields})
		return
	case err != nil:
		slog.Error("submitting inquiry", "error", err)
		apiError(w, r, "could not save inquiry", http.StatusInternalServerError)
		return
	}

	apiJSON(w, r, apiInquiryResponse{
		Reference: inq.Reference,
		CreatedAt: inq.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}, http.StatusCreated)
}

func apiError(w http.ResponseWriter, r *http.Request, msg string, code int) {
	render.Status(r, code)
	render.JSON(w, r, apiErrorResponse{Error: msg})
}

func apiJSON(w http.ResponseWriter, r *http.Request, data any, code int) {
	render.Status(r, code)
	render.JSON(w, r, data)
}
