package web

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cnk-ceneka/cnk/internal/gallery"
	"github.com/cnk-ceneka/cnk/internal/i18n"
	"github.com/cnk-ceneka/cnk/internal/inquiry"
	"github.com/cnk-ceneka/cnk/internal/listing"
	"github.com/cnk-ceneka/cnk/internal/property"
)

const (
	langParam  = "lang"
	langCookie = "lang"
)

type ctxKey int

const translatorKey ctxKey = iota

// pageData is embedded in every page so templates can call {{.T "key"}}.
type pageData struct {
	i18n.Translator
	Path     string
	WhatsApp string
}

type homeData struct {
	pageData
	Page           *listing.Page
	Properties     []*property.Property
	Filter         property.Filter
	ActiveFilters  int
	ListError      bool
	Gallery        gallery.Result
	GalleryMessage string
	Pages          []pageLink
	PrevURL        string
	NextURL        string
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

type detailData struct {
	pageData
	Property *property.Property
}

type contactData struct {
	pageData
	Form      contactForm
	Errors    map[string]string
	Reference string
	Failed    bool
}

type contactForm struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID string
}

type messageData struct {
	pageData
	Title   string
	Message string
}

// withLang negotiates the UI language and stores its translator in the
// request context. An explicit ?lang= is remembered in a cookie.
func (s *Server) withLang(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get(langParam)
		cookie := ""
		if c, err := r.Cookie(langCookie); err == nil {
			cookie = c.Value
		}
		lang := i18n.Negotiate(query, cookie, r.Header.Get("Accept-Language"))

		if _, ok := i18n.ParseLang(query); ok {
			http.SetCookie(w, &http.Cookie{
				Name:     langCookie,
				Value:    string(lang),
				Path:     "/",
				MaxAge:   int((365 * 24 * time.Hour).Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		w.Header().Set("Content-Language", lang.Tag().String())
		ctx := context.WithValue(r.Context(), translatorKey, i18n.New(lang))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func translator(r *http.Request) i18n.Translator {
	if t, ok := r.Context().Value(translatorKey).(i18n.Translator); ok {
		return t
	}
	return i18n.New(i18n.Default)
}

func (s *Server) page(r *http.Request) pageData {
	t := translator(r)
	return pageData{
		Translator: t,
		Path:       r.URL.Path,
		WhatsApp:   whatsAppURL(s.opts.WhatsAppNumber, t.T("mensaje-whatsapp")),
	}
}

// handleHealth returns 200 OK for health checks.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleHome renders the landing page with one page of listings and the
// gallery carousel. Filters narrow the current page only. The gallery never
// holds the page for longer than GalleryWait.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pageNum := parsePage(q.Get("page"))
	filter := property.ParseFilter(q)

	// The gallery fetch outlives a slow page so its result still reaches
	// the cache; the page shows the fallback once the wait runs out.
	galleryc := make(chan gallery.Result, 1)
	go func() {
		galleryc <- s.deps.Gallery.Fetch(context.WithoutCancel(r.Context()))
	}()
	wait := time.NewTimer(s.opts.GalleryWait)
	defer wait.Stop()

	page, listErr := s.deps.Listings.Fetch(r.Context(), pageNum, s.opts.PageSize)

	var images gallery.Result
	select {
	case images = <-galleryc:
	case <-wait.C:
		slog.Warn("gallery too slow, showing fallback images", "wait", s.opts.GalleryWait)
		images = gallery.Unavailable()
	}

	data := homeData{
		pageData:      s.page(r),
		Filter:        filter,
		ActiveFilters: filter.Active(),
		Gallery:       images,
	}
	data.GalleryMessage = images.Message(data.T)

	if listErr != nil {
		slog.Error("loading listings", "page", pageNum, "error", listErr)
		data.ListError = true
		s.render(w, http.StatusOK, "home.html", data)
		return
	}

	if clamped := listing.ClampPage(pageNum, page.TotalPages); clamped != pageNum {
		http.Redirect(w, r, pageURL(filter, clamped, ""), http.StatusFound)
		return
	}

	data.Page = page
	data.Properties = property.Apply(page.Properties, filter)
	data.Pages, data.PrevURL, data.NextURL = pagination(filter, page.Number, page.TotalPages)
	s.render(w, http.StatusOK, "home.html", data)
}

// handleDetail renders a single property.
func (s *Server) handleDetail(w http.ResponseWriter, r *http.Request) {
	id, err := parsePropertyID(chi.URLParam(r, "id"))
	if err != nil {
		s.renderPropertyNotFound(w, r)
		return
	}

	prop, err := s.deps.Resolver.Resolve(r.Context(), id)
	if errors.Is(err, listing.ErrNotFound) {
		s.renderPropertyNotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("resolving property", "id", id, "error", err)
		data := s.page(r)
		s.render(w, http.StatusBadGateway, "error.html", messageData{
			pageData: data,
			Title:    data.T("error-propiedad"),
			Message:  data.T("error-propiedades"),
		})
		return
	}

	s.render(w, http.StatusOK, "detail.html", detailData{pageData: s.page(r), Property: prop})
}

func (s *Server) renderPropertyNotFound(w http.ResponseWriter, r *http.Request) {
	data := s.page(r)
	s.render(w, http.StatusNotFound, "notfound.html", messageData{
		pageData: data,
		Title:    data.T("propiedad-no-encontrada"),
		Message:  data.T("propiedad-no-encontrada-desc"),
	})
}

// handleNotFound renders the catch-all 404 page.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	data := s.page(r)
	s.render(w, http.StatusNotFound, "notfound.html", messageData{
		pageData: data,
		Title:    data.T("pagina-no-encontrada"),
		Message:  data.T("ruta-no-existe"),
	})
}

func (s *Server) handleRateLimited(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		apiError(w, r, "too many requests", http.StatusTooManyRequests)
		return
	}
	data := s.page(r)
	s.render(w, http.StatusTooManyRequests, "error.html", messageData{
		pageData: data,
		Title:    data.T("error-envio"),
		Message:  data.T("reintentar-despues"),
	})
}

// handleContactForm shows the contact form, or the thank-you state after a
// successful submission.
func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	data := contactData{
		pageData:  s.page(r),
		Form:      contactForm{PropertyID: q.Get("property")},
		Reference: q.Get("ref"),
	}
	s.render(w, http.StatusOK, "contact.html", data)
}

// handleContactPost stores an inquiry and redirects to the thank-you state.
func (s *Server) handleContactPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	t := translator(r)
	form := contactForm{
		Name:       r.PostFormValue("name"),
		Email:      r.PostFormValue("email"),
		Phone:      r.PostFormValue("phone"),
		Message:    r.PostFormValue("message"),
		PropertyID: strings.TrimSpace(r.PostFormValue("property_id")),
	}
	data := contactData{pageData: s.page(r), Form: form}

	if s.deps.Inquiries == nil {
		data.Failed = true
		s.render(w, http.StatusServiceUnavailable, "contact.html", data)
		return
	}

	in := inquiry.Input{
		Name:     form.Name,
		Email:    form.Email,
		Phone:    form.Phone,
		Message:  form.Message,
		Lang:     t.Lang(),
		RemoteIP: remoteIP(r),
	}
	if form.PropertyID != "" {
		id, err := parsePropertyID(form.PropertyID)
		if err != nil {
			data.Errors = map[string]string{"property_id": t.T("error-propiedad-id")}
			s.render(w, http.StatusUnprocessableEntity, "contact.html", data)
			return
		}
		in.PropertyID = &id
	}

	inq, err := s.deps.Inquiries.Submit(in)
	var ve *inquiry.ValidationError
	switch {
	case errors.As(err, &ve):
		data.Errors = ve.Fields
		s.render(w, http.StatusUnprocessableEntity, "contact.html", data)
		return
	case err != nil:
		slog.Error("submitting inquiry", "error", err)
		data.Failed = true
		s.render(w, http.StatusInternalServerError, "contact.html", data)
		return
	}

	http.Redirect(w, r, "/contact?ref="+url.QueryEscape(inq.Reference), http.StatusSeeOther)
}

// parsePage reads a 1-based page number; anything invalid is page 1.
func parsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parsePropertyID reads a positive property id.
func parsePropertyID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errors.New("property id must be positive")
	}
	return id, nil
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// pageURL links to page n of the listing, keeping the active filters.
func pageURL(f property.Filter, n int, fragment string) string {
	v := f.Values()
	if n > 1 {
		v.Set("page", strconv.Itoa(n))
	}
	u := "/"
	if enc := v.Encode(); enc != "" {
		u += "?" + enc
	}
	if fragment != "" {
		u += "#" + fragment
	}
	return u
}

// pagination builds the numbered page links plus previous and next URLs.
// Previous and next are empty at the edges.
func pagination(f property.Filter, current, total int) (links []pageLink, prev, next string) {
	for n := 1; n <= total; n++ {
		links = append(links, pageLink{Number: n, URL: pageURL(f, n, "propiedades"), Current: n == current})
	}
	if current > 1 {
		prev = pageURL(f, current-1, "propiedades")
	}
	if current < total {
		next = pageURL(f, current+1, "propiedades")
	}
	return links, prev, next
}

// whatsAppURL builds a click-to-chat link with a prefilled message.
func whatsAppURL(number, text string) string {
	number = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if number == "" {
		return ""
	}
	u := "https://wa.me/" + number
	if text != "" {
		u += "?text=" + url.QueryEscape(text)
	}
	return u
}
