// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"daypass/internal/adapters/observability"
	"daypass/internal/app"
	"daypass/internal/domain"
	"daypass/internal/search"
)

const maxBodyBytes = 1 << 20

type Handlers struct{ Q *app.QueryService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type searchRequest struct {
	State *domain.SearchState `json:"state"`
	Tab   domain.Tab          `json:"tab"`
}

type intentRequest struct {
	State  *domain.SearchState `json:"state"`
	Intent *domain.Intent      `json:"intent"`
}

type locationsResponse struct {
	Query     string                  `json:"query"`
	Locations []domain.SearchLocation `json:"locations"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/hotels", h.listHotels)
		r.Post("/search", h.search)
		r.Post("/search/intents", h.applyIntent)
		r.Get("/locations", h.locations)
		r.Get("/filters", h.filters)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached writes v with a weak ETag, or 304 when the client has it.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "response encoding failed")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	writeBody(w, http.StatusOK, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal response")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "response encoding failed")
		return
	}
	writeBody(w, status, body)
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

func writeSearchError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrNoSnapshot) {
		writeProblem(w, http.StatusServiceUnavailable, "Service Unavailable", "hotel data is not available right now")
		return
	}
	log.Error().Err(err).Msg("search failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "search failed")
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("body must contain a single JSON value")
	}
	return nil
}

// stateFromQuery overlays query parameters onto the default state.
func stateFromQuery(q url.Values, base domain.SearchState) (domain.SearchState, error) {
	s := base
	if v := q.Get("location"); v != "" {
		s.Location = v
	}
	if v := q.Get("date"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			return s, fmt.Errorf("date must be YYYY-MM-DD")
		}
		s.Date = &d
	}
	if v := q.Get("available"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("available must be a boolean")
		}
		s.OnlyAvailable = b
	}
	if v := q.Get("top_rated"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("top_rated must be a boolean")
		}
		s.TopRated = b
	}
	if v := q.Get("class"); v != "" {
		s.SelectedHotelClass = domain.HotelClass(v)
	}
	if _, ok := q["amenity"]; ok {
		s.SelectedAmenities = multi(q["amenity"])
	}
	if _, ok := q["vibe"]; ok {
		s.SelectedVibes = multi(q["vibe"])
	}
	return s, nil
}

// multi accepts both repeated and comma separated values.
func multi(vals []string) []string {
	out := []string{}
	for _, v := range vals {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	state, err := stateFromQuery(q, h.Q.DefaultState())
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	tab := domain.Tab(q.Get("tab"))
	if tab == "" {
		tab = domain.TabAll
	}

	res, err := h.Q.Search(r.Context(), state, tab)
	if err != nil {
		writeSearchError(w, err)
		return
	}
	observability.ObserveSearch(string(res.Tab), res.Count)
	writeCached(w, r, res)
}

func (h *Handlers) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", err.Error())
		return
	}
	state := h.Q.DefaultState()
	if req.State != nil {
		state = *req.State
	}
	if req.Tab == "" {
		req.Tab = domain.TabAll
	}

	res, err := h.Q.Search(r.Context(), state, req.Tab)
	if err != nil {
		writeSearchError(w, err)
		return
	}
	observability.ObserveSearch(string(res.Tab), res.Count)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handlers) applyIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", err.Error())
		return
	}
	if req.Intent == nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "intent is required")
		return
	}
	if _, err := search.ParseIntentKind(string(req.Intent.Kind)); err != nil {
		writeProblem(w, http.StatusBadRequest, "Unknown intent", err.Error())
		return
	}
	if req.Intent.Kind == domain.IntentRemoveFilter && req.Intent.Filter == nil {
		writeProblem(w, http.StatusBadRequest, "Invalid intent", "remove-filter needs a filter")
		return
	}

	state := h.Q.DefaultState()
	if req.State != nil {
		state = *req.State
	}
	writeJSON(w, http.StatusOK, h.Q.Apply(state, *req.Intent))
}

func (h *Handlers) locations(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	writeCached(w, r, locationsResponse{Query: q, Locations: h.Q.Locations(q)})
}

func (h *Handlers) filters(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.FilterOptions())
}
