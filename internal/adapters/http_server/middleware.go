package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"daypass/internal/adapters/observability"
)

const timeoutBody = `{"type":"about:blank","title":"Timeout","status":503,"detail":"request timed out"}`

// Timeout answers 503 with an application/problem+json body when a handler
// runs longer than d.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		th := http.TimeoutHandler(next, d, timeoutBody)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			th.ServeHTTP(&problemOnTimeout{ResponseWriter: w}, r)
		})
	}
}

// problemOnTimeout types the timeout body. TimeoutHandler copies a finished
// handler's headers before WriteHeader, so only its own 503 arrives untyped.
type problemOnTimeout struct{ http.ResponseWriter }

func (w *problemOnTimeout) WriteHeader(code int) {
	if code == http.StatusServiceUnavailable && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/problem+json")
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *problemOnTimeout) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// recorder remembers the first status written and counts body bytes.
type recorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *recorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *recorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *recorder) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func (w *recorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// Observe records request metrics and writes one access log line per request.
// Server errors log at warn so they stand out from regular traffic.
func Observe(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &recorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			route, status, took := routePattern(r), rec.Status(), time.Since(start)
			observability.ObserveHTTP(route, r.Method, status, took)

			ev := l.Info()
			if status >= http.StatusInternalServerError {
				ev = l.Warn()
			}
			ev.Str("request_id", chimw.GetReqID(r.Context())).
				Str("route", route).
				Str("method", r.Method).
				Str("query", r.URL.RawQuery).
				Int("status", status).
				Int("bytes", rec.bytes).
				Dur("duration", took).
				Str("remote", r.RemoteAddr).
				Str("user_agent", r.UserAgent()).
				Msg("http_request")
		})
	}
}

// routePattern keeps metric labels bounded: unmatched paths share one label.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
