package api

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"
	"transit-items-service/internal/api/handlers"
	"transit-items-service/internal/platform/obs"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/unrolled/secure"
)

const requestIDHeader = "X-Request-ID"

type middleware func(http.Handler) http.Handler

// chain applies mws so that the first one is the outermost wrapper.
func chain(h http.Handler, mws ...middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// statusWriter captures the final HTTP status code and number of bytes written.
// This helps distinguish "handler returned 200" from "client received a response".
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// requestIDMiddleware reuses an inbound X-Request-ID or mints a UUID, stores
// it in the request context and echoes it on the response.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(obs.ContextWithRequestID(r.Context(), id)))
	})
}

// loggingMiddleware logs end-to-end request duration and response size for basic observability.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		log.Printf(
			"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			obs.RequestIDFromContext(r.Context()), r.Method, r.URL.RequestURI(),
			sw.status, sw.bytes, time.Since(start).Milliseconds(),
		)
	})
}

// metricsMiddleware records request count by status class and request duration.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		status := sw.status
		if status == 0 {
			status = http.StatusOK
		}
		obs.RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(status/100)+"xx").Inc()
		obs.RequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

// recoveryMiddleware turns a handler panic into a 500 response and keeps
// the server serving.
func recoveryMiddleware(showDetail bool) middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Printf("req_id=%s panic: %v\n%s", obs.RequestIDFromContext(r.Context()), rec, debug.Stack())
				handlers.InternalError(w, r, fmt.Errorf("panic: %v", rec), "", showDetail)
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// corsMiddleware allows any origin, method and header; preflights get a 204.
func corsMiddleware(next http.Handler) http.Handler {
	return cors.AllowAll().Handler(next)
}

// securityHeadersMiddleware sets a conservative set of browser security headers.
func securityHeadersMiddleware(next http.Handler) http.Handler {
	return secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
	}).Handler(next)
}
