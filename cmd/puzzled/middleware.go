package main

import (
	"bufio"
	"errors"
	"net"
	"net/http"

	"github.com/rs/cors"
)

type Middleware func(http.Handler) http.Handler

func useMiddleware(s *http.ServeMux, mws ...Middleware) http.Handler {
	var h http.Handler = s
	for _, mw := range mws {
		h = mw(h)
	}
	return h
}

func corsMiddleware(h http.Handler) http.Handler {
	options := cors.Options{
		AllowedOrigins: config.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
	if len(options.AllowedOrigins) == 0 {
		options.AllowOriginFunc = func(origin string) bool { return true }
	}
	return cors.New(options).Handler(h)
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	hijacked   bool
}

func (w *loggingResponseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

// Hijack forwards to the underlying writer so WebSocket upgrades work
// behind the logging wrapper.
func (w *loggingResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	w.hijacked = true
	return h.Hijack()
}

func loggingMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Infof("--> %s %s", r.Method, r.URL.String())
		wrapped := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		h.ServeHTTP(wrapped, r)
		if wrapped.hijacked {
			log.Infof("<-- hijacked %s", r.URL.Path)
			return
		}
		code := wrapped.statusCode
		log.Infof("<-- %d %s", code, http.StatusText(code))
	})
}
