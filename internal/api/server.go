// Package api exposes the quest map over HTTP. It is a thin presentation
// adapter: every intent is forwarded to the session service and every
// error from the engine maps onto a status code unchanged in meaning.
package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/abhisek/cookquest/internal/session"
	"github.com/abhisek/cookquest/internal/store"
)

// Server is the HTTP front for the quest map service.
type Server struct {
	addr    string
	service *session.Service
	store   *store.Store
}

// NewServer builds a server on the given listen address.
func NewServer(addr string, svc *session.Service, st *store.Store) *Server {
	return &Server{addr: addr, service: svc, store: st}
}

// Router builds the full route table. Split out from Run so tests can
// drive it with httptest.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()
	sub := router.PathPrefix("/api/v1").Subrouter()
	s.registerRoutes(sub)

	chain := middlewareChain(loggerMiddleware)
	return chain(router)
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	server := http.Server{Addr: s.addr, Handler: s.Router()}
	log.Println("server running at", s.addr)
	return server.ListenAndServe()
}

type wrappedWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *wrappedWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

type middleware func(http.Handler) http.HandlerFunc

func middlewareChain(middlewares ...middleware) middleware {
	return func(next http.Handler) http.HandlerFunc {
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next.ServeHTTP
	}
}

func loggerMiddleware(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")

		start := time.Now()
		wrapped := &wrappedWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		log.Printf("[ %d %s ] %s %v", wrapped.statusCode, r.Method, r.URL.Path, time.Since(start))
	}
}
