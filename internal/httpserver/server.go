package httpserver

import (
	"context"
	"net/http"
	"time"

	"luxestore-be/internal/auth"
	"luxestore-be/internal/catalog"
	"luxestore-be/internal/order"
	"luxestore-be/internal/review"
	"luxestore-be/internal/state"
	"luxestore-be/internal/user"
)

// Deps carries everything the router needs; handlers receive services, not
// repositories.
type Deps struct {
	Catalog  catalog.Service
	Orders   order.Service
	Reviews  review.Service
	Users    user.Service
	Sessions *state.Manager
	Tokens   *auth.Manager

	// Ping reports whether backing storage is reachable; readiness only.
	Ping func(ctx context.Context) error

	AllowedOrigins []string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
}

func New(addr string, deps Deps) *Server {
	router := buildRouter(deps)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
