package http

import (
	"net/http"
	"time"

	"review_project/internal/middleware"

	"github.com/rs/cors"
)

// NewServer wraps the handler with tracing and CORS and binds it to addr.
func NewServer(addr string, handler http.Handler, allowedOrigins []string) *http.Server {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return &http.Server{
		Addr:              addr,
		Handler:           middleware.TracingHandler(c.Handler(handler)),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
