package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const greeting = "Hey There, Greetings From The Server. Have a Good Day :)"

type RouterConfig struct {
	Production     bool
	StaticDir      string
	RequestTimeout time.Duration
}

// NewRouter wires the full request surface: contact, payment, catalog and
// the frontend. Outside production only the root greeting is registered and
// unmatched paths 404; in production unmatched GETs fall through to the SPA.
func NewRouter(cfg RouterConfig, contact *ContactHandler, pay *PaymentHandler, products *ProductHandler) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/contact", contact.Get)
	r.Post("/contact", contact.Save)
	r.Post("/payment", pay.Charge)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", products.List)
		r.Get("/{id}", products.Get)
	})

	if cfg.Production {
		spa := NewSPAHandler(cfg.StaticDir)
		r.NotFound(spa.ServeHTTP)
	} else {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Write([]byte(greeting))
		})
	}

	return r
}
