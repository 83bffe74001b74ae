package router

import (
	"github.com/Totarae/ShortLinks/internal/handlers"
	"github.com/Totarae/ShortLinks/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	r.Use(middleware.GzipMiddleware)            // Gzip-сжатие

	r.Route("/links", func(r chi.Router) {
		r.Post("/shorten", handler.ReceiveShorten)
		r.Get("/search", handler.SearchLinks)
		r.Get("/{shortCode}", handler.ResponseURL)
		r.Put("/{shortCode}", handler.UpdateLink)
		r.Delete("/{shortCode}", handler.DeleteLink)
		r.Get("/{shortCode}/stats", handler.LinkStats)
		r.Get("/{shortCode}/qr", handler.LinkQR)
	})
	r.Get("/ping", handler.Ping)

	return r
}
