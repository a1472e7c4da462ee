package handlers

import (
	"Nuremento/internal/config"
	"Nuremento/internal/middleware"
	"Nuremento/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// Services - всё, что нужно хендлерам.
type Services struct {
	Daily    *service.DailyService
	Memories *service.MemoryService
	Lake     *service.LakeService
	Capsules *service.CapsuleService
}

// NewHandler разводящий для хендлеров
func NewHandler(svc Services, logger *zap.SugaredLogger, config *config.Config) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	memoryHandler := NewMemoryHandler(svc.Memories, svc.Daily, logger, config)
	lakeHandler := NewLakeHandler(svc.Lake, svc.Daily, logger)
	capsuleHandler := NewCapsuleHandler(svc.Capsules, logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireOwner)

		// Memories
		r.Get("/memories/daily", memoryHandler.Daily)
		r.Get("/memories/recent", memoryHandler.Recent)
		r.Post("/memories", memoryHandler.Create)
		r.Delete("/memories/{id}", memoryHandler.Delete)

		// Memory lake
		r.Post("/lake-notes", lakeHandler.Create)
		r.Get("/lake-notes/today", lakeHandler.Today)
		r.Delete("/lake-notes/{id}", lakeHandler.Delete)

		// Time capsules
		r.Post("/time-capsules", capsuleHandler.Create)
		r.Get("/time-capsules", capsuleHandler.List)
		r.Get("/time-capsules/{id}", capsuleHandler.Open)
		r.Delete("/time-capsules/{id}", capsuleHandler.Delete)
	})

	return &Handler{Router: r}
}
