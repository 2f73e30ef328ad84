package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/lectio/internal/service"
	"github.com/limbo/lectio/pkg/cleanup"
	"github.com/limbo/lectio/pkg/logger"
)

const defaultRequestTimeout = 10 * time.Second

type Server struct {
	mx             *chi.Mux
	readingService service.ReadingServiceI
	jwtService     JWTServiceI
	log            *logger.Logger
	requestTimeout time.Duration
}

type ServicesList struct {
	ReadingService service.ReadingServiceI
	JwtService     JWTServiceI
	Logger         *logger.Logger
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		readingService: servicesOptions.ReadingService,
		jwtService:     servicesOptions.JwtService,
		log:            servicesOptions.Logger,
		requestTimeout: servicesOptions.RequestTimeout,
	}
	if s.log == nil {
		s.log = logger.NewNop()
	}
	if s.requestTimeout <= 0 {
		s.requestTimeout = defaultRequestTimeout
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Use(s.LoggerExtensionMiddleware)

		r.Post("/progress", s.InitProgress)
		r.Get("/progress", s.GetUserProgress)
		r.Get("/progress/xp", s.GetXPHistory)

		r.Post("/chapters/{chapterID}/complete", s.CompleteChapter)
		r.Post("/reading-time", s.RecordReadingTime)

		r.Get("/daily-goal", s.GetTodayProgress)
		r.Put("/daily-goal", s.UpdateDailyGoal)
		r.Get("/daily-goal/stats", s.GetDailyGoalStats)

		r.Get("/streak", s.GetStreakStats)
		r.Put("/streak/goal", s.SetStreakGoal)

		r.Get("/books/{bookID}/progress", s.GetBookProgress)
		r.Get("/books/{bookID}/chapters/{number}/unlocked", s.IsChapterUnlocked)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run blocks until the server stops. Shutdown is registered as a cleanup job,
// after which Run returns nil.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	s.log.Info("server started", "address", addr)
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
