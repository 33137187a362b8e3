package api

import (
	"AssistHub/internal/config"
	"AssistHub/internal/http-server/handlers/assistant"
	"AssistHub/internal/http-server/handlers/errors"
	"AssistHub/internal/http-server/handlers/helpcenter"
	"AssistHub/internal/http-server/middleware/authenticate"
	"AssistHub/internal/http-server/middleware/timeout"
	"AssistHub/internal/lib/sl"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const requestTimeout = 60

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	assistant.Core
	helpcenter.Core
}

func NewRouter(log *slog.Logger, handler Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(timeout.Timeout(requestTimeout))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(authenticate.New(log, handler))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/assistant", func(r chi.Router) {
			r.Get("/", assistant.GetAll(log, handler))
			r.Post("/", assistant.Create(log, handler))
			r.Post("/ensure", assistant.Ensure(log, handler))
			r.Get("/{name}", assistant.Get(log, handler))
			r.Put("/{name}", assistant.Update(log, handler))
			r.Delete("/{name}", assistant.Delete(log, handler))
		})
		v1.Route("/helpcenter", func(r chi.Router) {
			r.Get("/search", helpcenter.Search(log, handler))
		})
		v1.Route("/tools", func(r chi.Router) {
			r.Post("/{name}", helpcenter.Command(log, handler))
		})
	})

	return router
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  NewRouter(log, handler),
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
