package contact

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/doucearrivee/contact-api/formtoken"
	"github.com/doucearrivee/contact-api/ratelimit"
	"github.com/doucearrivee/contact-api/spamgate"
)

// version number - this is overridden at build time to inject the commit hash
var version = "dev"

// Server bundles several data types together for dependency injection into http handlers
type Server struct {
	tg       *formtoken.Generator
	gate     *spamgate.Gate
	limiter  ratelimit.Limiter
	notifier Notifier
	Router   *mux.Router

	cfg Config
}

// Config contains key configuration parameters to be passed to New()
type Config struct {
	Key            string
	MinFillTime    time.Duration
	TokenMaxAge    time.Duration
	AllowedOrigins []string
	RestoreRealIP  bool
	Developing     bool
}

// New returns a contact server with the given settings
func New(cfg Config, limiter ratelimit.Limiter, notifier Notifier) *Server {
	if cfg.TokenMaxAge <= 0 {
		cfg.TokenMaxAge = 24 * time.Hour
	}

	tg := formtoken.NewGenerator(cfg.Key, cfg.TokenMaxAge)

	s := &Server{
		tg:       tg,
		gate:     spamgate.New(tg, cfg.MinFillTime),
		limiter:  limiter,
		notifier: notifier,
		cfg:      cfg,
	}

	s.Router = mux.NewRouter()
	s.Router.StrictSlash(true) // means router will match both "/path" and "/path/"

	s.Router.Handle("/api/v1/contact/",
		alice.New( //Middleware below
			JSONContentType,
			s.CORS,
			s.SecurityHeaders,
		).ThenFunc(s.SubmitJSON),
	).Methods(http.MethodPost, http.MethodOptions)

	s.Router.Handle("/api/v1/contact/token",
		alice.New(
			JSONContentType,
			s.CORS,
			s.SecurityHeaders,
		).ThenFunc(s.TokenJSON),
	).Methods(http.MethodGet, http.MethodOptions)

	s.Router.Handle("/metrics", promhttp.Handler())
	s.Router.HandleFunc("/ping", s.Ping)

	if cfg.RestoreRealIP {
		s.Router.Use(RestoreRealIP)
	}

	return s
}

// Ping returns PONG when called
func (s *Server) Ping(w http.ResponseWriter, r *http.Request) {
	_, err := w.Write([]byte("PONG"))
	if err != nil {
		log.Printf("ping - failed to write out response: %v", err)
	}
}
