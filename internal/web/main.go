package web

import (
	"errors"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/teca-org/teca-web/internal/config"
	fiberlog "github.com/teca-org/teca-web/internal/logger/adapter/fiber"
	"github.com/teca-org/teca-web/internal/web/handler"
	"github.com/teca-org/teca-web/internal/web/handler/activities"
	"github.com/teca-org/teca-web/internal/web/handler/admin/audit"
	"github.com/teca-org/teca-web/internal/web/handler/admin/dashboard"
	"github.com/teca-org/teca-web/internal/web/handler/admin/donations"
	adminnews "github.com/teca-org/teca-web/internal/web/handler/admin/news"
	adminpayams "github.com/teca-org/teca-web/internal/web/handler/admin/payams"
	"github.com/teca-org/teca-web/internal/web/handler/admin/pledges"
	"github.com/teca-org/teca-web/internal/web/handler/admin/settings"
	"github.com/teca-org/teca-web/internal/web/handler/admin/user"
	"github.com/teca-org/teca-web/internal/web/handler/events"
	"github.com/teca-org/teca-web/internal/web/handler/fundraising"
	"github.com/teca-org/teca-web/internal/web/handler/home"
	"github.com/teca-org/teca-web/internal/web/handler/leadership"
	"github.com/teca-org/teca-web/internal/web/handler/login"
	"github.com/teca-org/teca-web/internal/web/handler/logout"
	"github.com/teca-org/teca-web/internal/web/handler/media"
	"github.com/teca-org/teca-web/internal/web/handler/news"
	"github.com/teca-org/teca-web/internal/web/handler/payams"
	"github.com/teca-org/teca-web/internal/web/handler/search"
	"github.com/teca-org/teca-web/internal/web/middleware/cleanpath"
	"github.com/teca-org/teca-web/internal/web/session"
)

const (
	// CheckAlivePath reports whether the server accepts traffic.
	CheckAlivePath = "/checkalive"
	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"
	// StaticPath serves the embedded static files.
	StaticPath = "/static"

	// ErrorTemplate is rendered for unhandled handler errors.
	ErrorTemplate = "errors/error"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and stops the server gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers 200 while the service accepts traffic and 503 during shutdown.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	return c.SendString("OK")
}

// New creates the web service: template engine, middleware and every handler.
func New(env *handler.Env) (*Service, error) {
	if env == nil || env.Cfg == nil {
		return nil, handler.ErrNilEnv
	}

	cfg := env.Cfg

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          newViews(cfg),
			ErrorHandler:   errorHandler(env),
		},
	)

	if err := env.Check(app); err != nil {
		return nil, err
	}

	service := &Service{
		cfg: cfg,
		App: app,
	}
	service.alive.Store(true)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	if cfg.Webserver.CleanPath {
		app.Use(cleanpath.New())
	}

	app.Use(fiberlog.New(fiberlog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
		UserLocal:     session.UserIDLocal,
	}))

	// serve embedded static files
	app.Use(StaticPath,
		filesystem.New(
			filesystem.Config{
				Root:   subFS(staticFiles, "static"),
				Browse: cfg.Webserver.BrowseStatic,
				MaxAge: 3600,
			},
		),
	)

	app.Get(CheckAlivePath, service.CheckAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// every page below sees the restored session
	app.Use(env.Sessions.Middleware())

	handlers := []handler.Service{
		&home.Handler,
		&news.Handler,
		&events.Handler,
		&leadership.Handler,
		&payams.Handler,
		&fundraising.Handler,
		&activities.Handler,
		&media.Handler,
		&search.Handler,
		&login.Handler,
		&logout.Handler,
		&dashboard.Handler,
		&adminnews.Handler,
		&adminpayams.Handler,
		&donations.Handler,
		&pledges.Handler,
		&audit.Handler,
		&user.Handler,
		&settings.Handler,
	}

	for _, h := range handlers {
		if err := h.Init(app, env); err != nil {
			return nil, err
		}
	}

	app.Use(func(c *fiber.Ctx) error {
		return handler.NotFound(c, env)
	})

	return service, nil
}

// newViews returns the html engine over the embedded templates. In dev mode
// the templates are read from disk and reloaded on every render.
func newViews(cfg *config.Config) *html.Engine {
	engine := html.NewFileSystem(subFS(templateFiles, "templates"), ".gohtml")

	if cfg.DevMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	engine.AddFuncMap(templateFuncs())

	return engine
}

func templateFuncs() template.FuncMap {
	printer := message.NewPrinter(language.English)

	return template.FuncMap{
		"iterate": func(count int) []int {
			result := make([]int, count)
			for i := range result {
				result[i] = i + 1
			}

			return result
		},
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"money": func(amount int64) string {
			return printer.Sprintf("$%d", amount)
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}

			return t.Format("January 2, 2006")
		},
		"datetime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"join": strings.Join,
		"title": func(s string) string {
			if s == "" {
				return s
			}

			return strings.ToUpper(s[:1]) + s[1:]
		},
		"hasPrefix": strings.HasPrefix,
	}
}

// errorHandler renders a generic error page for errors returned by handlers.
func errorHandler(env *handler.Env) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code == fiber.StatusNotFound {
			return handler.NotFound(c, env)
		}

		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		}

		c.Status(code)

		if errRender := handler.Render(c, env, ErrorTemplate, fiber.Map{
			"Code":    code,
			"Message": http.StatusText(code),
		}, handler.BaseLayout); errRender != nil {
			log.Error().Err(errRender).Msg("failed to render error page")

			return c.SendStatus(code)
		}

		return nil
	}
}
