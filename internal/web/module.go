package web

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/afero"

	"github.com/MoodyShoo/simple-calculator/internal/middleware"
	"github.com/MoodyShoo/simple-calculator/internal/models"
	"github.com/MoodyShoo/simple-calculator/internal/util"
)

// Module обслуживает форму калькулятора и JSON API.
// Между запросами сервер не хранит состояния формы.
type Module struct {
	config   *Config
	fs       afero.Fs
	listener net.Listener
	page     *page
	app      *fiber.App
	running  bool
}

var _ mono.Module = (*Module)(nil)
var _ mono.HealthCheckableModule = (*Module)(nil)

type Option func(m *Module)

// WithFs задает файловую систему с index.html и style.css.
func WithFs(fs afero.Fs) Option {
	return func(m *Module) {
		m.fs = fs
	}
}

// WithListener задает уже открытый сокет, на котором будет работать сервер.
func WithListener(ln net.Listener) Option {
	return func(m *Module) {
		m.listener = ln
	}
}

func WithConfig(config *Config) Option {
	return func(m *Module) {
		m.config = config
	}
}

func New(opts ...Option) (*Module, error) {
	m := &Module{
		config: configFromEnv(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.fs == nil {
		m.fs = assetsFs(m.config)
	}

	p, err := loadPage(m.fs, m.config.AppName)
	if err != nil {
		return nil, err
	}
	m.page = p

	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	m.app.Use(recover.New())
	m.app.Use(middleware.RequestID())
	m.setupRoutes()

	return m, nil
}

func (m *Module) setupRoutes() {
	m.app.Get(IndexRoute, m.IndexHandler)
	m.app.Post(IndexRoute, m.SubmitHandler)
	m.app.Get(StyleRoute, m.StyleHandler)
	m.app.Post(CalculateRoute, m.CalculateHandler)
	m.app.Get(OperationsRoute, m.OperationsHandler)
	m.app.Get(HealthRoute, func(c *fiber.Ctx) error {
		return c.JSON(m.Health(c.Context()))
	})
}

// App возвращает fiber-приложение, например для app.Test в тестах.
func (m *Module) App() *fiber.App {
	return m.app
}

// URL возвращает адрес формы; пустая строка, если сокет не задан.
func (m *Module) URL() string {
	if m.listener == nil {
		return ""
	}
	addr, ok := m.listener.Addr().(*net.TCPAddr)
	if !ok {
		return "http://" + m.listener.Addr().String() + IndexRoute
	}
	host := "localhost"
	if !addr.IP.IsUnspecified() && !addr.IP.IsLoopback() {
		host = addr.IP.String()
	}
	return fmt.Sprintf("http://%s%s", net.JoinHostPort(host, fmt.Sprint(addr.Port)), IndexRoute)
}

func (m *Module) Name() string {
	return "web"
}

func (m *Module) Start(ctx context.Context) error {
	if m.listener == nil {
		return fmt.Errorf("listener not set")
	}

	errChan := make(chan error, 1)
	go func() {
		if err := m.app.Listener(m.listener); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("failed to start HTTP server: %w", err)
	case <-time.After(100 * time.Millisecond):
		m.running = true
		log.Printf("[web] HTTP server started on %s", m.listener.Addr())
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Module) Stop(ctx context.Context) error {
	if !m.running {
		return nil
	}

	log.Println("[web] Shutting down HTTP server...")
	if err := m.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	m.running = false

	log.Println("[web] HTTP server stopped")
	return nil
}

func (m *Module) Health(_ context.Context) mono.HealthStatus {
	status := mono.HealthStatus{
		Healthy: m.app != nil && m.page != nil,
		Message: "operational",
	}
	if m.listener != nil {
		status.Details = map[string]any{
			"address": m.listener.Addr().String(),
		}
	}
	return status
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	log.Printf("[web] %s %s: %v", c.Method(), c.Path(), err)
	return util.SendError(c, message, models.ErrorKind(""), code)
}
