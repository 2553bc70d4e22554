// Package launcher запускает калькулятор: ищет свободный порт, поднимает
// HTTP-сервер, открывает браузер и ждет сигнала завершения.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"runtime"
	"strconv"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
	"github.com/skratchdot/open-golang/open"

	"github.com/MoodyShoo/simple-calculator/internal/web"
)

// ErrNoFreePort означает, что ни одна попытка не нашла свободный порт.
var ErrNoFreePort = errors.New("could not find an available port")

type Launcher struct {
	config  *Config
	listen  func(network, address string) (net.Listener, error)
	openURL func(url string) error
	sleep   func(ctx context.Context, d time.Duration) error
	getenv  func(key string) string
	goos    string
}

func New() *Launcher {
	return &Launcher{
		config:  configFromEnv(),
		listen:  net.Listen,
		openURL: open.Run,
		sleep:   sleepContext,
		getenv:  os.Getenv,
		goos:    runtime.GOOS,
	}
}

func (l *Launcher) Config() *Config {
	return l.config
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AcquireListener перебирает порты Port..PortMax и возвращает первый свободный.
// Весь перебор повторяется StartRetries раз.
func (l *Launcher) AcquireListener(ctx context.Context) (net.Listener, error) {
	for attempt := 1; attempt <= l.config.StartRetries; attempt++ {
		if attempt > 1 {
			log.Printf("[launcher] Retry attempt %d/%d", attempt, l.config.StartRetries)
			if err := l.sleep(ctx, l.config.RetryDelay); err != nil {
				return nil, err
			}
		}

		for port := l.config.Port; port <= l.config.PortMax; port++ {
			addr := net.JoinHostPort(l.config.Host, strconv.Itoa(port))
			ln, err := l.listen("tcp", addr)
			if err == nil {
				return ln, nil
			}
		}

		log.Printf("[launcher] No free port in %d-%d on %s", l.config.Port, l.config.PortMax, l.config.Host)
	}

	return nil, fmt.Errorf("%w in %d-%d after %d attempts", ErrNoFreePort, l.config.Port, l.config.PortMax, l.config.StartRetries)
}

// ToolkitAvailable сообщает, можно ли открыть нативное окно.
func (l *Launcher) ToolkitAvailable() bool {
	switch l.goos {
	case "darwin", "windows", "ios", "android":
		return true
	}
	return l.getenv("DISPLAY") != "" || l.getenv("WAYLAND_DISPLAY") != ""
}

// OpenBrowser открывает адрес в браузере по умолчанию. Ошибка не фатальна.
func (l *Launcher) OpenBrowser(url string) {
	if !l.config.OpenBrowser {
		return
	}

	if err := l.openURL(url); err != nil {
		log.Printf("[launcher] Could not open browser: %v", err)
	}
}

func printInstructions(url string) {
	log.Printf("[launcher] Calculator is running at %s", url)
	log.Println("Instructions:")
	log.Println("  - Enter two numbers in the input fields")
	log.Println("  - Click an operation button (Add, Subtract, Multiply, Divide)")
	log.Println("  - Press 'Clear' to reset")
	log.Println("Press Ctrl+C to shut down the server")
}

// ServeWeb запускает браузерную версию калькулятора и возвращает код выхода процесса.
func (l *Launcher) ServeWeb(ctx context.Context) int {
	ln, err := l.AcquireListener(ctx)
	if err != nil {
		log.Printf("[launcher] %v", err)
		return 1
	}

	module, err := web.New(web.WithListener(ln))
	if err != nil {
		ln.Close()
		log.Printf("[launcher] Failed to create web module: %v", err)
		return 1
	}

	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(l.config.ShutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
	)
	if err != nil {
		ln.Close()
		log.Printf("[launcher] Failed to create mono application: %v", err)
		return 1
	}

	if err := app.Register(module); err != nil {
		ln.Close()
		log.Printf("[launcher] Failed to register web module: %v", err)
		return 1
	}

	if err := app.Start(ctx); err != nil {
		ln.Close()
		log.Printf("[launcher] Failed to start application: %v", err)
		return 1
	}

	url := module.URL()
	printInstructions(url)
	l.OpenBrowser(url)

	wait := gfshutdown.GracefulShutdown(
		ctx,
		l.config.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("[launcher] Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("[launcher] Calculator server exited with code: %d", exitCode)
	return exitCode
}
