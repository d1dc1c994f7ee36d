package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/middlewares"
	"github.com/dmitrymomot/contactform/pkg/logger"
)

type routesFunc func(r internal.Router)

func (f routesFunc) Routes(r internal.Router) { f(r) }

// syncBuffer guards log output written from server goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	h := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(logger.NewLogHandlerDecorator(h, middlewares.RequestIDExtractor())), buf
}

// newTestApp mounts h at "/" behind mws and a plain-text error handler
// mirroring the production one.
func newTestApp(t *testing.T, log *slog.Logger, h internal.HandlerFunc, mws ...internal.Middleware) *internal.App {
	t.Helper()
	if log == nil {
		log = logger.NewNope()
	}
	return internal.New(
		internal.WithCustomLogger(log),
		internal.WithMiddleware(mws...),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			switch {
			case middlewares.IsTimeoutError(err):
				return c.String(http.StatusServiceUnavailable, "timeout")
			case middlewares.IsPanicError(err):
				return c.String(http.StatusInternalServerError, "panic")
			default:
				return c.String(http.StatusInternalServerError, err.Error())
			}
		}),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/", h)
			r.POST("/", h)
		})),
	)
}

func do(app http.Handler, method string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", strings.NewReader(""))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func ok(c internal.Context) error {
	return c.String(http.StatusOK, "ok")
}
