package middlewares_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactform/internal"
	"github.com/dmitrymomot/contactform/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	boom := func(internal.Context) error { panic("boom") }

	t.Run("panic becomes PanicError", func(t *testing.T) {
		t.Parallel()
		log, buf := newTestLogger()
		rec := do(newTestApp(t, log, boom, middlewares.Recover()), http.MethodGet, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "panic", rec.Body.String())
		assert.Contains(t, buf.String(), "panic recovered")
		assert.Contains(t, buf.String(), `"stack"`)
	})

	t.Run("stack disabled", func(t *testing.T) {
		t.Parallel()
		log, buf := newTestLogger()
		rec := do(newTestApp(t, log, boom, middlewares.Recover(middlewares.WithRecoverDisablePrintStack())), http.MethodGet, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, buf.String(), `"stack"`)
	})

	t.Run("no panic passes through", func(t *testing.T) {
		t.Parallel()
		rec := do(newTestApp(t, nil, ok, middlewares.Recover()), http.MethodGet, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	pe := &middlewares.PanicError{Value: "x"}
	assert.Equal(t, "panic: x", pe.Error())
	got, ok := middlewares.AsPanicError(pe)
	assert.True(t, ok)
	assert.Same(t, pe, got)
	assert.False(t, middlewares.IsTimeoutError(pe))

	te := &middlewares.TimeoutError{Duration: 0}
	assert.True(t, middlewares.IsTimeoutError(te))
	assert.False(t, middlewares.IsPanicError(te))
}
