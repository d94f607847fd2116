package middlewares_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecpw/site/internal"
	"github.com/ecpw/site/middlewares"
	"github.com/ecpw/site/pkg/logger"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("recovers from panic and returns PanicError", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		ctx := newTestContext(httptest.NewRecorder(), req).withLogger(logger.NewWriter(&buf))

		handler := middlewares.Recover()(func(c internal.Context) error {
			panic("test panic")
		})

		err := handler(ctx)
		require.Error(t, err)
		require.True(t, middlewares.IsPanicError(err))

		pe, ok := middlewares.AsPanicError(err)
		require.True(t, ok)
		require.Equal(t, "test panic", pe.Value)
		require.NotEmpty(t, pe.Stack)

		require.Contains(t, buf.String(), `"msg":"panic recovered"`)
		require.Contains(t, buf.String(), `"path":"/api/contact"`)
		require.Contains(t, buf.String(), `"stack"`)
	})

	t.Run("passes through when no panic", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := newTestContext(httptest.NewRecorder(), req)

		sentinel := errors.New("handler error")
		handler := middlewares.Recover()(func(c internal.Context) error {
			return sentinel
		})

		require.ErrorIs(t, handler(ctx), sentinel)
	})

	t.Run("respects DisablePrintStack option", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := newTestContext(httptest.NewRecorder(), req).withLogger(logger.NewWriter(&buf))

		handler := middlewares.Recover(middlewares.WithRecoverDisablePrintStack())(func(c internal.Context) error {
			panic("no stack")
		})

		pe, ok := middlewares.AsPanicError(handler(ctx))
		require.True(t, ok)
		require.Nil(t, pe.Stack)
		require.NotContains(t, buf.String(), `"stack"`)
	})

	t.Run("respects stack size", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := newTestContext(httptest.NewRecorder(), req)

		handler := middlewares.Recover(middlewares.WithRecoverStackSize(64))(func(c internal.Context) error {
			panic("small stack")
		})

		pe, ok := middlewares.AsPanicError(handler(ctx))
		require.True(t, ok)
		require.LessOrEqual(t, len(pe.Stack), 64)
	})

	t.Run("panic with error value unwraps", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := newTestContext(httptest.NewRecorder(), req)

		cause := errors.New("nil map write")
		handler := middlewares.Recover()(func(c internal.Context) error {
			panic(cause)
		})

		require.ErrorIs(t, handler(ctx), cause)
	})
}
