package logger

import "errors"

// ErrSentryFlush is returned when buffered Sentry events could not be delivered before the timeout.
var ErrSentryFlush = errors.New("logger: sentry flush timed out")
