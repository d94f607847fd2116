package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultResetDelay = 4 * time.Second
	maxResponseBody   = 64 << 10

	fallbackFailure   = "Request failed"
	fallbackTransport = "Unable to send message right now."
)

// Controller holds the state of one contact form and submits it.
// All methods are safe for concurrent use.
type Controller struct {
	endpoint   string
	http       *http.Client
	validate   *validator.Validate
	resetDelay time.Duration
	onChange   func(State)

	mu         sync.Mutex
	values     map[string]string
	state      State
	resetTimer *time.Timer
	generation uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers a callback for every status transition.
// It runs outside the controller lock, in the goroutine that caused the
// transition or the reset timer's goroutine.
func WithOnChange(fn func(State)) Option {
	return func(c *Controller) {
		c.onChange = fn
	}
}

// WithResetDelay sets how long sent and error states last before the form
// returns to idle.
func WithResetDelay(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.resetDelay = d
		}
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Controller) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates an idle form posting to endpoint, with every field empty.
func New(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint:   endpoint,
		http:       &http.Client{Timeout: 30 * time.Second},
		validate:   validator.New(),
		resetDelay: defaultResetDelay,
		values:     emptyValues(),
		state:      State{Status: StatusIdle},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func emptyValues() map[string]string {
	v := make(map[string]string, len(Fields))
	for _, f := range Fields {
		v[f] = ""
	}
	return v
}

// Set updates a field value.
func (c *Controller) Set(field, value string) error {
	if !slices.Contains(Fields, field) {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	c.mu.Lock()
	c.values[field] = value
	c.mu.Unlock()
	return nil
}

// Value returns the current value of a field.
func (c *Controller) Value(field string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[field]
}

// Values returns a copy of all field values.
func (c *Controller) Values() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// State returns the current status and error message.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit posts the form and returns the resulting state.
//
// It refuses with ErrBusy while sending and with ErrRequired when name,
// email or message is empty; the state is left untouched then. Server and
// transport failures are not returned as errors: they end in StatusError
// with a message for the visitor. Sent and error states return to idle
// after the reset delay.
func (c *Controller) Submit(ctx context.Context) (State, error) {
	c.mu.Lock()
	if c.state.Status == StatusSending {
		c.mu.Unlock()
		return State{}, ErrBusy
	}
	for _, f := range requiredFields {
		if err := c.validate.Var(c.values[f], "required"); err != nil {
			c.mu.Unlock()
			return State{}, fmt.Errorf("%w: %s", ErrRequired, f)
		}
	}

	payload, err := json.Marshal(c.values)
	if err != nil {
		c.mu.Unlock()
		return State{}, fmt.Errorf("encode form: %w", err)
	}

	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
	c.generation++
	sending := c.transition(State{Status: StatusSending})
	c.mu.Unlock()
	c.notify(sending)

	result, sent := c.post(ctx, payload)

	c.mu.Lock()
	if sent {
		c.values = emptyValues()
	}
	final := c.transition(result)
	c.scheduleReset()
	c.mu.Unlock()
	c.notify(final)

	return final, nil
}

// Close stops a pending reset timer.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
}

// post performs the request and reports the resulting state and whether
// the server accepted the submission.
func (c *Controller) post(ctx context.Context, payload []byte) (State, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return transportFailure(err), false
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return transportFailure(err), false
	}
	defer resp.Body.Close()

	body := decodeBody(resp.Body)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return State{Status: StatusSent}, true
	}

	msg := truthy(body["details"])
	if msg == "" {
		msg = truthy(body["error"])
	}
	if msg == "" {
		msg = fallbackFailure
	}
	return State{Status: StatusError, Error: msg}, false
}

func transportFailure(err error) State {
	msg := err.Error()
	if msg == "" {
		msg = fallbackTransport
	}
	return State{Status: StatusError, Error: msg}
}

// decodeBody parses a JSON object response, yielding an empty map for
// anything else.
func decodeBody(r io.Reader) map[string]any {
	var body map[string]any
	data, err := io.ReadAll(io.LimitReader(r, maxResponseBody))
	if err != nil || json.Unmarshal(data, &body) != nil || body == nil {
		return map[string]any{}
	}
	return body
}

// truthy renders a JSON value as text, returning "" for null, false, 0
// and the empty string.
func truthy(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if !t {
			return ""
		}
		return "true"
	case float64:
		if t == 0 {
			return ""
		}
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// transition sets the state. Caller holds mu.
func (c *Controller) transition(s State) State {
	c.state = s
	return s
}

// scheduleReset arms the timer returning the form to idle. Caller holds mu.
func (c *Controller) scheduleReset() {
	gen := c.generation
	c.resetTimer = time.AfterFunc(c.resetDelay, func() {
		c.mu.Lock()
		if c.generation != gen || c.state.Status == StatusSending || c.state.Status == StatusIdle {
			c.mu.Unlock()
			return
		}
		idle := c.transition(State{Status: StatusIdle})
		c.resetTimer = nil
		c.mu.Unlock()
		c.notify(idle)
	})
}

func (c *Controller) notify(s State) {
	if c.onChange != nil {
		c.onChange(s)
	}
}
