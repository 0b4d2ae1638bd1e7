package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jonwraymond/utilkit/observe"
)

// Doer sends an HTTP request. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches JSON documents over HTTP.
type Client struct {
	doer     Doer
	config   Config
	observer observe.Observer
	logger   observe.Logger
	execute  observe.ExecuteFunc
	err      error
}

// Option configures a Client.
type Option func(*Client)

// WithDoer sets the transport used for requests.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		if d == nil {
			c.err = ErrNilDoer
			return
		}
		c.doer = d
	}
}

// WithConfig sets the client configuration.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		c.config = cfg
	}
}

// WithObserver instruments every request with spans, metrics, and logs.
func WithObserver(obs observe.Observer) Option {
	return func(c *Client) {
		c.observer = obs
	}
}

// getJSONOp identifies GetJSON calls in telemetry.
var getJSONOp = observe.OpMeta{Component: "fetch", Name: "get_json"}

// New creates a Client. Without WithDoer an *http.Client bounded by
// Config.Timeout is used.
func New(opts ...Option) (*Client, error) {
	c := &Client{config: DefaultConfig()}
	for _, opt := range opts {
		opt(c)
	}
	if c.err != nil {
		return nil, c.err
	}
	if err := c.config.Validate(); err != nil {
		return nil, err
	}
	c.config = c.config.withDefaults()

	if c.doer == nil {
		c.doer = &http.Client{Timeout: c.config.Timeout}
	}

	c.logger = observe.NopLogger()
	c.execute = c.get
	if c.observer != nil {
		mw, err := observe.MiddlewareFromObserver(c.observer)
		if err != nil {
			return nil, fmt.Errorf("fetch: instrument client: %w", err)
		}
		c.logger = c.observer.Logger().WithOp(getJSONOp)
		c.execute = mw.Wrap(c.get)
	}

	return c, nil
}

// GetJSON issues one GET to url and returns the decoded body: a
// map[string]any, []any, string, float64, bool, or nil.
func (c *Client) GetJSON(ctx context.Context, url string) (any, error) {
	var out any
	if err := c.GetJSONInto(ctx, url, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetJSONInto issues one GET to url and decodes the body into v.
func (c *Client) GetJSONInto(ctx context.Context, url string, v any) error {
	_, err := c.execute(ctx, getJSONOp, request{url: url, into: v})
	return err
}

// GetJSONAs issues one GET to url and decodes the body into a T.
func GetJSONAs[T any](ctx context.Context, c *Client, url string) (T, error) {
	var out T
	if err := c.GetJSONInto(ctx, url, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

type request struct {
	url  string
	into any
}

// get is the uninstrumented operation behind every public method.
func (c *Client) get(ctx context.Context, _ observe.OpMeta, input any) (any, error) {
	r := input.(request)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: get %s: %w", r.url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug(ctx, "response received",
		observe.Field{Key: "url", Value: r.url},
		observe.Field{Key: "status", Value: resp.StatusCode},
	)

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(r.into); err != nil {
		return nil, fmt.Errorf("fetch: decode %s: %w", r.url, err)
	}
	// The body must hold exactly one JSON value; only whitespace may follow.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("fetch: decode %s: %w", r.url, ErrTrailingData)
	}
	return nil, nil
}

var defaultClient = func() *Client {
	c, err := New()
	if err != nil {
		panic(err)
	}
	return c
}()

// GetJSON fetches url with a default Client.
func GetJSON(ctx context.Context, url string) (any, error) {
	return defaultClient.GetJSON(ctx, url)
}
