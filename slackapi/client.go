// Copyright (c) 2018 Tim Heckman
//
// Use of this source code is governed by the MIT License that can be found in
// the LICENSE file at the root of this repository.

package slackapi

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/theckman/slackfn/internal/json"
)

// BaseURL is the root of the Slack Web API.
const BaseURL = "https://slack.com/api"

const (
	// MaxListLimit is the largest page size Slack documents for the listing
	// endpoints. Larger values are clamped to it before being sent.
	MaxListLimit = 200

	// DefaultListLimit is the page size used for channel and user listings
	// when the caller has no preference.
	DefaultListLimit = 100

	// DefaultHistoryLimit is the number of messages fetched from channel
	// history when the caller has no preference.
	DefaultHistoryLimit = 10
)

// Value is a decoded JSON document as returned by the Slack API. It holds the
// types produced by encoding/json when decoding into an interface{}, and its
// shape is never checked by this package.
type Value = interface{}

// HTTPClient represents the functionality we need from an *http.Client, or
// similar.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is a client for the subset of the Slack Web API needed to read and
// write conversations as a bot. Every method issues exactly one HTTP request
// and returns the decoded response body as-is: a response with "ok": false is
// not an error as far as this package is concerned.
//
// The bot token and team ID are fixed at construction. A *Client is safe for
// concurrent use if its HTTPClient is.
type Client struct {
	botToken string
	teamID   string

	c        HTTPClient
	endpoint string
	log      *zap.Logger
}

// Option configures a *Client.
type Option func(*Client)

// WithHTTPClient sets the HTTPClient used for requests. The default is an
// *http.Client with no timeout.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.c = hc }
}

// WithBaseURL overrides the API root, which is mostly useful for pointing the
// client at a test server. Trailing slashes are dropped.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.endpoint = strings.TrimRight(u, "/") }
}

// WithLogger sets the logger requests are reported to at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a new *Client authenticating as the bot identified by botToken,
// scoping listings to teamID.
func New(botToken, teamID string, opts ...Option) (*Client, error) {
	if len(botToken) == 0 {
		return nil, errors.New("must provide a Slack bot token")
	}

	if len(teamID) == 0 {
		return nil, errors.New("must provide the Slack team ID")
	}

	client := &Client{
		botToken: botToken,
		teamID:   teamID,
		c:        &http.Client{},
		endpoint: BaseURL,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.c == nil {
		return nil, errors.New("must provide an http client")
	}

	if _, err := url.Parse(client.endpoint); err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", client.endpoint)
	}

	if client.log == nil {
		client.log = zap.NewNop()
	}

	return client, nil
}

// TeamID returns the team ID listings are scoped to.
func (c *Client) TeamID() string { return c.teamID }

func (c *Client) get(ctx context.Context, method string, val url.Values) (Value, error) {
	req, err := getReq(ctx, c.endpoint+"/"+method, val)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", method)
	}

	return c.do(req, method)
}

func (c *Client) postJSON(ctx context.Context, method string, body interface{}) (Value, error) {
	req, err := postJSONReq(ctx, c.endpoint+"/"+method, body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", method)
	}

	return c.do(req, method)
}

// do sends the request and decodes the response body. Any non-2xx status is
// returned as a *StatusError; the body of a 2xx response must be valid JSON.
func (c *Client) do(req *http.Request, method string) (Value, error) {
	setAuth(req, c.botToken)

	start := time.Now()

	resp, err := c.c.Do(req)
	if err != nil {
		c.log.Debug("slack request failed",
			zap.String("http_method", req.Method),
			zap.String("api_method", method),
			zap.Error(err),
		)
		return nil, errors.Wrapf(err, "failed to make %s request to %s", req.Method, method)
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s response body", method)
	}

	c.log.Debug("slack request",
		zap.String("http_method", req.Method),
		zap.String("api_method", method),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errors.Errorf("failed to decode %s response: empty body", method)
	}

	var v Value

	if err := json.Unmarshal(body, &v); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s response", method)
	}

	return v, nil
}

func clampLimit(limit int) int {
	if limit > MaxListLimit {
		return MaxListLimit
	}

	return limit
}
