// Package client is the HTTP client for the chess game API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"bishoprook/internal/domain"
)

// ErrNotFound is returned when the server does not know the game id.
var ErrNotFound = errors.New("game not found")

type Client struct {
	baseURL string
	http    *fasthttp.Client

	defaultTimeout time.Duration
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.defaultTimeout = d }
}

func WithMaxConnsPerHost(n int) Option {
	return func(c *Client) { c.http.MaxConnsPerHost = n }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		http:           &fasthttp.Client{ReadTimeout: 10 * time.Second, WriteTimeout: 10 * time.Second, MaxConnsPerHost: 16},
		defaultTimeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health hits the API root and returns its greeting message.
func (c *Client) Health(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.doJSON(ctx, fasthttp.MethodGet, "/api/", &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// NewGame creates a game and returns its initial state.
func (c *Client) NewGame(ctx context.Context) (*domain.GameState, error) {
	var state domain.GameState
	if err := c.doJSON(ctx, fasthttp.MethodPost, "/api/game", &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Game fetches the current state of an existing game.
func (c *Client) Game(ctx context.Context, gameID string) (*domain.GameState, error) {
	var state domain.GameState
	if err := c.doJSON(ctx, fasthttp.MethodGet, "/api/game/"+gameID, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// PlayRound advances the game by one round and returns the new state.
func (c *Client) PlayRound(ctx context.Context, gameID string) (*domain.GameState, error) {
	var state domain.GameState
	if err := c.doJSON(ctx, fasthttp.MethodPost, "/api/game/"+gameID+"/round", &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// Reset restores a game to its starting position, keeping the same id.
func (c *Client) Reset(ctx context.Context, gameID string) (*domain.GameState, error) {
	var state domain.GameState
	if err := c.doJSON(ctx, fasthttp.MethodPost, "/api/game/"+gameID+"/reset", &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, out any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	req.Header.SetMethod(method)
	req.SetRequestURI(c.baseURL + path)
	req.Header.SetContentType("application/json")

	if err := c.http.DoDeadline(req, resp, c.computeDeadline(ctx)); err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	status := resp.StatusCode()
	if status == fasthttp.StatusNotFound {
		return ErrNotFound
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("game api error: status=%d body=%s", status, truncate(string(resp.Body()), 512))
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) computeDeadline(ctx context.Context) time.Time {
	if dl, ok := ctx.Deadline(); ok {
		clientDL := time.Now().Add(c.defaultTimeout)
		if dl.Before(clientDL) {
			return dl
		}
		return clientDL
	}
	return time.Now().Add(c.defaultTimeout)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
