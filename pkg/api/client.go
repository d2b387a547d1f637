// Package api talks to the remote recipe service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tableflip.dev/forkful/pkg/recipe"
)

const (
	// DefaultBaseURL is the public recipe service endpoint.
	DefaultBaseURL = "https://forkify-api.herokuapp.com/api/v2/recipes/"

	// DefaultTimeout bounds every service call.
	DefaultTimeout = 10 * time.Second
)

// Client is a thin JSON client for the recipe service.
type Client struct {
	BaseURL    string
	Key        string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// New returns a client with defaults filled in.
func New(key string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		Key:        key,
		Timeout:    DefaultTimeout,
		HTTPClient: http.DefaultClient,
	}
}

// GetRecipe fetches a single recipe by id. Any failure, timeout included,
// comes back as a NotFoundError.
func (c *Client) GetRecipe(ctx context.Context, id string) (*recipe.Recipe, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, c.recipeURL(id), nil, &env); err != nil {
		return nil, &NotFoundError{ID: id, Err: err}
	}
	if env.Data.Recipe == nil {
		return nil, &NotFoundError{ID: id, Err: fmt.Errorf("empty recipe in response")}
	}
	return fromWire(env.Data.Recipe), nil
}

// Search returns the result projections for a query, in service order.
func (c *Client) Search(ctx context.Context, query string) ([]recipe.SearchResult, error) {
	u := c.searchURL(query)
	var env envelope
	if err := c.do(ctx, http.MethodGet, u, nil, &env); err != nil {
		return nil, err
	}
	return fromWireResults(env.Data.Recipes), nil
}

// CreateRecipe posts a user-submitted recipe and returns the stored copy,
// which carries the service-assigned id and owner key.
func (c *Client) CreateRecipe(ctx context.Context, r *recipe.Recipe) (*recipe.Recipe, error) {
	body, err := json.Marshal(toWire(r))
	if err != nil {
		return nil, &UploadError{Err: err}
	}
	var env envelope
	if err := c.do(ctx, http.MethodPost, c.recipeURL(""), body, &env); err != nil {
		return nil, &UploadError{Err: err}
	}
	if env.Data.Recipe == nil {
		return nil, &UploadError{Err: fmt.Errorf("empty recipe in response")}
	}
	return fromWire(env.Data.Recipe), nil
}

func (c *Client) recipeURL(id string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u := base + id
	if c.Key != "" {
		u += "?key=" + url.QueryEscape(c.Key)
	}
	return u
}

func (c *Client) searchURL(query string) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u := base + "?search=" + url.QueryEscape(query)
	if c.Key != "" {
		u += "&key=" + url.QueryEscape(c.Key)
	}
	return u
}

// do runs the request as a race between the call and a timer: whichever
// settles first wins, and the loser is abandoned. There is no cancellation
// signal for the loser; the in-flight request leaks until the transport
// gives up on it.
func (c *Client) do(ctx context.Context, method, rawurl string, body []byte, v any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawurl, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	type settled struct {
		resp *http.Response
		err  error
	}
	done := make(chan settled, 1)
	go func() {
		resp, err := client.Do(req)
		done <- settled{resp: resp, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-timer.C:
		return fmt.Errorf("%w (after %s)", ErrTimeout, timeout)
	case <-ctx.Done():
		return ctx.Err()
	case s := <-done:
		if s.err != nil {
			return s.err
		}
		defer s.resp.Body.Close()
		return decode(s.resp, v)
	}
}

func decode(resp *http.Response, v any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := struct {
			Message string `json:"message"`
		}{}
		_ = json.Unmarshal(data, &msg)
		return &ServiceError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(msg.Message)}
	}
	return json.Unmarshal(data, v)
}
