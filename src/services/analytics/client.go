// Package analytics sends product events to the collector configured by
// ANALYTICS_URL. Without an endpoint events are only logged.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrClosed = errors.New("analytics: client closed")

// Event is the envelope posted to the collector.
type Event struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	At     string      `json:"at"`
	Params interface{} `json:"params"`
}

type Client struct {
	endpoint string
	http     *http.Client

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// New builds a client. An empty endpoint gives a log-only client.
func New(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

// Track records an event without blocking the caller.
func (c *Client) Track(ctx context.Context, name string, params interface{}) {
	ev := Event{ID: uuid.NewString(), Name: name, At: time.Now().UTC().Format(time.RFC3339), Params: params}
	log.Printf("[analytics] %s %+v", name, params)
	if c.endpoint == "" {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		log.Printf("⚠️ [analytics] dropped %s: %v", name, ErrClosed)
		return
	}
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.http.Timeout)
		defer cancel()
		if err := c.post(ctx, ev); err != nil {
			log.Printf("⚠️ [analytics] send %s: %v", name, err)
		}
	}()
}

func (c *Client) post(ctx context.Context, ev Event) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= 300 {
		return errors.New("collector returned " + res.Status)
	}
	return nil
}

// Close stops accepting events and waits for in-flight posts, or for ctx.
func (c *Client) Close(ctx context.Context) error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
