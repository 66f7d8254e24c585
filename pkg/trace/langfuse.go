package trace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const DefaultHost = "https://cloud.langfuse.com"

// Client batches observability events and ships them to the Langfuse
// ingestion API. A nil *Client is a no-op, so callers never have to guard
// tracing calls; tracing must not change pipeline behavior.
type Client struct {
	host       string
	publicKey  string
	secretKey  string
	httpClient *http.Client

	mu     sync.Mutex
	events []event
}

type event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Timestamp string         `json:"timestamp"`
	Body      map[string]any `json:"body"`
}

type ingestionBatch struct {
	Batch []event `json:"batch"`
}

func NewClient(publicKey, secretKey, host string) *Client {
	if host == "" {
		host = DefaultHost
	}

	return &Client{
		host:       host,
		publicKey:  publicKey,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Trace groups the observations of one pipeline run.
type Trace struct {
	client *Client
	id     string
	name   string
}

func (c *Client) StartTrace(name string, input any) *Trace {
	if c == nil {
		return nil
	}

	id := uuid.NewString()
	c.add("trace-create", map[string]any{
		"id":        id,
		"name":      name,
		"input":     input,
		"timestamp": timestamp(time.Now()),
	})

	return &Trace{client: c, id: id, name: name}
}

func (t *Trace) Span(name string, input, output any, start, end time.Time) {
	if t == nil {
		return
	}

	t.client.add("span-create", map[string]any{
		"id":        uuid.NewString(),
		"traceId":   t.id,
		"name":      name,
		"input":     input,
		"output":    output,
		"startTime": timestamp(start),
		"endTime":   timestamp(end),
	})
}

func (t *Trace) Generation(name, model string, input, output any, metadata map[string]any, start, end time.Time) {
	if t == nil {
		return
	}

	body := map[string]any{
		"id":        uuid.NewString(),
		"traceId":   t.id,
		"name":      name,
		"model":     model,
		"input":     input,
		"output":    output,
		"startTime": timestamp(start),
		"endTime":   timestamp(end),
	}
	if len(metadata) > 0 {
		body["metadata"] = metadata
	}

	t.client.add("generation-create", body)
}

// End records the trace output. Langfuse upserts trace events by id, so this
// is a second trace-create carrying the same id.
func (t *Trace) End(output any) {
	if t == nil {
		return
	}

	t.client.add("trace-create", map[string]any{
		"id":        t.id,
		"name":      t.name,
		"output":    output,
		"timestamp": timestamp(time.Now()),
	})
}

// Flush posts all accumulated events in a single ingestion batch. The batch
// is cleared even when the post fails.
func (c *Client) Flush() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	events := c.events
	c.events = nil
	c.mu.Unlock()

	if len(events) == 0 {
		return nil
	}

	body, err := json.Marshal(ingestionBatch{Batch: events})
	if err != nil {
		return fmt.Errorf("langfuse encode: %w", err)
	}

	req, err := http.NewRequest("POST", c.host+"/api/public/ingestion", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("langfuse request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.publicKey, c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("langfuse ingestion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("langfuse ingestion: unexpected status %d", resp.StatusCode)
	}

	return nil
}

func (c *Client) add(eventType string, body map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = append(c.events, event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: timestamp(time.Now()),
		Body:      body,
	})
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
