package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/flowmark/flowmark/pkg/httputil"
	"github.com/flowmark/flowmark/pkg/observability"
)

// DefaultKrokiURL is the public Kroki instance used when no service URL
// is configured.
const DefaultKrokiURL = "https://kroki.io"

// Kroki renders markup through a Kroki-compatible HTTP service.
// Transient failures (network errors, 5xx responses) are retried with
// exponential backoff; 4xx responses fail immediately.
type Kroki struct {
	baseURL  string
	client   *http.Client
	attempts int
	delay    time.Duration
}

// NewKroki creates a client for the service at baseURL. An empty baseURL
// selects [DefaultKrokiURL].
func NewKroki(baseURL string) *Kroki {
	if baseURL == "" {
		baseURL = DefaultKrokiURL
	}
	return &Kroki{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: 30 * time.Second},
		attempts: 3,
		delay:    time.Second,
	}
}

// Render posts the markup to the service's mermaid SVG endpoint and
// returns the artifact bytes.
func (k *Kroki) Render(ctx context.Context, markup string) ([]byte, error) {
	observability.Render().OnRenderStart(ctx, "kroki")
	start := time.Now()

	var out []byte
	err := httputil.Retry(ctx, k.attempts, k.delay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			k.baseURL+"/mermaid/svg", strings.NewReader(markup))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "text/plain")

		resp, err := k.client.Do(req)
		if err != nil {
			return httputil.Retryable(err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return httputil.Retryable(err)
		}

		switch {
		case resp.StatusCode >= 500:
			return httputil.Retryable(fmt.Errorf("render service %s: %s", resp.Status, summarize(body)))
		case resp.StatusCode != http.StatusOK:
			return fmt.Errorf("render service %s: %s", resp.Status, summarize(body))
		}

		out = body
		return nil
	})
	observability.Render().OnRenderComplete(ctx, "kroki", len(out), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// summarize truncates a response body for inclusion in error messages.
func summarize(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}

// Ensure Kroki implements Renderer.
var _ Renderer = (*Kroki)(nil)
