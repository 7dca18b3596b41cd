package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/2beens/movimentai/internal/telemetry/metrics"
	"github.com/2beens/movimentai/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultTimeout = 5 * time.Second

// Relay forwards JSON payloads to an external webhook. Delivery is best
// effort: failures are logged and counted, never returned to the caller of Fire.
type Relay struct {
	name       string
	url        string
	timeout    time.Duration
	httpClient *http.Client
	metrics    *metrics.Manager

	wg sync.WaitGroup
}

// New returns a relay posting to url. An empty url gives a relay that drops everything.
func New(name, url string, timeout time.Duration, httpClient *http.Client, metricsManager *metrics.Manager) *Relay {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Relay{
		name:       name,
		url:        url,
		timeout:    timeout,
		httpClient: httpClient,
		metrics:    metricsManager,
	}
}

func (r *Relay) Enabled() bool {
	return r != nil && r.url != ""
}

// Send posts payload and waits for the response.
func (r *Relay) Send(ctx context.Context, payload any) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "relay.send")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("relay", r.name))

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay %s responded with status %d", r.name, resp.StatusCode)
	}
	return nil
}

// Fire sends payload in the background. The request context is not used, so
// the send outlives the request that triggered it.
func (r *Relay) Fire(payload any) {
	if !r.Enabled() {
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.Send(context.Background(), payload); err != nil {
			r.metrics.CounterRelayFailures.WithLabelValues(r.name).Inc()
			log.Warnf("relay %s: %s", r.name, err)
			return
		}
		log.Tracef("relay %s: payload delivered", r.name)
	}()
}

// Wait blocks until all fired sends are done.
func (r *Relay) Wait() {
	r.wg.Wait()
}
