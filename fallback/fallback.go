package fallback

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/ViBiOh/httputils/v4/pkg/request"
	"github.com/ViBiOh/httputils/v4/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTimeout applies to an endpoint without configured timeout
const DefaultTimeout = time.Second

var (
	// ErrNoEndpoint is returned when every endpoint has been tried and missed
	ErrNoEndpoint = errors.New("no endpoint available")

	// ErrNotFound marks an endpoint that answered 404
	ErrNotFound = errors.New("not found")
)

// Endpoint is a candidate node for a fetch
type Endpoint struct {
	URL       string `json:"url"`
	Priority  int    `json:"priority"`
	TimeoutMs uint   `json:"timeout,omitempty"`
}

// Timeout of a request to the endpoint
func (e Endpoint) Timeout() time.Duration {
	if e.TimeoutMs == 0 {
		return DefaultTimeout
	}

	return time.Duration(e.TimeoutMs) * time.Millisecond
}

// Set is the default endpoint and its fallback candidates, for a single fetch
type Set struct {
	Default    Endpoint
	Candidates []Endpoint
}

// Sorted returns a copy of candidates, in ascending priority. Equal priorities keep their given order.
func (s Set) Sorted() []Endpoint {
	sorted := slices.Clone(s.Candidates)

	slices.SortStableFunc(sorted, func(a, b Endpoint) int {
		return cmp.Compare(a.Priority, b.Priority)
	})

	return sorted
}

// Fetcher GETs a resource from the first endpoint of a Set that has it
type Fetcher struct {
	tracer    trace.Tracer
	transport http.RoundTripper
}

// New creates new Fetcher
func New(tracerProvider trace.TracerProvider) Fetcher {
	fetcher := Fetcher{
		transport: http.DefaultTransport,
	}

	if tracerProvider != nil {
		fetcher.tracer = tracerProvider.Tracer("fallback")
	}

	return fetcher
}

// Fetch GETs relativeURL from the default endpoint, then from each candidate by ascending priority,
// until one answers something else than a 404. The response body is left open for the caller.
func (f Fetcher) Fetch(ctx context.Context, relativeURL string, set Set) (*http.Response, error) {
	resp, err := f.attempt(ctx, 0, set.Default, relativeURL)
	if err == nil {
		return resp, nil
	}

	for index, endpoint := range set.Sorted() {
		if resp, err = f.attempt(ctx, index+1, endpoint, relativeURL); err == nil {
			return resp, nil
		}
	}

	return nil, ErrNoEndpoint
}

func (f Fetcher) attempt(ctx context.Context, index int, endpoint Endpoint, relativeURL string) (resp *http.Response, err error) {
	ctx, end := telemetry.StartSpan(ctx, f.tracer, "attempt", trace.WithAttributes(
		attribute.Int("index", index),
		attribute.String("endpoint", endpoint.URL),
	))
	defer end(&err)

	req, err := request.New().Method(http.MethodGet).URL(endpoint.URL+relativeURL).
		Header("Content-Type", "application/json").
		Header("Accept", "application/json").
		Build(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	client := http.Client{
		Transport: f.transport,
		Timeout:   endpoint.Timeout(),
	}

	resp, err = client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		if discardErr := request.DiscardBody(resp.Body); discardErr != nil {
			return nil, fmt.Errorf("discard: %w", discardErr)
		}

		return nil, ErrNotFound
	}

	return resp, nil
}
