package brightid

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/0xbanksD/brightid-discord-bot/fallback"
	"github.com/ViBiOh/flags"
	"github.com/ViBiOh/httputils/v4/pkg/httpjson"
	"github.com/ViBiOh/httputils/v4/pkg/telemetry"
	"go.opentelemetry.io/otel/trace"
)

var errNoNode = errors.New("no default node")

// Config of package
type Config struct {
	Node  string
	Nodes string
	App   string
}

// Service of package
type Service struct {
	tracer  trace.Tracer
	fetcher fallback.Fetcher
	app     string
	nodes   fallback.Set
}

// Verification of a user for an app, as reported by a node
type Verification struct {
	App        string   `json:"app"`
	ContextIDs []string `json:"contextIds"`
	Timestamp  int64    `json:"timestamp"`
	Unique     bool     `json:"unique"`
}

type nodeResponse struct {
	ErrorMessage string       `json:"errorMessage"`
	Data         Verification `json:"data"`
	ErrorNum     int          `json:"errorNum"`
	Error        bool         `json:"error"`
}

// Flags adds flags for configuring package
func Flags(fs *flag.FlagSet, prefix string, overrides ...flags.Override) *Config {
	var config Config

	flags.New("Node", "Default node URL").Prefix(prefix).DocPrefix("brightid").StringVar(fs, &config.Node, "https://app.brightid.org/node/v6", overrides)
	flags.New("Nodes", "Fallback nodes, as JSON array of {\"url\",\"priority\",\"timeout\"}").Prefix(prefix).DocPrefix("brightid").StringVar(fs, &config.Nodes, "", overrides)
	flags.New("App", "App name").Prefix(prefix).DocPrefix("brightid").StringVar(fs, &config.App, "Discord", overrides)

	return &config
}

// New creates new Service from Config
func New(config *Config, tracerProvider trace.TracerProvider) (Service, error) {
	node := strings.TrimSpace(config.Node)
	if len(node) == 0 {
		return Service{}, errNoNode
	}

	var candidates []fallback.Endpoint
	if nodes := strings.TrimSpace(config.Nodes); len(nodes) != 0 {
		if err := json.Unmarshal([]byte(nodes), &candidates); err != nil {
			return Service{}, fmt.Errorf("parse nodes: %w", err)
		}
	}

	for index, candidate := range candidates {
		if len(candidate.URL) == 0 {
			return Service{}, fmt.Errorf("node #%d has no url", index)
		}
	}

	service := Service{
		fetcher: fallback.New(tracerProvider),
		app:     config.App,
		nodes: fallback.Set{
			Default:    fallback.Endpoint{URL: node},
			Candidates: candidates,
		},
	}

	if tracerProvider != nil {
		service.tracer = tracerProvider.Tracer("brightid")
	}

	return service, nil
}

// Verification retrieves the verification of the given user for the configured app.
// fallback.ErrNoEndpoint is returned when no node knows the user or none is reachable.
func (s Service) Verification(ctx context.Context, userID string) (output Verification, err error) {
	ctx, end := telemetry.StartSpan(ctx, s.tracer, "verification")
	defer end(&err)

	resp, err := s.fetcher.Fetch(ctx, fmt.Sprintf("/verifications/%s/%s", url.PathEscape(s.app), url.PathEscape(userID)), s.nodes)
	if err != nil {
		return output, fmt.Errorf("fetch: %w", err)
	}

	var payload nodeResponse
	if err = httpjson.Read(resp, &payload); err != nil {
		return output, fmt.Errorf("read: HTTP/%d: %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || payload.Error {
		return output, fmt.Errorf("node: HTTP/%d: %s", resp.StatusCode, payload.ErrorMessage)
	}

	return payload.Data, nil
}
