package discord

import (
	"errors"
	"flag"

	"github.com/ViBiOh/flags"
	"github.com/ViBiOh/httputils/v4/pkg/request"
	"go.opentelemetry.io/otel/trace"
)

var (
	errNoApplicationID = errors.New("no application id")
	errNoToken         = errors.New("no token")
)

// Config of package
type Config struct {
	URL           string
	ApplicationID string
	Token         string
}

// Service of package
type Service struct {
	tracer        trace.Tracer
	req           request.Request
	applicationID string
}

// Flags adds flags for configuring package
func Flags(fs *flag.FlagSet, prefix string, overrides ...flags.Override) *Config {
	var config Config

	flags.New("URL", "API URL").Prefix(prefix).DocPrefix("discord").StringVar(fs, &config.URL, "https://discord.com/api/v9", overrides)
	flags.New("ApplicationID", "Application ID").Prefix(prefix).DocPrefix("discord").StringVar(fs, &config.ApplicationID, "", overrides)
	flags.New("Token", "Bot token").Prefix(prefix).DocPrefix("discord").StringVar(fs, &config.Token, "", overrides)

	return &config
}

// New creates new Service from Config
func New(config *Config, tracerProvider trace.TracerProvider) (Service, error) {
	if len(config.ApplicationID) == 0 {
		return Service{}, errNoApplicationID
	}

	if len(config.Token) == 0 {
		return Service{}, errNoToken
	}

	service := Service{
		applicationID: config.ApplicationID,
		req:           request.New().URL(config.URL).Header("Authorization", "Bot "+config.Token),
	}

	if tracerProvider != nil {
		service.tracer = tracerProvider.Tracer("discord")
	}

	return service, nil
}
