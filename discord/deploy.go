package discord

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ViBiOh/httputils/v4/pkg/httpjson"
	"github.com/ViBiOh/httputils/v4/pkg/telemetry"
)

// DeployError is returned when Discord refuses or fails a commands registration
type DeployError struct {
	Err        error
	StatusCode int
}

func (de *DeployError) Error() string {
	if de.StatusCode == 0 {
		return fmt.Sprintf("deploy commands: %s", de.Err)
	}

	return fmt.Sprintf("deploy commands: HTTP/%d: %s", de.StatusCode, de.Err)
}

func (de *DeployError) Unwrap() error {
	return de.Err
}

// DeployCommands overwrites every global command of the application with the given ones
func (s Service) DeployCommands(ctx context.Context, commands []Command) (output []Command, err error) {
	ctx, end := telemetry.StartSpan(ctx, s.tracer, "deploy_commands")
	defer end(&err)

	if commands == nil {
		commands = []Command{}
	}

	resp, err := s.req.Method(http.MethodPut).Path("/applications/%s/commands", s.applicationID).StreamJSON(ctx, commands)
	if err != nil {
		deployErr := &DeployError{Err: err}
		if resp != nil {
			deployErr.StatusCode = resp.StatusCode
		}

		return nil, deployErr
	}

	if err = httpjson.Read(resp, &output); err != nil {
		return nil, &DeployError{Err: fmt.Errorf("read: %w", err), StatusCode: resp.StatusCode}
	}

	return output, nil
}

// Commands lists the global commands currently registered for the application
func (s Service) Commands(ctx context.Context) (output []Command, err error) {
	ctx, end := telemetry.StartSpan(ctx, s.tracer, "commands")
	defer end(&err)

	resp, err := s.req.Method(http.MethodGet).Path("/applications/%s/commands", s.applicationID).Send(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	if err = httpjson.Read(resp, &output); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return output, nil
}
