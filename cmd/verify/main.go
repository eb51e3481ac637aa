package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xbanksD/brightid-discord-bot/brightid"
	"github.com/0xbanksD/brightid-discord-bot/fallback"
	"github.com/ViBiOh/httputils/v4/pkg/logger"
)

type verifier interface {
	Verification(context.Context, string) (brightid.Verification, error)
}

func main() {
	config := newConfiguration()

	ctx := context.Background()

	logger.Init(config.logger)

	if len(*config.user) == 0 {
		fatalOnErr(ctx, errors.New("no user given"), "config")
	}

	brightidService, err := brightid.New(config.brightid, nil)
	fatalOnErr(ctx, err, "brightid")

	fatalOnErr(ctx, verify(ctx, brightidService, *config.user), "verification")
}

func verify(ctx context.Context, service verifier, user string) error {
	verification, err := service.Verification(ctx, user)
	if errors.Is(err, fallback.ErrNoEndpoint) {
		slog.LogAttrs(ctx, slog.LevelWarn, "No node knows the user", slog.String("user", user))
		return nil
	}

	if err != nil {
		return fmt.Errorf("user `%s`: %w", user, err)
	}

	slog.LogAttrs(ctx, slog.LevelInfo, "Verification", slog.String("user", user), slog.Bool("unique", verification.Unique), slog.Int("contexts", len(verification.ContextIDs)))

	return nil
}
