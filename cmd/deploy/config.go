package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/0xbanksD/brightid-discord-bot/discord"
	"github.com/ViBiOh/flags"
	"github.com/ViBiOh/httputils/v4/pkg/logger"
)

type configuration struct {
	logger  *logger.Config
	discord *discord.Config
}

func newConfiguration() configuration {
	fs := flag.NewFlagSet("deploy", flag.ExitOnError)
	fs.Usage = flags.Usage(fs)

	config := configuration{
		logger:  logger.Flags(fs, "logger"),
		discord: discord.Flags(fs, ""),
	}

	_ = fs.Parse(os.Args[1:])

	return config
}

func fatalOnErr(ctx context.Context, err error, msg string) {
	if err == nil {
		return
	}

	slog.LogAttrs(ctx, slog.LevelError, msg, slog.Any("error", err))
	os.Exit(1)
}
