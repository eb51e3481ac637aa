package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/0xbanksD/brightid-discord-bot/brightid"
	"github.com/ViBiOh/flags"
	"github.com/ViBiOh/httputils/v4/pkg/logger"
)

type configuration struct {
	logger   *logger.Config
	brightid *brightid.Config

	user *string
}

func newConfiguration() configuration {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	fs.Usage = flags.Usage(fs)

	config := configuration{
		logger:   logger.Flags(fs, "logger"),
		brightid: brightid.Flags(fs, ""),

		user: flags.New("User", "Discord user ID to check").DocPrefix("verify").String(fs, "", nil),
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
