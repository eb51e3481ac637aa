package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/0xbanksD/brightid-discord-bot/commands"
	"github.com/0xbanksD/brightid-discord-bot/discord"
	"github.com/ViBiOh/httputils/v4/pkg/logger"
)

type deployer interface {
	DeployCommands(context.Context, []discord.Command) ([]discord.Command, error)
}

func main() {
	config := newConfiguration()

	ctx := context.Background()

	logger.Init(config.logger)

	discordService, err := discord.New(config.discord, nil)
	fatalOnErr(ctx, err, "discord")

	deploy(ctx, discordService, commands.All())
}

func deploy(ctx context.Context, service deployer, commands []discord.Command) {
	defer func() {
		if value := recover(); value != nil {
			slog.LogAttrs(ctx, slog.LevelError, "Some unknown error", slog.Any("value", value))
		}
	}()

	registered, err := service.DeployCommands(ctx, commands)
	if err != nil {
		logDeployError(ctx, err)
		return
	}

	for _, command := range registered {
		slog.LogAttrs(ctx, slog.LevelDebug, "Command registered", slog.String("name", command.Name), slog.String("id", command.ID))
	}

	slog.LogAttrs(ctx, slog.LevelInfo, "Successfully registered application commands.", slog.Int("count", len(registered)))
}

func logDeployError(ctx context.Context, err error) {
	var deployErr *discord.DeployError
	if errors.As(err, &deployErr) {
		slog.LogAttrs(ctx, slog.LevelError, "Deploy Commands Error", slog.Int("status", deployErr.StatusCode), slog.Any("error", deployErr.Err))
		return
	}

	slog.LogAttrs(ctx, slog.LevelError, "Deploy Commands Error", slog.String("message", err.Error()))
}
