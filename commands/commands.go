package commands

import "github.com/0xbanksD/brightid-discord-bot/discord"

var (
	Help = discord.NewCommand("help", "Shows how to use the BrightID bot")

	Verify = discord.NewCommand("verify", "Sends a BrightID QR code for users to connect with their BrightID")

	Invite = discord.NewCommand("invite", "Invite the BrightID bot to one of your servers")
)

// All returns the commands to register, in registration order
func All() []discord.Command {
	return []discord.Command{Help, Verify, Invite}
}
