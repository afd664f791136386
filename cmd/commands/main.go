package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/RasmusDWN/valorant-bot/app"
	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

// Registers the slash command table. With ENV=development the commands go
// to the dev guild for instant availability, otherwise they are pushed
// globally.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("failed to load .env file")
	}

	token := os.Getenv("DISCORD_TOKEN")
	appID := os.Getenv("DISCORD_APP_ID")
	guildID := ""

	if os.Getenv("ENV") == "development" {
		token = os.Getenv("DEV_DISCORD_TOKEN")
		guildID = os.Getenv("DEV_GUILD_ID")
	}

	dg, err := discordgo.New(fmt.Sprintf("Bot %s", token))
	if err != nil {
		log.Fatalf("failed to construct discord client: %v", err)
	}
	defer func() {
		if err := dg.Close(); err != nil {
			slog.Error("failed to close discord dg", "err", err)
		}
	}()

	if _, err := dg.ApplicationCommandBulkOverwrite(appID, guildID, app.Commands); err != nil {
		log.Fatalf("failed to bulk overwrite commands: %v", err)
	}
}
