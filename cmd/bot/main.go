package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/RasmusDWN/valorant-bot/app"
	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("failed to load .env file")
	}

	token := os.Getenv("DISCORD_TOKEN")
	if os.Getenv("ENV") == "development" {
		token = os.Getenv("DEV_DISCORD_TOKEN")
	}
	if token == "" {
		log.Fatalf("discord token is not set")
	}

	liquipediaKey := os.Getenv("LIQUIPEDIA_API_KEY")
	if liquipediaKey == "" {
		log.Fatalf("LIQUIPEDIA_API_KEY is not set")
	}

	dg, err := discordgo.New(fmt.Sprintf("Bot %s", token))
	if err != nil {
		log.Fatalf("failed to construct discord client: %v", err)
	}
	defer func() {
		_ = dg.Close()
	}()

	state := app.MakeState(dg, liquipediaKey)
	dg.AddHandler(state.HandleInteractionCreate)

	// the session janitor fires OnEviction when pagers expire
	go state.Sessions.Start()
	defer state.Sessions.Stop()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	slog.Info("starting valorant-bot service")
	if err = dg.Open(); err != nil {
		log.Fatalf("failed to connect to events: %v", err)
	}

	slog.Info("valorant-bot service is listening for events")
	<-signalChan
}
