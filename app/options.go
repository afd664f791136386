package app

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

func findOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// getStringOpt extracts a required string option. The platform enforces
// required options, so a missing one means a registration mismatch and is
// reported as an option error rather than a crash.
func getStringOpt(options []*discordgo.ApplicationCommandInteractionDataOption, name string) (string, error) {
	option := findOption(options, name)
	if option == nil {
		return "", OptionError{Name: name}
	}
	value, ok := option.Value.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", OptionError{Name: name, InvalidValue: option.Value}
	}
	return strings.TrimSpace(value), nil
}

// getOptionalStringOpt extracts an optional string option, empty when
// absent.
func getOptionalStringOpt(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	option := findOption(options, name)
	if option == nil {
		return ""
	}
	value, _ := option.Value.(string)
	return strings.TrimSpace(value)
}

func formatOptions(options []*discordgo.ApplicationCommandInteractionDataOption) string {
	var sb strings.Builder
	sb.WriteRune('[')
	for i, opt := range options {
		sb.WriteString(opt.Name)
		if i != len(options)-1 {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune(']')
	return sb.String()
}
