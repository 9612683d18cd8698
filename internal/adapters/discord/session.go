package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
)

// NewSession arma la sesión con el único intent que necesitamos (Guilds, no privilegiado).
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New(BotAuth(token))
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	s.LogLevel = discordgo.LogError
	return s, nil
}

// RedirectClientLogs manda los errores internos de discordgo a logger. No son fatales.
func RedirectClientLogs(logger *log.Logger) {
	discordgo.Logger = func(msgL, caller int, format string, a ...interface{}) {
		if msgL > discordgo.LogError {
			return
		}
		logger.Printf("❌ Discord client error: "+format, a...)
	}
}
