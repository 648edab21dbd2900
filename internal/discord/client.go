// Package discord wraps the bot's discordgo session behind a small client
// interface and implements guild/channel resolution and conversation
// scanning on top of it.
package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Client is the slice of the Discord session the resolvers, scanner, and
// tool handlers need. It is passed explicitly into every call; nothing in
// this package holds session state.
type Client interface {
	// Guilds returns the guilds the bot is currently joined to, in the
	// session's enumeration order.
	Guilds() []*discordgo.Guild
	// Guild looks a guild up by its ID.
	Guild(guildID string) (*discordgo.Guild, error)
	// GuildChannels lists the channels of a guild.
	GuildChannels(guildID string) ([]*discordgo.Channel, error)
	// Channel looks a channel up by its ID in the global channel namespace.
	Channel(channelID string) (*discordgo.Channel, error)
	// ChannelMessages fetches up to limit most recent messages, newest first.
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string) ([]*discordgo.Message, error)
	// ChannelMessageSend sends a plain message to a channel.
	ChannelMessageSend(channelID, content string) (*discordgo.Message, error)
	// ChannelMessageSendReply sends a threaded reply to a referenced message.
	ChannelMessageSendReply(channelID, content string, reference *discordgo.MessageReference) (*discordgo.Message, error)
	// BotUser returns the session's own user.
	BotUser() *discordgo.User
}

// Gateway adapts a live *discordgo.Session to the Client interface.
type Gateway struct {
	session *discordgo.Session
}

// NewGateway creates a Gateway over an opened session.
func NewGateway(session *discordgo.Session) *Gateway {
	return &Gateway{session: session}
}

func (g *Gateway) Guilds() []*discordgo.Guild {
	return g.session.State.Guilds
}

func (g *Gateway) Guild(guildID string) (*discordgo.Guild, error) {
	return g.session.Guild(guildID)
}

func (g *Gateway) GuildChannels(guildID string) ([]*discordgo.Channel, error) {
	return g.session.GuildChannels(guildID)
}

func (g *Gateway) Channel(channelID string) (*discordgo.Channel, error) {
	return g.session.Channel(channelID)
}

func (g *Gateway) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string) ([]*discordgo.Message, error) {
	return g.session.ChannelMessages(channelID, limit, beforeID, afterID, aroundID)
}

func (g *Gateway) ChannelMessageSend(channelID, content string) (*discordgo.Message, error) {
	return g.session.ChannelMessageSend(channelID, content)
}

func (g *Gateway) ChannelMessageSendReply(channelID, content string, reference *discordgo.MessageReference) (*discordgo.Message, error) {
	return g.session.ChannelMessageSendReply(channelID, content, reference)
}

func (g *Gateway) BotUser() *discordgo.User {
	return g.session.State.User
}

// IsTextChannel reports whether a channel can carry plain text messages.
// Voice, category, and DM channel kinds are excluded from resolution.
func IsTextChannel(ch *discordgo.Channel) bool {
	switch ch.Type {
	case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews:
		return true
	default:
		return false
	}
}
