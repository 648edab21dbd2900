package discord

import (
	"fmt"
	"strings"

	apperrors "discord-mcp/pkg/errors"

	"github.com/bwmarrin/discordgo"
)

// ResolveGuild resolves a guild reference (ID or name) to a joined guild.
// An empty reference is valid only when the bot is joined to exactly one
// guild. When several joined guilds share a name, the first in enumeration
// order wins; this ambiguity is accepted, not an error.
func ResolveGuild(c Client, ref string) (*discordgo.Guild, error) {
	guilds := c.Guilds()

	if ref == "" {
		switch len(guilds) {
		case 0:
			return nil, apperrors.NewGuildNotFound(ref, "Bot is not a member of any servers")
		case 1:
			return guilds[0], nil
		default:
			return nil, apperrors.NewGuildNotFound(ref,
				"Bot is in multiple servers. Please specify server name or ID. Available servers: "+formatGuildList(guilds))
		}
	}

	// ID lookup first; any failure degrades silently to the name fallback.
	if guild, err := c.Guild(ref); err == nil && guild != nil {
		return guild, nil
	}

	for _, guild := range guilds {
		if strings.EqualFold(guild.Name, ref) {
			return guild, nil
		}
	}

	return nil, apperrors.NewGuildNotFound(ref,
		fmt.Sprintf("Server %q not found. Available servers: %s", ref, formatGuildList(guilds)))
}

// ResolveChannel resolves a channel reference (ID or name, optionally
// prefixed with '#') to a text-capable channel within the resolved guild.
// Guild resolution failures take precedence in error reporting.
func ResolveChannel(c Client, channelRef, guildRef string) (*discordgo.Channel, *discordgo.Guild, error) {
	guild, err := ResolveGuild(c, guildRef)
	if err != nil {
		return nil, nil, err
	}

	// ID lookup against the global channel namespace. An ID hit only counts
	// if the channel is text-capable and, when a guild was specified, owned
	// by the resolved guild.
	if ch, err := c.Channel(channelRef); err == nil && ch != nil {
		if IsTextChannel(ch) && (guildRef == "" || ch.GuildID == guild.ID) {
			return ch, guild, nil
		}
	}

	channels, err := c.GuildChannels(guild.ID)
	if err != nil {
		return nil, nil, err
	}

	rawName := strings.ToLower(channelRef)
	bareName := strings.ToLower(strings.TrimPrefix(channelRef, "#"))

	for _, ch := range channels {
		if !IsTextChannel(ch) {
			continue
		}
		name := strings.ToLower(ch.Name)
		if name == rawName || name == bareName {
			// First match in enumeration order wins.
			return ch, guild, nil
		}
	}

	return nil, nil, apperrors.NewChannelNotFound(channelRef,
		fmt.Sprintf("Channel %q not found in server %q. Available channels: %s",
			channelRef, guild.Name, formatChannelList(channels)))
}

func formatGuildList(guilds []*discordgo.Guild) string {
	if len(guilds) == 0 {
		return "none"
	}
	entries := make([]string, 0, len(guilds))
	for _, guild := range guilds {
		entries = append(entries, fmt.Sprintf("%s (ID: %s)", guild.Name, guild.ID))
	}
	return strings.Join(entries, ", ")
}

func formatChannelList(channels []*discordgo.Channel) string {
	var entries []string
	for _, ch := range channels {
		if !IsTextChannel(ch) {
			continue
		}
		entries = append(entries, "#"+ch.Name)
	}
	if len(entries) == 0 {
		return "none"
	}
	return strings.Join(entries, ", ")
}
