package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// fakeClient is an in-memory Client for resolver and scanner tests.
type fakeClient struct {
	guilds        []*discordgo.Guild
	channelsByID  map[string]*discordgo.Channel
	guildChannels map[string][]*discordgo.Channel
	// messages are stored newest first, matching the platform's order.
	messages map[string][]*discordgo.Message
	self     *discordgo.User

	fetchErr   error
	fetchCalls int
}

func (f *fakeClient) Guilds() []*discordgo.Guild {
	return f.guilds
}

func (f *fakeClient) Guild(guildID string) (*discordgo.Guild, error) {
	for _, g := range f.guilds {
		if g.ID == guildID {
			return g, nil
		}
	}
	return nil, fmt.Errorf("unknown guild %s", guildID)
}

func (f *fakeClient) GuildChannels(guildID string) ([]*discordgo.Channel, error) {
	return f.guildChannels[guildID], nil
}

func (f *fakeClient) Channel(channelID string) (*discordgo.Channel, error) {
	if ch, ok := f.channelsByID[channelID]; ok {
		return ch, nil
	}
	return nil, fmt.Errorf("unknown channel %s", channelID)
}

func (f *fakeClient) ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string) ([]*discordgo.Message, error) {
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	msgs := f.messages[channelID]
	if limit < len(msgs) {
		msgs = msgs[:limit]
	}
	out := make([]*discordgo.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (f *fakeClient) ChannelMessageSend(channelID, content string) (*discordgo.Message, error) {
	return &discordgo.Message{ID: "sent-1", ChannelID: channelID, Content: content}, nil
}

func (f *fakeClient) ChannelMessageSendReply(channelID, content string, reference *discordgo.MessageReference) (*discordgo.Message, error) {
	return &discordgo.Message{ID: "reply-1", ChannelID: channelID, Content: content, MessageReference: reference}, nil
}

func (f *fakeClient) BotUser() *discordgo.User {
	return f.self
}
