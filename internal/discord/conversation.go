package discord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Conversation is the scanned message window of a channel, ordered oldest
// first, plus the most recent message authored by a human, if any.
type Conversation struct {
	// LastUserMessage is nil when the window holds only bot-authored
	// messages. Callers treat that as terminal; the window is not expanded.
	LastUserMessage *discordgo.Message
	Window          []*discordgo.Message
}

// FindLastUserMessage fetches up to window recent messages from a channel
// and locates the newest one authored by neither a bot nor the session's
// own user (selfID).
func FindLastUserMessage(c Client, channelID, selfID string, window int) (*Conversation, error) {
	messages, err := c.ChannelMessages(channelID, window, "", "", "")
	if err != nil {
		return nil, err
	}

	// The platform returns newest first; the window is oldest first.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})

	conv := &Conversation{Window: messages}
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		if msg.Author == nil || msg.Author.Bot || msg.Author.ID == selfID {
			continue
		}
		conv.LastUserMessage = msg
		break
	}

	return conv, nil
}

// FormatTranscript renders a message window as one line per message, oldest
// first, each tagged with the author kind and name.
func FormatTranscript(window []*discordgo.Message) string {
	lines := make([]string, 0, len(window))
	for _, msg := range window {
		tag := "USER"
		name := "unknown"
		if msg.Author != nil {
			name = msg.Author.Username
			if msg.Author.Bot {
				tag = "BOT"
			}
		}
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", tag, name, msg.Content))
	}
	return strings.Join(lines, "\n")
}
