// Package discord maintains the long-lived chat platform connection and
// posts sprint-completion announcements to the configured guild channel.
package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"sprint-accomplishments/config"
	"sprint-accomplishments/internal/entities"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// ErrNotReady signals an announcement attempted before the ready event
// resolved the guild and channel.
var ErrNotReady = errors.New("discord session not ready")

const membersPageSize = 1000

// SessionContext holds the guild and channel resolved once after the ready
// event. It is the single re-initialization point for reconnects.
type SessionContext struct {
	Guild   *discordgo.Guild
	Channel *discordgo.Channel
}

// UserImporter persists guild members as application users.
type UserImporter interface {
	CreateUser(ctx context.Context, in entities.UserInsert) (*entities.User, error)
}

// Client wraps a discordgo session for the configured guild.
type Client struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.DiscordConfig
	session *discordgo.Session
	users   UserImporter
	http    *http.Client

	mu   sync.RWMutex
	sctx *SessionContext
}

// New creates a Client and registers its event handlers. The session is not
// opened until Open is called.
func New(ctx context.Context, log *zap.SugaredLogger, cfg config.DiscordConfig, users UserImporter) (*Client, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildMembers

	c := &Client{
		baseCtx: ctx,
		log:     log.Named("discord"),
		cfg:     cfg,
		session: session,
		users:   users,
		http:    &http.Client{},
	}
	session.AddHandler(c.onReady)
	session.AddHandler(c.onMessageCreate)
	return c, nil
}

// Open connects to the gateway.
func (c *Client) Open() error {
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	return nil
}

// Close terminates the gateway connection.
func (c *Client) Close() error {
	return c.session.Close()
}

// SessionContext returns the resolved guild and channel, or ErrNotReady
// before the ready event has been handled.
func (c *Client) SessionContext() (*SessionContext, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.sctx == nil {
		return nil, ErrNotReady
	}
	return c.sctx, nil
}

func (c *Client) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	sctx, err := resolveSession(s, c.cfg.GuildID, c.cfg.ChannelName)
	if err != nil {
		c.log.Errorw("failed to resolve session context", "error", err)
		return
	}

	c.mu.Lock()
	c.sctx = sctx
	c.mu.Unlock()

	c.log.Infow("discord ready", "guild", sctx.Guild.Name, "channel", sctx.Channel.Name)

	if c.users != nil {
		c.importMembers(sctx.Guild.ID)
	}
}

func (c *Client) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || m.Author.ID == s.State.User.ID {
		return
	}
	if m.Content != "ping" {
		return
	}

	sctx, err := c.SessionContext()
	if err != nil {
		c.log.Warnw("ping before ready", "error", err)
		return
	}

	reply := fmt.Sprintf("%s %s", sctx.Channel.Name, sctx.Guild.Name)
	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		c.log.Errorw("failed to reply to ping", "error", err)
	}
}

// importMembers creates an application user for every non-bot guild member,
// skipping names that already exist.
func (c *Client) importMembers(guildID string) {
	after := ""
	imported := 0
	for {
		members, err := c.session.GuildMembers(guildID, after, membersPageSize)
		if err != nil {
			c.log.Errorw("failed to fetch guild members", "error", err)
			return
		}
		if len(members) == 0 {
			break
		}

		for _, m := range members {
			if m.User == nil || m.User.Bot {
				continue
			}
			_, err := c.users.CreateUser(c.baseCtx, entities.UserInsert{UserName: m.User.Username})
			switch {
			case errors.Is(err, entities.ErrUserExists):
			case err != nil:
				c.log.Errorw("failed to import member", "error", err, "user_name", m.User.Username)
			default:
				imported++
			}
		}

		after = members[len(members)-1].User.ID
		if len(members) < membersPageSize {
			break
		}
	}
	c.log.Infow("guild members imported", "count", imported)
}

// Announce resolves the member by display name and posts the formatted
// accomplishment with the GIF attached. No delivery confirmation is awaited
// beyond the platform accepting the request.
func (c *Client) Announce(ctx context.Context, userName, sprintName, template, gifURL string) error {
	sctx, err := c.SessionContext()
	if err != nil {
		return err
	}

	member, err := c.memberByUserName(sctx.Guild.ID, userName)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, gifURL, nil)
	if err != nil {
		return fmt.Errorf("build gif download: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("download gif: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("download gif: status %d", resp.StatusCode)
	}

	_, err = c.session.ChannelMessageSendComplex(sctx.Channel.ID, &discordgo.MessageSend{
		Content: formatAccomplishment(member.Mention(), sprintName, template),
		Files: []*discordgo.File{{
			Name:        "congratulations.gif",
			ContentType: "image/gif",
			Reader:      resp.Body,
		}},
	})
	if err != nil {
		return fmt.Errorf("send announcement: %w", err)
	}

	c.log.Infow("accomplishment announced", "user_name", userName, "sprint", sprintName)
	return nil
}

func (c *Client) memberByUserName(guildID, userName string) (*discordgo.Member, error) {
	after := ""
	for {
		members, err := c.session.GuildMembers(guildID, after, membersPageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch guild members: %w", err)
		}
		if len(members) == 0 {
			break
		}
		if m := findMember(members, userName); m != nil {
			return m, nil
		}
		after = members[len(members)-1].User.ID
		if len(members) < membersPageSize {
			break
		}
	}
	return nil, fmt.Errorf("%w: %s", entities.ErrMemberNotFound, userName)
}

// findMember scans for a case-exact username match.
func findMember(members []*discordgo.Member, userName string) *discordgo.Member {
	for _, m := range members {
		if m.User != nil && m.User.Username == userName {
			return m
		}
	}
	return nil
}

// resolveSession looks up the configured guild and, within it, the text
// channel by name.
func resolveSession(s *discordgo.Session, guildID, channelName string) (*SessionContext, error) {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		guild, err = s.Guild(guildID)
		if err != nil {
			return nil, fmt.Errorf("guild not found: %s: %w", guildID, err)
		}
	}

	channels, err := s.GuildChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("fetch channels: %w", err)
	}
	channel := findTextChannel(channels, channelName)
	if channel == nil {
		return nil, fmt.Errorf("channel not found: %s", channelName)
	}

	return &SessionContext{Guild: guild, Channel: channel}, nil
}

func findTextChannel(channels []*discordgo.Channel, name string) *discordgo.Channel {
	for _, ch := range channels {
		if ch.Type == discordgo.ChannelTypeGuildText && ch.Name == name {
			return ch
		}
	}
	return nil
}

func formatAccomplishment(mention, sprintName, template string) string {
	return fmt.Sprintf("%s has just completed the %s!\n%s", mention, sprintName, template)
}
