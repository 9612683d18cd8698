package discord

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/nick-rotator-bot/internal/domain"
)

// Client implementa service.MemberAPI sobre una sesión de discordgo.
type Client struct {
	s         *discordgo.Session
	restGuild bool
	trace     bool
	log       *log.Logger
}

type Option func(*Client)

// WithRESTGuildLookup: si el guild no está en la cache lo pide por REST (modo lambda, sin gateway).
func WithRESTGuildLookup() Option {
	return func(c *Client) { c.restGuild = true }
}

// WithHTTPClient reemplaza el http.Client de la sesión.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.s.Client = h }
}

func New(s *discordgo.Session, opts ...Option) *Client {
	c := &Client{s: s}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = log.Default()
	}
	return c
}

// BotAuth agrega el prefijo "Bot " si falta.
func BotAuth(token string) string {
	auth := strings.TrimSpace(token)
	if !strings.HasPrefix(strings.ToLower(auth), "bot ") {
		auth = "Bot " + auth
	}
	return auth
}

func (c *Client) LookupGuild(guildID string) (*domain.Guild, bool) {
	if g, err := c.s.State.Guild(guildID); err == nil && g != nil {
		return &domain.Guild{ID: g.ID, Name: g.Name}, true
	}
	if !c.restGuild {
		return nil, false
	}

	defer c.step("discord.guild")()
	g, err := c.s.Guild(guildID)
	if err != nil || g == nil {
		return nil, false
	}
	_ = c.s.State.GuildAdd(g)
	return &domain.Guild{ID: g.ID, Name: g.Name}, true
}

func (c *Client) FetchMember(ctx context.Context, guildID, userID string) (*domain.Member, error) {
	defer c.step("discord.member_fetch")()
	m, err := c.s.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, toAPIError(err)
	}
	out := &domain.Member{UserID: userID, Nick: m.Nick}
	if m.User != nil {
		out.UserID = m.User.ID
		out.Username = m.User.Username
	}
	return out, nil
}

func (c *Client) SetNickname(ctx context.Context, guildID, userID, nick string) error {
	defer c.step("discord.member_nickname")()
	if err := c.s.GuildMemberNickname(guildID, userID, nick, discordgo.WithContext(ctx)); err != nil {
		return toAPIError(err)
	}
	return nil
}

// PatchNickname pega directo a PATCH /guilds/{g}/members/{u} con {"nick": ...}.
func (c *Client) PatchNickname(ctx context.Context, guildID, userID, nick string) error {
	defer c.step("discord.member_patch")()
	body := struct {
		Nick string `json:"nick"`
	}{Nick: nick}

	_, err := c.s.RequestWithBucketID(
		http.MethodPatch,
		discordgo.EndpointGuildMember(guildID, userID),
		body,
		discordgo.EndpointGuildMember(guildID, ""),
		discordgo.WithContext(ctx),
	)
	if err != nil {
		return toAPIError(err)
	}
	return nil
}
