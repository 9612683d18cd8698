package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/nick-rotator-bot/internal/domain"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

// fakeDiscord levanta un httptest.Server y apunta los endpoints de guilds a él.
func fakeDiscord(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*[]recordedRequest, *sync.Mutex) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &rec.Body)
		}
		mu.Lock()
		reqs = append(reqs, rec)
		mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	prev := discordgo.EndpointGuilds
	discordgo.EndpointGuilds = srv.URL + "/guilds/"
	t.Cleanup(func() { discordgo.EndpointGuilds = prev })
	return &reqs, &mu
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	s, err := NewSession("test-token")
	require.NoError(t, err)
	s.MaxRestRetries = 0
	return New(s, opts...)
}

func TestBotAuth(t *testing.T) {
	assert.Equal(t, "Bot abc", BotAuth("abc"))
	assert.Equal(t, "Bot abc", BotAuth("  abc "))
	assert.Equal(t, "Bot abc", BotAuth("Bot abc"))
	assert.Equal(t, "bot abc", BotAuth("bot abc"))
}

func TestNewSessionIntents(t *testing.T) {
	s, err := NewSession("abc")
	require.NoError(t, err)
	assert.Equal(t, "Bot abc", s.Token)
	assert.Equal(t, discordgo.IntentsGuilds, s.Identify.Intents)
}

func TestLookupGuildFromState(t *testing.T) {
	c := newTestClient(t)
	require.NoError(t, c.s.State.GuildAdd(&discordgo.Guild{ID: "g1", Name: "Guild One"}))

	g, ok := c.LookupGuild("g1")
	require.True(t, ok)
	assert.Equal(t, &domain.Guild{ID: "g1", Name: "Guild One"}, g)

	_, ok = c.LookupGuild("missing")
	assert.False(t, ok)
}

func TestLookupGuildREST(t *testing.T) {
	fakeDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"g2","name":"Remote"}`))
	})
	c := newTestClient(t, WithRESTGuildLookup())

	g, ok := c.LookupGuild("g2")
	require.True(t, ok)
	assert.Equal(t, "Remote", g.Name)

	// quedó cacheado en el state
	cached, err := c.s.State.Guild("g2")
	require.NoError(t, err)
	assert.Equal(t, "g2", cached.ID)
}

func TestFetchMember(t *testing.T) {
	reqs, mu := fakeDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"id":"u1","username":"target"},"nick":"old"}`))
	})
	c := newTestClient(t)

	m, err := c.FetchMember(context.Background(), "g1", "u1")
	require.NoError(t, err)
	assert.Equal(t, &domain.Member{UserID: "u1", Username: "target", Nick: "old"}, m)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodGet, (*reqs)[0].Method)
	assert.Equal(t, "/guilds/g1/members/u1", (*reqs)[0].Path)
}

func TestPatchNickname(t *testing.T) {
	reqs, mu := fakeDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	c := newTestClient(t)

	require.NoError(t, c.PatchNickname(context.Background(), "g1", "u1", "Alice"))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, *reqs, 1)
	assert.Equal(t, http.MethodPatch, (*reqs)[0].Method)
	assert.Equal(t, "/guilds/g1/members/u1", (*reqs)[0].Path)
	assert.Equal(t, "Alice", (*reqs)[0].Body["nick"])
}

func TestSetNicknameTranslatesErrorCode(t *testing.T) {
	fakeDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"code":50013,"message":"Missing Permissions"}`))
	})
	c := newTestClient(t)

	err := c.SetNickname(context.Background(), "g1", "u1", "Alice")
	require.Error(t, err)

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, domain.CodeMissingPermissions, apiErr.Code)
	assert.Equal(t, "Missing Permissions", apiErr.Error())

	var re *discordgo.RESTError
	assert.True(t, errors.As(err, &re))
}

func TestWithHTTPClient(t *testing.T) {
	h := &http.Client{}
	c := newTestClient(t, WithHTTPClient(h))
	assert.Same(t, h, c.s.Client)
}

func TestTraceLogsCalls(t *testing.T) {
	fakeDiscord(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	var buf bytes.Buffer
	c := newTestClient(t, WithTrace(true, log.New(&buf, "", 0)))

	require.NoError(t, c.PatchNickname(context.Background(), "g1", "u1", "Alice"))
	assert.Contains(t, buf.String(), "[trace] discord.member_patch = ")
}

func TestToAPIError(t *testing.T) {
	plain := errors.New("dial tcp: timeout")
	assert.Same(t, plain, toAPIError(plain))

	re := &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusBadRequest},
		Message:  &discordgo.APIErrorMessage{Code: domain.CodeInvalidFormBody, Message: "Invalid Form Body"},
	}
	err := toAPIError(fmt.Errorf("nickname: %w", re))

	var apiErr *domain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, domain.CodeInvalidFormBody, apiErr.Code)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
}

func TestIsInvalidToken(t *testing.T) {
	assert.False(t, IsInvalidToken(nil))
	assert.False(t, IsInvalidToken(errors.New("dial tcp: no such host")))

	assert.True(t, IsInvalidToken(&websocket.CloseError{Code: 4004, Text: "Authentication failed."}))
	assert.True(t, IsInvalidToken(fmt.Errorf("open: %w", &websocket.CloseError{Code: 4004})))
	assert.False(t, IsInvalidToken(&websocket.CloseError{Code: websocket.CloseGoingAway}))

	assert.True(t, IsInvalidToken(&discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusUnauthorized}}))
	assert.True(t, IsInvalidToken(errors.New("An invalid token was provided: TOKEN_INVALID")))
}

func TestRedirectClientLogs(t *testing.T) {
	prev := discordgo.Logger
	t.Cleanup(func() { discordgo.Logger = prev })

	var buf bytes.Buffer
	RedirectClientLogs(log.New(&buf, "", 0))

	discordgo.Logger(discordgo.LogError, 0, "heartbeat failed: %s", "eof")
	discordgo.Logger(discordgo.LogDebug, 0, "noise")

	assert.Contains(t, buf.String(), "❌ Discord client error: heartbeat failed: eof")
	assert.NotContains(t, buf.String(), "noise")
}
