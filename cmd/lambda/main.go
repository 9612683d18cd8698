package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"

	"github.com/jose-valero/nick-rotator-bot/internal/adapters/discord"
	"github.com/jose-valero/nick-rotator-bot/internal/app/service"
	"github.com/jose-valero/nick-rotator-bot/internal/domain"
	"github.com/jose-valero/nick-rotator-bot/internal/infra/config"
	"github.com/jose-valero/nick-rotator-bot/internal/picker"
)

// handler hace una sola rotación por invocación (EventBridge cada INTERVAL_MINUTES).
// Sin gateway: el guild se resuelve por REST y no hay countdown.
func handler(ctx context.Context) (string, error) {
	return rotateOnce(ctx, os.Getenv)
}

func rotateOnce(ctx context.Context, getenv func(string) string) (string, error) {
	cfg, err := config.FromEnv(getenv)
	if err != nil {
		return "", err
	}

	s, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		return "", err
	}
	api := discord.New(s,
		discord.WithRESTGuildLookup(),
		discord.WithHTTPClient(&http.Client{Timeout: 10 * time.Second}),
		discord.WithTrace(cfg.Trace, log.Default()),
	)

	sched, err := service.NewScheduler(&service.SchedulerConfig{
		API:       api,
		Picker:    picker.New(nil),
		GuildID:   cfg.DiscordGuild,
		UserID:    cfg.DiscordUser,
		Interval:  cfg.Interval,
		Nicknames: cfg.Nicknames,
	})
	if err != nil {
		return "", err
	}

	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return describe(sched.Rotate(cctx)), nil
}

// describe es lo que devuelve la invocación: "status", "status: nick" o "status: error".
func describe(out domain.Outcome) string {
	if out.Err != nil {
		return fmt.Sprintf("%s: %v", out.Status, out.Err)
	}
	if out.Nickname != "" {
		return fmt.Sprintf("%s: %s", out.Status, out.Nickname)
	}
	return string(out.Status)
}

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	lambda.Start(handler)
}
