package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/jose-valero/nick-rotator-bot/internal/adapters/console"
	"github.com/jose-valero/nick-rotator-bot/internal/adapters/discord"
	"github.com/jose-valero/nick-rotator-bot/internal/adapters/httpstatus"
	"github.com/jose-valero/nick-rotator-bot/internal/app/service"
	"github.com/jose-valero/nick-rotator-bot/internal/infra/config"
	"github.com/jose-valero/nick-rotator-bot/internal/infra/metrics"
	"github.com/jose-valero/nick-rotator-bot/internal/picker"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	logger := log.Default()

	// Discord session
	s, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		log.Fatal(err)
	}
	discord.RedirectClientLogs(logger)
	api := discord.New(s, discord.WithTrace(cfg.Trace, logger))

	// Rotación
	rec := metrics.New()
	countdown := service.NewCountdown(console.New(os.Stdout).Render)
	sched, err := service.NewScheduler(&service.SchedulerConfig{
		API:       api,
		Picker:    picker.New(nil),
		Logger:    logger,
		GuildID:   cfg.DiscordGuild,
		UserID:    cfg.DiscordUser,
		Interval:  cfg.Interval,
		Nicknames: cfg.Nicknames,
		Countdown: countdown,
		Recorder:  rec,
	})
	if err != nil {
		log.Fatal(err)
	}
	lc := service.NewLifecycleService(api, sched, logger, cfg.DiscordGuild, cfg.DiscordUser, cfg.IntervalMinutes, len(cfg.Nicknames))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ready llega una sola vez; un error de setup deja el bot conectado sin rotar.
	s.AddHandlerOnce(func(_ *discordgo.Session, r *discordgo.Ready) {
		_ = lc.OnReady(ctx, r.User.String())
	})

	log.Println("🔑 Logging in...")
	if err := s.Open(); err != nil {
		log.Printf("Failed to login: %v", err)
		if discord.IsInvalidToken(err) {
			log.Println("Invalid bot token")
		}
		os.Exit(1)
	}

	// Status HTTP (opcional)
	var web *httpstatus.Server
	if cfg.HTTPAddr != "" {
		web = httpstatus.New(cfg.HTTPAddr, sched, rec.Handler())
		go func() {
			if err := web.Start(); err != nil {
				log.Printf("http server: %v", err)
			}
		}()
	}

	// Esperar señal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	notice := "Shutting down bot..."
	if sig == syscall.SIGTERM {
		notice = "Received SIGTERM, shutting down..."
	}
	lc.Shutdown(notice)
	cancel()
	_ = s.Close()
	if web != nil {
		sctx, scancel := context.WithTimeout(context.Background(), 3*time.Second)
		_ = web.Shutdown(sctx)
		scancel()
	}
	os.Exit(0)
}
