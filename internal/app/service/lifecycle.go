package service

import (
	"context"
	"errors"
	"log"
)

var (
	ErrSetupGuild  = errors.New("setup: cannot access server")
	ErrSetupMember = errors.New("setup: cannot find user")
)

type LifecycleService struct {
	api       MemberAPI
	sched     *Scheduler
	log       *log.Logger
	guildID   string
	userID    string
	interval  int // minutos, sólo para el resumen
	nicknames int
}

func NewLifecycleService(api MemberAPI, sched *Scheduler, logger *log.Logger, guildID, userID string, intervalMinutes, nicknames int) *LifecycleService {
	if logger == nil {
		logger = log.Default()
	}
	return &LifecycleService{
		api:       api,
		sched:     sched,
		log:       logger,
		guildID:   guildID,
		userID:    userID,
		interval:  intervalMinutes,
		nicknames: nicknames,
	}
}

// OnReady verifica guild y member y arranca la rotación. Un error acá no termina el proceso:
// el bot queda conectado sin rotar.
func (l *LifecycleService) OnReady(ctx context.Context, botTag string) error {
	l.log.Printf("🚀 Bot ready: %s", botTag)
	l.log.Printf("⏱️ Interval: %dmin", l.interval)
	l.log.Printf("📝 Nicknames: %d", l.nicknames)

	if _, ok := l.api.LookupGuild(l.guildID); !ok {
		l.log.Printf("Setup error: Cannot access server")
		return ErrSetupGuild
	}
	if _, err := l.api.FetchMember(ctx, l.guildID, l.userID); err != nil {
		l.log.Printf("Setup error: Cannot find user")
		return ErrSetupMember
	}

	l.log.Printf("✅ Setup verified")
	l.sched.Start(ctx)
	return nil
}

// Shutdown loguea el aviso y corta ambos timers. Cerrar la sesión y salir queda en main.
func (l *LifecycleService) Shutdown(notice string) {
	l.log.Printf("\n🛑 %s", notice)
	l.sched.Stop()
}
