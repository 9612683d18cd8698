package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jose-valero/nick-rotator-bot/internal/common/clock"
	"github.com/jose-valero/nick-rotator-bot/internal/common/uuid"
	"github.com/jose-valero/nick-rotator-bot/internal/domain"
)

type SchedulerConfig struct {
	API    MemberAPI
	Picker NamePicker
	Logger *log.Logger

	GuildID   string
	UserID    string
	Interval  time.Duration
	Nicknames []string

	// Opcionales
	Countdown *Countdown // nil = no se arma countdown (modo one-shot)
	Recorder  RotationRecorder
	Clock     clock.Clock
	IDs       uuid.Generator
}

// Scheduler es el dueño del ticker de rotación, del countdown y del último resultado.
// Start, Stop y Rotate son los únicos puntos de mutación.
type Scheduler struct {
	api       MemberAPI
	picker    NamePicker
	log       *log.Logger
	countdown *Countdown
	recorder  RotationRecorder
	clock     clock.Clock
	ids       uuid.Generator

	guildID   string
	userID    string
	interval  time.Duration
	nicknames []string

	flight singleflight.Group

	mu    sync.Mutex
	stop  chan struct{}
	stops uint64 // cuántas veces se llamó Stop; una rotación no arma el countdown si cambió
	last  domain.Outcome
}

func NewScheduler(cfg *SchedulerConfig) (*Scheduler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.API == nil {
		return nil, errors.New("member api cannot be nil")
	}
	if cfg.Picker == nil {
		return nil, errors.New("picker cannot be nil")
	}
	if cfg.GuildID == "" || cfg.UserID == "" {
		return nil, errors.New("guild and user ids are required")
	}
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %s", cfg.Interval)
	}
	if len(cfg.Nicknames) == 0 {
		return nil, errors.New("nicknames cannot be empty")
	}

	s := &Scheduler{
		api:       cfg.API,
		picker:    cfg.Picker,
		log:       cfg.Logger,
		countdown: cfg.Countdown,
		recorder:  cfg.Recorder,
		clock:     cfg.Clock,
		ids:       cfg.IDs,
		guildID:   cfg.GuildID,
		userID:    cfg.UserID,
		interval:  cfg.Interval,
		nicknames: append([]string(nil), cfg.Nicknames...),
	}
	if s.log == nil {
		s.log = log.Default()
	}
	if s.clock == nil {
		s.clock = clock.System{}
	}
	if s.ids == nil {
		s.ids = uuid.New()
	}
	return s, nil
}

// Start hace una rotación inmediata y después una por intervalo.
// Llamarlo con el scheduler ya corriendo no hace nada.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.stop != nil {
		s.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	s.stop = stop
	s.mu.Unlock()

	s.Rotate(ctx)
	go s.loop(ctx, stop)
}

// Stop cancela el ticker y el countdown. No espera a una rotación en curso.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	s.stops++
	s.mu.Unlock()

	if s.countdown != nil {
		s.countdown.Stop()
	}
}

func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *Scheduler) loop(ctx context.Context, stop <-chan struct{}) {
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-t.C:
			s.Rotate(ctx)
		}
	}
}

// Rotate cambia el nickname una vez. Si ya hay una rotación en vuelo, comparte su resultado
// en lugar de mandar otra mutación.
func (s *Scheduler) Rotate(ctx context.Context) domain.Outcome {
	leader := false
	v, _, _ := s.flight.Do("rotate", func() (any, error) {
		leader = true
		return s.rotate(ctx), nil
	})
	if !leader {
		s.log.Printf("⏭️ Rotation already in flight, skipping tick")
	}
	return v.(domain.Outcome)
}

func (s *Scheduler) rotate(ctx context.Context) (out domain.Outcome) {
	out = domain.Outcome{ID: s.ids.NewUUID(), StartedAt: s.clock.Now()}
	epoch := s.epoch()
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Printf("Error: %v", rec)
			out.Status = domain.StatusFailed
			out.Err = fmt.Errorf("panic: %v", rec)
		}
		out.Duration = s.clock.Now().Sub(out.StartedAt)
		s.finish(out)
	}()

	if _, ok := s.api.LookupGuild(s.guildID); !ok {
		s.log.Printf("Guild not found")
		out.Status = domain.StatusGuildMissing
		return out
	}

	if _, err := s.api.FetchMember(ctx, s.guildID, s.userID); err != nil {
		return s.rotateFallback(ctx, out, epoch)
	}

	nick, err := s.picker.Pick(s.nicknames)
	if err != nil {
		s.log.Printf("Error: %v", err)
		out.Status, out.Err = domain.StatusFailed, err
		return out
	}
	out.Nickname = nick

	if err := s.api.SetNickname(ctx, s.guildID, s.userID, nick); err != nil {
		s.logRotationError(err)
		out.Status, out.Err = domain.StatusRejected, err
		return out
	}

	out.Status = domain.StatusApplied
	s.changed(&out, epoch)
	return out
}

// rotateFallback: sin member usamos el PATCH directo. El nombre se elige una sola vez
// y es el mismo que se loguea.
func (s *Scheduler) rotateFallback(ctx context.Context, out domain.Outcome, epoch uint64) domain.Outcome {
	nick, err := s.picker.Pick(s.nicknames)
	if err != nil {
		s.log.Printf("Error: %v", err)
		out.Status, out.Err = domain.StatusFailed, err
		return out
	}
	out.Nickname = nick

	if err := s.api.PatchNickname(ctx, s.guildID, s.userID, nick); err != nil {
		s.log.Printf("Cannot access member")
		out.Status, out.Err = domain.StatusMemberUnreachable, err
		return out
	}

	out.Status = domain.StatusAppliedFallback
	s.changed(&out, epoch)
	return out
}

func (s *Scheduler) epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stops
}

// changed arma el countdown salvo que haya habido un Stop mientras la rotación estaba en vuelo.
func (s *Scheduler) changed(out *domain.Outcome, epoch uint64) {
	s.log.Printf("✅ Changed to: %q", out.Nickname)
	s.log.Println("")
	if s.countdown == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stops != epoch {
		return
	}
	out.NextChange = s.countdown.Start(s.interval)
}

func (s *Scheduler) logRotationError(err error) {
	s.log.Printf("Error: %v", err)

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		return
	}
	switch apiErr.Code {
	case domain.CodeMissingPermissions:
		s.log.Printf("Permission/hierarchy issue")
	case domain.CodeInvalidFormBody:
		s.log.Printf("Invalid nickname")
	}
}

func (s *Scheduler) finish(out domain.Outcome) {
	s.mu.Lock()
	s.last = out
	s.mu.Unlock()
	if s.recorder != nil {
		s.recorder.ObserveRotation(out)
	}
}

// LastOutcome devuelve la última rotación terminada (zero si todavía no hubo).
func (s *Scheduler) LastOutcome() domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// NextChange devuelve cuándo está previsto el próximo cambio según el countdown.
func (s *Scheduler) NextChange() (time.Time, bool) {
	if s.countdown == nil {
		return time.Time{}, false
	}
	return s.countdown.NextChange()
}

func (s *Scheduler) CountdownRunning() bool {
	return s.countdown != nil && s.countdown.Running()
}
