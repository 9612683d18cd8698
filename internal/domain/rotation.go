package domain

import (
	"fmt"
	"time"
)

type RotationStatus string

const (
	StatusApplied           RotationStatus = "applied"
	StatusAppliedFallback   RotationStatus = "applied_fallback"
	StatusGuildMissing      RotationStatus = "guild_missing"
	StatusMemberUnreachable RotationStatus = "member_unreachable"
	StatusRejected          RotationStatus = "rejected"
	StatusFailed            RotationStatus = "failed"
)

// Outcome es el resultado de una rotación.
type Outcome struct {
	ID         string
	Nickname   string
	Status     RotationStatus
	Err        error
	StartedAt  time.Time
	Duration   time.Duration
	NextChange time.Time // zero si no se armó el countdown
}

// Applied indica si el nickname quedó cambiado (por cualquiera de los dos caminos).
func (o Outcome) Applied() bool {
	return o.Status == StatusApplied || o.Status == StatusAppliedFallback
}

// FormatRemaining muestra `45s`, `3m 10s` o `1h 2m 3s`, truncando a segundos.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
