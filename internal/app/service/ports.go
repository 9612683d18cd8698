package service

import (
	"context"

	"github.com/jose-valero/nick-rotator-bot/internal/domain"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_ports.go github.com/jose-valero/nick-rotator-bot/internal/app/service MemberAPI,NamePicker

// Lo implementa internal/adapters/discord.Client
type MemberAPI interface {
	// LookupGuild busca el guild en la cache de la sesión.
	LookupGuild(guildID string) (*domain.Guild, bool)
	FetchMember(ctx context.Context, guildID, userID string) (*domain.Member, error)
	SetNickname(ctx context.Context, guildID, userID, nick string) error
	// PatchNickname es el PATCH directo, no necesita el member.
	PatchNickname(ctx context.Context, guildID, userID, nick string) error
}

// Lo implementa internal/picker.Picker
type NamePicker interface {
	Pick(candidates []string) (string, error)
}

// Lo implementa internal/infra/metrics.Metrics
type RotationRecorder interface {
	ObserveRotation(o domain.Outcome)
}
