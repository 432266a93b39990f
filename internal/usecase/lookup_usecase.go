package usecase

import (
	"context"

	"maplehub/internal/domain/entity"
)

// Guild ranking search refinements. At most one filter applies per call.
const (
	GuildSearchAll    = "all"
	GuildSearchServer = "server"
	GuildSearchGuild  = "guild"
)

// GuildRankingInput selects one page of the guild ranking with an optional refinement.
type GuildRankingInput struct {
	Page       int
	SearchType string // one of GuildSearch* constants
	Parameter  string // world name when SearchType is "server"
	GuildName  string // guild name when SearchType is "guild"
}

// GuildRankingOutput is one page of ranking rows plus the derived page count.
type GuildRankingOutput struct {
	Rankings   []entity.GuildRanking `json:"rankings"`
	TotalPages int                   `json:"total_pages"`
}

// LookupUsecase defines the read-side operations against the upstream provider.
type LookupUsecase interface {
	// SearchCharacter resolves a character name and aggregates every
	// character section into one composite record. All-or-nothing: a failure
	// of any sub-fetch fails the whole lookup.
	SearchCharacter(ctx context.Context, characterName string) (*entity.CompositeCharacterRecord, error)

	// GetWeeklyBosses resolves a character name and returns its weekly boss
	// clear records.
	GetWeeklyBosses(ctx context.Context, characterName string) ([]entity.BossClearRecord, error)

	// GetGuildRanking fetches one page of the guild ranking.
	GetGuildRanking(ctx context.Context, input *GuildRankingInput) (*GuildRankingOutput, error)
}
