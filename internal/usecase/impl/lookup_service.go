// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "maplehub/internal/delivery/context"
	"maplehub/internal/domain/entity"
	domainerrors "maplehub/internal/domain/errors"
	"maplehub/internal/domain/service"
	"maplehub/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

const guildRankingPageSize = 20

// characterSection is one sub-fetch of the aggregation: the upstream path and
// the composite field it fills.
type characterSection struct {
	path   string
	assign func(record *entity.CompositeCharacterRecord, payload json.RawMessage)
}

// characterSections lists every raw section of the composite record. The basic
// info sub-fetch is handled separately because it is decoded into typed fields.
var characterSections = []characterSection{
	{"/character/stat", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.Stats = p }},
	{"/character/popularity", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.Popularity = p }},
	{"/character/item-equipment", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.Items = p }},
	{"/character/cashitem-equipment", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.CashItems = p }},
	{"/character/symbol-equipment", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.Symbols = p }},
	{"/character/link-skill", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.LinkSkills = p }},
	{"/character/vmatrix", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.VMatrix = p }},
	{"/character/hexamatrix", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.HexaMatrix = p }},
	{"/character/dojang", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.Dojang = p }},
	{"/user/union", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.Union = p }},
	{"/user/union-raider", func(r *entity.CompositeCharacterRecord, p json.RawMessage) { r.UnionRaider = p }},
}

// lookupService implements the LookupUsecase interface.
type lookupService struct {
	client service.MapleClient
	logger *slog.Logger
	now    func() time.Time
}

// LookupServiceParams holds dependencies for lookupService, injected by Fx.
type LookupServiceParams struct {
	fx.In

	Client service.MapleClient
	Logger *slog.Logger
}

// NewLookupService is the constructor for lookupService.
func NewLookupService(params LookupServiceParams) usecase.LookupUsecase {
	return &lookupService{
		client: params.Client,
		logger: params.Logger,
		now:    time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *lookupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// asOfDate pins a lookup to yesterday's snapshot, the most recent date the
// provider has finished publishing.
func (srv *lookupService) asOfDate() string {
	return srv.now().AddDate(0, 0, -1).Format("2006-01-02")
}

// SearchCharacter resolves a character name and fans out one sub-fetch per
// section, all sharing the same ocid and as-of date. Any sub-fetch failure
// fails the whole lookup; no partial record is returned.
func (srv *lookupService) SearchCharacter(ctx context.Context, characterName string) (*entity.CompositeCharacterRecord, error) {
	characterName = strings.TrimSpace(characterName)
	if characterName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("character name is required")
	}

	ocid, err := srv.client.ResolveOCID(ctx, characterName)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve character identity",
			slog.String("characterName", characterName),
			slog.Any("error", err),
		)

		return nil, err
	}

	// One shared snapshot date for every sub-fetch of this call. Mixing dates
	// would produce an inconsistent composite record.
	date := srv.asOfDate()
	params := map[string]string{"ocid": ocid, "date": date}

	srv.log(ctx).Debug("Aggregating character data",
		slog.String("characterName", characterName),
		slog.String("date", date),
	)

	record := &entity.CompositeCharacterRecord{}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		payload, err := srv.client.Fetch(groupCtx, "/character/basic", params)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(payload, &record.CharacterBasic); err != nil {
			return &service.UpstreamMalformedError{Endpoint: "/character/basic", Body: string(payload)}
		}

		return nil
	})

	for _, section := range characterSections {
		group.Go(func() error {
			payload, err := srv.client.Fetch(groupCtx, section.path, params)
			if err != nil {
				return err
			}
			// Each section writes a disjoint field, so no locking is needed.
			section.assign(record, payload)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		srv.log(ctx).Warn("Character aggregation failed",
			slog.String("characterName", characterName),
			slog.Any("error", err),
		)

		return nil, err
	}

	return record, nil
}

// GetWeeklyBosses resolves a character name and fetches its weekly boss clear records.
func (srv *lookupService) GetWeeklyBosses(ctx context.Context, characterName string) ([]entity.BossClearRecord, error) {
	characterName = strings.TrimSpace(characterName)
	if characterName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("character name is required")
	}

	ocid, err := srv.client.ResolveOCID(ctx, characterName)
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve character identity",
			slog.String("characterName", characterName),
			slog.Any("error", err),
		)

		return nil, err
	}

	payload, err := srv.client.Fetch(ctx, "/character/weekly-bosses", map[string]string{
		"ocid": ocid,
		"date": srv.asOfDate(),
	})
	if err != nil {
		return nil, err
	}

	var body struct {
		Data []entity.BossClearRecord `json:"data"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, &service.UpstreamMalformedError{Endpoint: "/character/weekly-bosses", Body: string(payload)}
	}

	return body.Data, nil
}

// GetGuildRanking fetches one page of the guild ranking, applying at most one
// of the mutually exclusive refinements.
func (srv *lookupService) GetGuildRanking(ctx context.Context, input *usecase.GuildRankingInput) (*usecase.GuildRankingOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}

	params := map[string]string{
		"page":         strconv.Itoa(page),
		"date":         srv.asOfDate(),
		"ranking_type": "0",
	}

	switch input.SearchType {
	case usecase.GuildSearchServer:
		params["world_name"] = input.Parameter
	case usecase.GuildSearchGuild:
		params["guild_name"] = input.GuildName
	case usecase.GuildSearchAll, "":
		// no refinement
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown guild search type")
	}

	payload, err := srv.client.Fetch(ctx, "/ranking/guild", params)
	if err != nil {
		return nil, err
	}

	var body struct {
		Ranking []entity.GuildRanking `json:"ranking"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return nil, &service.UpstreamMalformedError{Endpoint: "/ranking/guild", Body: string(payload)}
	}

	// Page count is derived from the returned list, which assumes the
	// upstream answers with the full result set per refinement.
	totalPages := (len(body.Ranking) + guildRankingPageSize - 1) / guildRankingPageSize

	return &usecase.GuildRankingOutput{
		Rankings:   body.Ranking,
		TotalPages: totalPages,
	}, nil
}
