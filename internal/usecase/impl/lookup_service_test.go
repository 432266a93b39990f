package impl

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	domainerrors "maplehub/internal/domain/errors"
	"maplehub/internal/domain/service"
	mockSvc "maplehub/internal/mocks/service"
	"maplehub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// lookupServiceFixtures holds all test dependencies for lookup service tests.
type lookupServiceFixtures struct {
	service usecase.LookupUsecase
	client  *mockSvc.MockMapleClient
}

func createTestLookupService(t *testing.T) lookupServiceFixtures {
	client := mockSvc.NewMockMapleClient(t)

	svc := NewLookupService(LookupServiceParams{
		Client: client,
		Logger: newDiscardLogger(),
	})

	// Pin the clock so the as-of date is deterministic.
	svc.(*lookupService).now = func() time.Time {
		return time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC)
	}

	return lookupServiceFixtures{
		service: svc,
		client:  client,
	}
}

func TestLookupService_SearchCharacter_Success(t *testing.T) {
	fx := createTestLookupService(t)

	ctx := context.Background()
	wantParams := map[string]string{"ocid": "abc123", "date": "2026-09-01"}

	fx.client.EXPECT().ResolveOCID(ctx, "TestHero").Return("abc123", nil)

	basicPayload := `{
		"date": "2026-09-01",
		"character_name": "TestHero",
		"world_name": "Scania",
		"character_class": "Hero",
		"character_level": 275,
		"character_guild_name": "Guildy"
	}`
	fx.client.EXPECT().
		Fetch(mock.Anything, "/character/basic", wantParams).
		Return(json.RawMessage(basicPayload), nil)

	sectionPayloads := map[string]string{
		"/character/stat":               `{"final_stat":[{"stat_name":"HP","stat_value":"30000"}]}`,
		"/character/popularity":         `{"popularity":321}`,
		"/character/item-equipment":     `{"item_equipment":[]}`,
		"/character/cashitem-equipment": `{"cash_item_equipment_base":[]}`,
		"/character/symbol-equipment":   `{"symbol":[]}`,
		"/character/link-skill":         `{"character_link_skill":[]}`,
		"/character/vmatrix":            `{"character_v_core_equipment":[]}`,
		"/character/hexamatrix":         `{"character_hexa_core_equipment":[]}`,
		"/character/dojang":             `{"dojang_best_floor":45}`,
		"/user/union":                   `{"union_level":9500}`,
		"/user/union-raider":            `{"union_raider_stat":[]}`,
	}
	for path, payload := range sectionPayloads {
		fx.client.EXPECT().
			Fetch(mock.Anything, path, wantParams).
			Return(json.RawMessage(payload), nil)
	}

	record, err := fx.service.SearchCharacter(ctx, "TestHero")

	require.NoError(t, err)
	require.NotNil(t, record)

	// Basic info is spread across the top level of the record.
	assert.Equal(t, "TestHero", record.CharacterName)
	assert.Equal(t, "Scania", record.WorldName)
	assert.Equal(t, "Hero", record.CharacterClass)
	assert.Equal(t, 275, record.CharacterLevel)

	// Section payloads are carried verbatim.
	assert.JSONEq(t, sectionPayloads["/character/stat"], string(record.Stats))
	assert.JSONEq(t, sectionPayloads["/character/popularity"], string(record.Popularity))
	assert.JSONEq(t, sectionPayloads["/character/item-equipment"], string(record.Items))
	assert.JSONEq(t, sectionPayloads["/character/cashitem-equipment"], string(record.CashItems))
	assert.JSONEq(t, sectionPayloads["/character/symbol-equipment"], string(record.Symbols))
	assert.JSONEq(t, sectionPayloads["/character/link-skill"], string(record.LinkSkills))
	assert.JSONEq(t, sectionPayloads["/character/vmatrix"], string(record.VMatrix))
	assert.JSONEq(t, sectionPayloads["/character/hexamatrix"], string(record.HexaMatrix))
	assert.JSONEq(t, sectionPayloads["/character/dojang"], string(record.Dojang))
	assert.JSONEq(t, sectionPayloads["/user/union"], string(record.Union))
	assert.JSONEq(t, sectionPayloads["/user/union-raider"], string(record.UnionRaider))
}

func TestLookupService_SearchCharacter_EmptyName(t *testing.T) {
	fx := createTestLookupService(t)

	record, err := fx.service.SearchCharacter(context.Background(), "   ")

	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLookupService_SearchCharacter_ResolveFails(t *testing.T) {
	fx := createTestLookupService(t)

	ctx := context.Background()
	lookupErr := &service.UpstreamLookupError{CharacterName: "Ghost"}

	// No Fetch expectation: a failed resolve must not trigger any sub-fetch.
	fx.client.EXPECT().ResolveOCID(ctx, "Ghost").Return("", lookupErr)

	record, err := fx.service.SearchCharacter(ctx, "Ghost")

	assert.Nil(t, record)

	var gotErr *service.UpstreamLookupError
	assert.True(t, errors.As(err, &gotErr))
}

func TestLookupService_SearchCharacter_SectionFailureFailsWholeLookup(t *testing.T) {
	fx := createTestLookupService(t)

	ctx := context.Background()
	upstreamErr := &service.UpstreamRequestError{StatusCode: 500, Endpoint: "/character/dojang"}

	fx.client.EXPECT().ResolveOCID(ctx, "TestHero").Return("abc123", nil)

	fx.client.EXPECT().
		Fetch(mock.Anything, "/character/dojang", mock.Anything).
		Return(nil, upstreamErr)

	// The remaining sub-fetches race the failure; they may or may not run.
	fx.client.EXPECT().
		Fetch(mock.Anything, mock.Anything, mock.Anything).
		Return(json.RawMessage(`{}`), nil).
		Maybe()

	record, err := fx.service.SearchCharacter(ctx, "TestHero")

	assert.Nil(t, record)

	var gotErr *service.UpstreamRequestError
	require.True(t, errors.As(err, &gotErr))
	assert.Equal(t, "/character/dojang", gotErr.Endpoint)
}

func TestLookupService_SearchCharacter_SharedDateAndOCID(t *testing.T) {
	fx := createTestLookupService(t)

	ctx := context.Background()

	fx.client.EXPECT().ResolveOCID(ctx, "TestHero").Return("abc123", nil)

	var mu sync.Mutex
	seen := make([]map[string]string, 0, 12)

	fx.client.EXPECT().
		Fetch(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ string, params map[string]string) {
			mu.Lock()
			seen = append(seen, params)
			mu.Unlock()
		}).
		Return(json.RawMessage(`{}`), nil)

	_, err := fx.service.SearchCharacter(ctx, "TestHero")

	require.NoError(t, err)
	require.Len(t, seen, 12)
	for _, params := range seen {
		assert.Equal(t, "abc123", params["ocid"])
		assert.Equal(t, "2026-09-01", params["date"])
	}
}

func TestLookupService_GetWeeklyBosses_Success(t *testing.T) {
	fx := createTestLookupService(t)

	ctx := context.Background()

	fx.client.EXPECT().ResolveOCID(ctx, "TestHero").Return("abc123", nil)
	fx.client.EXPECT().
		Fetch(ctx, "/character/weekly-bosses", map[string]string{"ocid": "abc123", "date": "2026-09-01"}).
		Return(json.RawMessage(`{"data":[{"id":"lucid_hard","name":"하드 루시드","crystalValue":61797500,"difficulty":"Hard"}]}`), nil)

	records, err := fx.service.GetWeeklyBosses(ctx, "TestHero")

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "lucid_hard", records[0].ID)
	assert.Equal(t, int64(61797500), records[0].CrystalValue)
}

func TestLookupService_GetWeeklyBosses_EmptyName(t *testing.T) {
	fx := createTestLookupService(t)

	records, err := fx.service.GetWeeklyBosses(context.Background(), "")

	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLookupService_GetGuildRanking_Filters(t *testing.T) {
	tests := []struct {
		name       string
		input      *usecase.GuildRankingInput
		wantParams map[string]string
	}{
		{
			name:  "no refinement",
			input: &usecase.GuildRankingInput{Page: 1, SearchType: usecase.GuildSearchAll},
			wantParams: map[string]string{
				"page": "1", "date": "2026-09-01", "ranking_type": "0",
			},
		},
		{
			name:  "server refinement",
			input: &usecase.GuildRankingInput{Page: 2, SearchType: usecase.GuildSearchServer, Parameter: "Scania"},
			wantParams: map[string]string{
				"page": "2", "date": "2026-09-01", "ranking_type": "0", "world_name": "Scania",
			},
		},
		{
			name:  "guild refinement",
			input: &usecase.GuildRankingInput{Page: 1, SearchType: usecase.GuildSearchGuild, GuildName: "Guildy"},
			wantParams: map[string]string{
				"page": "1", "date": "2026-09-01", "ranking_type": "0", "guild_name": "Guildy",
			},
		},
		{
			name:  "page below one defaults to one",
			input: &usecase.GuildRankingInput{Page: 0},
			wantParams: map[string]string{
				"page": "1", "date": "2026-09-01", "ranking_type": "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLookupService(t)
			ctx := context.Background()

			fx.client.EXPECT().
				Fetch(ctx, "/ranking/guild", tt.wantParams).
				Return(json.RawMessage(`{"ranking":[]}`), nil)

			output, err := fx.service.GetGuildRanking(ctx, tt.input)

			require.NoError(t, err)
			assert.NotNil(t, output)
		})
	}
}

func TestLookupService_GetGuildRanking_UnknownSearchType(t *testing.T) {
	fx := createTestLookupService(t)

	output, err := fx.service.GetGuildRanking(context.Background(), &usecase.GuildRankingInput{
		Page:       1,
		SearchType: "alliance",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLookupService_GetGuildRanking_TotalPages(t *testing.T) {
	fx := createTestLookupService(t)

	ctx := context.Background()

	rows := make([]map[string]any, 45)
	for i := range rows {
		rows[i] = map[string]any{"guild_name": "G", "ranking": i + 1}
	}
	payload, err := json.Marshal(map[string]any{"ranking": rows})
	require.NoError(t, err)

	fx.client.EXPECT().
		Fetch(ctx, "/ranking/guild", mock.Anything).
		Return(json.RawMessage(payload), nil)

	output, err := fx.service.GetGuildRanking(ctx, &usecase.GuildRankingInput{Page: 1})

	require.NoError(t, err)
	assert.Len(t, output.Rankings, 45)
	assert.Equal(t, 3, output.TotalPages)
}
