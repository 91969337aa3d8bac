package list_content_usecase

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"genonaut/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allTokens = []string{TokenUserRegular, TokenUserAuto, TokenCommunityRegular, TokenCommunityAuto}

func TestResolveSourceTypes_TruthTable(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		var tokens []string
		for bit, token := range allTokens {
			if mask&(1<<bit) != 0 {
				tokens = append(tokens, token)
			}
		}
		t.Run(fmt.Sprintf("mask_%04b", mask), func(t *testing.T) {
			sel, err := ResolveSourceTypes(SourceTypeRequest{Tokens: tokens, TokensPresent: true})
			require.NoError(t, err)

			assert.Equal(t, mask&1 != 0, sel.UserRegular)
			assert.Equal(t, mask&2 != 0, sel.UserAuto)
			assert.Equal(t, mask&4 != 0, sel.CommunityRegular)
			assert.Equal(t, mask&8 != 0, sel.CommunityAuto)
			assert.Equal(t, mask == 0, sel.IsEmpty())
		})
	}
}

func TestResolveSourceTypes_AbsentVersusExplicitEmpty(t *testing.T) {
	absent, err := ResolveSourceTypes(SourceTypeRequest{})
	require.NoError(t, err)
	assert.Equal(t, domain.SelectAll(), absent)

	explicit, err := ResolveSourceTypes(SourceTypeRequest{Tokens: []string{""}, TokensPresent: true})
	require.NoError(t, err)
	assert.True(t, explicit.IsEmpty())

	none, err := ResolveSourceTypes(SourceTypeRequest{TokensPresent: true})
	require.NoError(t, err)
	assert.True(t, none.IsEmpty())
}

func TestResolveSourceTypes_OrderAndDuplicatesDoNotMatter(t *testing.T) {
	want, err := ResolveSourceTypes(SourceTypeRequest{Tokens: []string{TokenUserAuto, TokenCommunityRegular}, TokensPresent: true})
	require.NoError(t, err)

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		tokens := []string{TokenCommunityRegular, TokenUserAuto, TokenUserAuto, "", TokenCommunityRegular}
		rng.Shuffle(len(tokens), func(a, b int) { tokens[a], tokens[b] = tokens[b], tokens[a] })

		got, err := ResolveSourceTypes(SourceTypeRequest{Tokens: tokens, TokensPresent: true})
		require.NoError(t, err)
		assert.Equal(t, want, got, "tokens %v", tokens)
	}
}

func TestResolveSourceTypes_UnknownToken(t *testing.T) {
	_, err := ResolveSourceTypes(SourceTypeRequest{Tokens: []string{TokenUserRegular, "bogus"}, TokensPresent: true})
	require.Error(t, err)

	var filterErr *domain.FilterValidationError
	require.True(t, errors.As(err, &filterErr))
	assert.Equal(t, domain.UnknownSourceToken, filterErr.Kind)
	assert.Equal(t, "bogus", filterErr.Value)
	assert.Contains(t, err.Error(), `"bogus"`)
}

func TestResolveSourceTypes_Legacy(t *testing.T) {
	tests := []struct {
		name          string
		contentTypes  string
		creatorFilter string
		want          domain.SourceTypeSelection
	}{
		{"regular only", "regular", "", domain.SourceTypeSelection{UserRegular: true, CommunityRegular: true}},
		{"auto own", "auto", "own", domain.SourceTypeSelection{UserAuto: true}},
		{"both others", "regular,auto", "others", domain.SourceTypeSelection{CommunityRegular: true, CommunityAuto: true}},
		{"creator only", "", "own", domain.SourceTypeSelection{UserRegular: true, UserAuto: true}},
		{"spaces tolerated", " auto , regular ", "all", domain.SelectAll()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveSourceTypes(SourceTypeRequest{LegacyContentTypes: tt.contentTypes, LegacyCreatorFilter: tt.creatorFilter})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveSourceTypes_LegacyErrors(t *testing.T) {
	_, err := ResolveSourceTypes(SourceTypeRequest{LegacyContentTypes: "video"})
	var filterErr *domain.FilterValidationError
	require.True(t, errors.As(err, &filterErr))
	assert.Equal(t, domain.UnknownLegacyValue, filterErr.Kind)
	assert.Equal(t, "content_types", filterErr.Field)

	_, err = ResolveSourceTypes(SourceTypeRequest{LegacyCreatorFilter: "friends"})
	require.True(t, errors.As(err, &filterErr))
	assert.Equal(t, "creator_filter", filterErr.Field)
}

func TestResolveSourceTypes_TokensOverrideLegacy(t *testing.T) {
	got, err := ResolveSourceTypes(SourceTypeRequest{
		Tokens:              []string{TokenCommunityAuto},
		TokensPresent:       true,
		LegacyContentTypes:  "regular",
		LegacyCreatorFilter: "own",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceTypeSelection{CommunityAuto: true}, got)

	got, err = ResolveSourceTypes(SourceTypeRequest{TokensPresent: true, LegacyContentTypes: "regular"})
	require.NoError(t, err)
	assert.True(t, got.IsEmpty())
}
