package list_content_usecase

import (
	"strings"

	"genonaut/domain"
)

// Source-type tokens accepted by content_source_types.
const (
	TokenUserRegular      = "user-regular"
	TokenUserAuto         = "user-auto"
	TokenCommunityRegular = "community-regular"
	TokenCommunityAuto    = "community-auto"
)

// SourceTypeRequest carries the raw source filter of a request.
// TokensPresent distinguishes an absent parameter from an explicitly empty one.
type SourceTypeRequest struct {
	Tokens              []string
	TokensPresent       bool
	LegacyContentTypes  string
	LegacyCreatorFilter string
}

// ResolveSourceTypes turns a request into the four inclusion flags.
// Explicit tokens win outright; legacy parameters are consulted only when tokens are absent.
func ResolveSourceTypes(req SourceTypeRequest) (domain.SourceTypeSelection, error) {
	if req.TokensPresent {
		return resolveTokens(req.Tokens)
	}
	if req.LegacyContentTypes == "" && req.LegacyCreatorFilter == "" {
		return domain.SelectAll(), nil
	}
	return resolveLegacy(req.LegacyContentTypes, req.LegacyCreatorFilter)
}

// resolveTokens treats empty tokens as no-ops, so [""] is the explicit empty selection.
func resolveTokens(tokens []string) (domain.SourceTypeSelection, error) {
	var sel domain.SourceTypeSelection
	for _, raw := range tokens {
		switch token := strings.TrimSpace(raw); token {
		case "":
		case TokenUserRegular:
			sel.UserRegular = true
		case TokenUserAuto:
			sel.UserAuto = true
		case TokenCommunityRegular:
			sel.CommunityRegular = true
		case TokenCommunityAuto:
			sel.CommunityAuto = true
		default:
			return domain.SourceTypeSelection{}, &domain.FilterValidationError{
				Kind:  domain.UnknownSourceToken,
				Field: "content_source_types",
				Value: raw,
			}
		}
	}
	return sel, nil
}

func resolveLegacy(contentTypes, creatorFilter string) (domain.SourceTypeSelection, error) {
	var regular, auto bool
	for _, part := range strings.Split(contentTypes, ",") {
		switch value := strings.TrimSpace(part); value {
		case "":
		case string(domain.ContentSourceRegular):
			regular = true
		case string(domain.ContentSourceAuto):
			auto = true
		default:
			return domain.SourceTypeSelection{}, &domain.FilterValidationError{
				Kind:  domain.UnknownLegacyValue,
				Field: "content_types",
				Value: value,
			}
		}
	}
	if !regular && !auto {
		regular, auto = true, true
	}

	var own, others bool
	switch strings.TrimSpace(creatorFilter) {
	case "", "all":
		own, others = true, true
	case "own":
		own = true
	case "others":
		others = true
	default:
		return domain.SourceTypeSelection{}, &domain.FilterValidationError{
			Kind:  domain.UnknownLegacyValue,
			Field: "creator_filter",
			Value: creatorFilter,
		}
	}

	return domain.SourceTypeSelection{
		UserRegular:      regular && own,
		UserAuto:         auto && own,
		CommunityRegular: regular && others,
		CommunityAuto:    auto && others,
	}, nil
}
