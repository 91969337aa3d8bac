package di

import (
	"genonaut/config"
	"genonaut/driver/content_db"
	"genonaut/gateway/fetch_tags_gateway"
	"genonaut/gateway/list_content_gateway"
	"genonaut/gateway/tag_link_gateway"
	"genonaut/usecase/fetch_tags_usecase"
	"genonaut/usecase/list_content_usecase"
	"genonaut/usecase/tag_link_usecase"
	"genonaut/validation"
)

type ApplicationComponents struct {
	ListContentUsecase  *list_content_usecase.ListContentUsecase
	TagLinkUsecase      *tag_link_usecase.TagLinkUsecase
	FetchTagsUsecase    *fetch_tags_usecase.FetchTagsUsecase
	Validator           *validation.Validator
	ContentDBRepository *content_db.ContentDBRepository
}

func NewApplicationComponents(pool content_db.PgxIface, cfg *config.Config) *ApplicationComponents {
	contentDBRepository := content_db.NewContentDBRepository(pool, content_db.Options{
		Layout:               StoreLayout(cfg.Store),
		TagJunction:          cfg.Store.TagJunction,
		TagsRelation:         cfg.Store.TagsRelation,
		AllModeSemiJoinLimit: cfg.Pagination.AllModeSemiJoinLimit,
		StatementTimeout:     cfg.Database.StatementTimeout,
	})

	listContentGatewayImpl := list_content_gateway.NewListContentGateway(contentDBRepository)
	listContentUsecase := list_content_usecase.NewListContentUsecase(listContentGatewayImpl, PaginationConfig(cfg.Pagination))

	tagLinkGatewayImpl := tag_link_gateway.NewTagLinkGateway(contentDBRepository)
	tagLinkUsecase := tag_link_usecase.NewTagLinkUsecase(tagLinkGatewayImpl)

	fetchTagsGatewayImpl := fetch_tags_gateway.NewFetchTagsGateway(contentDBRepository)
	fetchTagsUsecase := fetch_tags_usecase.NewFetchTagsUsecase(fetchTagsGatewayImpl)

	return &ApplicationComponents{
		ListContentUsecase:  listContentUsecase,
		TagLinkUsecase:      tagLinkUsecase,
		FetchTagsUsecase:    fetchTagsUsecase,
		Validator:           validation.New(cfg.Pagination.MaxPageSize),
		ContentDBRepository: contentDBRepository,
	}
}

// StoreLayout picks the relation layout named in the store config.
func StoreLayout(cfg config.StoreConfig) content_db.StoreLayout {
	if cfg.Layout == config.StoreLayoutUnion {
		return content_db.UnionLayout{Regular: cfg.RegularRelation, Auto: cfg.AutoRelation}
	}
	return content_db.PartitionedLayout{Parent: cfg.ParentRelation, Regular: cfg.RegularRelation, Auto: cfg.AutoRelation}
}

func PaginationConfig(cfg config.PaginationConfig) list_content_usecase.PaginationConfig {
	return list_content_usecase.PaginationConfig{
		DefaultPageSize:         cfg.DefaultPageSize,
		MaxPageSize:             cfg.MaxPageSize,
		SkipTotalCount:          cfg.SkipTotalCount,
		SkipCountWithTagFilters: cfg.SkipCountWithTagFilters,
	}
}
