package validation

import (
	"strconv"
	"strings"

	apperrors "genonaut/utils/errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ListContentParams holds the raw query values of GET /v1/contents that have
// a fixed shape. Source filters and sort_field are resolved later so that
// their errors carry the filter-validation code.
type ListContentParams struct {
	Page            string   `query:"page" validate:"omitempty,page_number"`
	PageSize        string   `query:"page_size" validate:"omitempty,page_size"`
	TagIDs          []string `query:"tag" validate:"max=50,dive,uuid"`
	TagMatch        string   `query:"tag_match" validate:"omitempty,oneof=any all"`
	SortOrder       string   `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	CursorDirection string   `query:"cursor_direction" validate:"omitempty,oneof=next prev"`
	SearchTerm      string   `query:"search_term" validate:"max=256"`
}

// ListContentValues is ListContentParams after conversion.
type ListContentValues struct {
	Page     int
	PageSize int
	TagIDs   []uuid.UUID
}

func registerPaginationRules(validate *validator.Validate, maxPageSize int) {
	_ = validate.RegisterValidation("page_size", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil && n >= 1 && n <= maxPageSize
	})
	_ = validate.RegisterValidation("page_number", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
		return err == nil && n >= 1
	})
}

// ValidateListContent checks the parameters and converts them. Failures are
// UNPROCESSABLE_ENTITY AppContextErrors wrapping a *ValidationErrorType.
func (v *Validator) ValidateListContent(params ListContentParams) (ListContentValues, error) {
	if err := v.check("list_content", params); err != nil {
		return ListContentValues{}, apperrors.NewUnprocessableContextError(
			err.Error(), "rest", "Validator", "ValidateListContent", err, nil)
	}

	values := ListContentValues{TagIDs: make([]uuid.UUID, 0, len(params.TagIDs))}
	values.Page, _ = strconv.Atoi(strings.TrimSpace(params.Page))
	values.PageSize, _ = strconv.Atoi(strings.TrimSpace(params.PageSize))
	for _, raw := range params.TagIDs {
		values.TagIDs = append(values.TagIDs, uuid.MustParse(raw))
	}
	return values, nil
}

// TagIDsParams is the body of the tag link endpoints.
type TagIDsParams struct {
	TagIDs []string `json:"tag_ids" query:"tag_ids" validate:"required,min=1,max=50,dive,uuid"`
}

func (v *Validator) ValidateTagIDs(params TagIDsParams) ([]uuid.UUID, error) {
	if err := v.check("tag_ids", params); err != nil {
		return nil, apperrors.NewUnprocessableContextError(
			err.Error(), "rest", "Validator", "ValidateTagIDs", err, nil)
	}
	ids := make([]uuid.UUID, 0, len(params.TagIDs))
	for _, raw := range params.TagIDs {
		ids = append(ids, uuid.MustParse(raw))
	}
	return ids, nil
}
