package validation

import (
	"errors"
	"net/http"
	"testing"

	apperrors "genonaut/utils/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateListContent_Valid(t *testing.T) {
	v := New(100)
	tag := uuid.New()

	values, err := v.ValidateListContent(ListContentParams{
		Page:            "2",
		PageSize:        "25",
		TagIDs:          []string{tag.String()},
		TagMatch:        "all",
		SortOrder:       "asc",
		CursorDirection: "prev",
		SearchTerm:      "sunset",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, values.Page)
	assert.Equal(t, 25, values.PageSize)
	assert.Equal(t, []uuid.UUID{tag}, values.TagIDs)

	values, err = v.ValidateListContent(ListContentParams{})
	require.NoError(t, err)
	assert.Zero(t, values.Page)
	assert.Zero(t, values.PageSize)
}

func TestValidateListContent_Invalid(t *testing.T) {
	v := New(100)

	tests := []struct {
		name   string
		params ListContentParams
		field  string
	}{
		{"page size zero", ListContentParams{PageSize: "0"}, "page_size"},
		{"page size too large", ListContentParams{PageSize: "101"}, "page_size"},
		{"page size not a number", ListContentParams{PageSize: "ten"}, "page_size"},
		{"page zero", ListContentParams{Page: "0"}, "page"},
		{"bad tag", ListContentParams{TagIDs: []string{"not-a-uuid"}}, "tag[0]"},
		{"bad tag match", ListContentParams{TagMatch: "most"}, "tag_match"},
		{"bad order", ListContentParams{SortOrder: "random"}, "sort_order"},
		{"bad direction", ListContentParams{CursorDirection: "back"}, "cursor_direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.ValidateListContent(tt.params)
			require.Error(t, err)

			appErr, ok := apperrors.AsAppContextError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatusCode())

			var verr *ValidationErrorType
			require.True(t, errors.As(err, &verr))
			require.NotEmpty(t, verr.Errors)
			assert.Equal(t, tt.field, verr.Errors[0].Field)
		})
	}
}

func TestValidateListContent_TooManyTags(t *testing.T) {
	tags := make([]string, 51)
	for i := range tags {
		tags[i] = uuid.NewString()
	}
	_, err := New(100).ValidateListContent(ListContentParams{TagIDs: tags})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag")
}

func TestValidateListContent_CustomMaxPageSize(t *testing.T) {
	v := New(20)
	_, err := v.ValidateListContent(ListContentParams{PageSize: "21"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 20")
}

func TestValidateTagIDs(t *testing.T) {
	v := New(0)
	tag := uuid.New()

	ids, err := v.ValidateTagIDs(TagIDsParams{TagIDs: []string{tag.String()}})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{tag}, ids)

	_, err = v.ValidateTagIDs(TagIDsParams{})
	require.Error(t, err)

	_, err = v.ValidateTagIDs(TagIDsParams{TagIDs: []string{"x"}})
	require.Error(t, err)
}
