package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bszip-backend/internal/domains/book/model"
	"bszip-backend/internal/infrastructure/kakao"
)

func TestToSearchPage(t *testing.T) {
	raw := &kakao.SearchResponse{
		Meta: kakao.Meta{IsEnd: false},
		Documents: []kakao.Document{
			{
				Title:     "모순",
				Authors:   []string{"양귀자"},
				Publisher: "쓰다",
				ISBN:      "8998441012 9788998441012",
				Thumbnail: "https://search1.kakaocdn.net/thumb/1500252",
			},
			{Title: "no authors"},
		},
	}

	page := toSearchPage(raw)
	require.Len(t, page.Results, 2)
	assert.False(t, page.IsLastPage)
	assert.Equal(t, model.BookSummary{
		ISBN:          "8998441012",
		Title:         "모순",
		Authors:       []string{"양귀자"},
		Publisher:     "쓰다",
		CoverImageURL: "https://search1.kakaocdn.net/thumb/1500252",
	}, page.Results[0])
	assert.NotNil(t, page.Results[1].Authors)
	assert.Empty(t, page.Results[1].Authors)
}

func TestToSearchPage_Nil(t *testing.T) {
	page := toSearchPage(nil)
	assert.True(t, page.IsLastPage)
	assert.NotNil(t, page.Results)
	assert.Empty(t, page.Results)
}
