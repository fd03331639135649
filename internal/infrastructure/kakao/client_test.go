package kakao

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string, retries int) *Client {
	return NewClient(Config{
		APIKey:     "test-key",
		BaseURL:    url,
		PageSize:   2,
		RPS:        1000,
		MaxRetries: retries,
	})
}

func TestClient_SearchByTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/search/book", r.URL.Path)
		assert.Equal(t, "KakaoAK test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "모순", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "2", r.URL.Query().Get("size"))
		assert.Equal(t, "title", r.URL.Query().Get("target"))

		resp := SearchResponse{
			Meta: Meta{TotalCount: 2, PageableCount: 2, IsEnd: true},
			Documents: []Document{
				{Title: "모순", Authors: []string{"양귀자"}, Publisher: "쓰다", ISBN: "8998441012 9788998441012"},
				{Title: "모순(리커버:K)", Authors: []string{"양귀자"}, Publisher: "쓰다", ISBN: "8998441101 9788998441104"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	res, err := newTestClient(server.URL, 0).SearchByTitle(context.Background(), "모순", 1)
	require.NoError(t, err)
	assert.True(t, res.Meta.IsEnd)
	require.Len(t, res.Documents, 2)
	assert.Equal(t, "모순", res.Documents[0].Title)
}

func TestClient_SearchByAuthorUsesPersonTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "person", r.URL.Query().Get("target"))
		_, _ = w.Write([]byte(`{"meta":{"is_end":false},"documents":[]}`))
	}))
	defer server.Close()

	res, err := newTestClient(server.URL, 0).SearchByAuthor(context.Background(), "양귀자", 3)
	require.NoError(t, err)
	assert.False(t, res.Meta.IsEnd)
	assert.Empty(t, res.Documents)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"meta":{"is_end":true},"documents":[]}`))
	}))
	defer server.Close()

	res, err := newTestClient(server.URL, 3).SearchByTitle(context.Background(), "q", 1)
	require.NoError(t, err)
	assert.True(t, res.Meta.IsEnd)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_DoesNotRetryBadRequest(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorType":"InvalidArgument","message":"query parameter required"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 3).SearchByTitle(context.Background(), "q", 1)
	require.Error(t, err)
	assert.True(t, IsBadRequest(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 1).SearchByTitle(context.Background(), "q", 1)
	require.Error(t, err)
	assert.False(t, IsBadRequest(err))
	assert.Contains(t, err.Error(), "after 1 retries")
}

func TestClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"meta":`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, 2).SearchByTitle(context.Background(), "q", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}

func TestClient_PageOutOfRange(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:0", 0).SearchByTitle(context.Background(), "q", 51)
	require.Error(t, err)
	assert.True(t, IsBadRequest(err))
}
