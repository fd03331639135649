// Package kakao is a client for the Kakao Daum book search API
// (GET /v3/search/book), the upstream used for book search.
package kakao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL  = "https://dapi.kakao.com"
	DefaultPageSize = 10
	searchPath      = "/v3/search/book"
	maxPage         = 50
	maxPageSize     = 50
)

// Target restricts which field the query is matched against.
type Target string

const (
	TargetTitle  Target = "title"
	TargetPerson Target = "person"
)

type Config struct {
	APIKey     string
	BaseURL    string
	PageSize   int
	RPS        int
	MaxRetries int
	Timeout    time.Duration
}

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	pageSize   int
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PageSize <= 0 || cfg.PageSize > maxPageSize {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		pageSize:   cfg.PageSize,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(cfg.RPS)), 1),
		maxRetries: cfg.MaxRetries,
	}
}

// SearchResponse matches the /v3/search/book payload.
type SearchResponse struct {
	Meta      Meta       `json:"meta"`
	Documents []Document `json:"documents"`
}

type Meta struct {
	TotalCount    int  `json:"total_count"`
	PageableCount int  `json:"pageable_count"`
	IsEnd         bool `json:"is_end"`
}

type Document struct {
	Title       string   `json:"title"`
	Contents    string   `json:"contents"`
	URL         string   `json:"url"`
	ISBN        string   `json:"isbn"` // "ISBN10 ISBN13", either may be empty
	Datetime    string   `json:"datetime"`
	Authors     []string `json:"authors"`
	Publisher   string   `json:"publisher"`
	Translators []string `json:"translators"`
	Price       int      `json:"price"`
	SalePrice   int      `json:"sale_price"`
	Thumbnail   string   `json:"thumbnail"`
	Status      string   `json:"status"`
}

// StatusError is returned for a non-2xx upstream answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("kakao: unexpected status code %d: %s", e.StatusCode, e.Body)
}

// IsBadRequest reports whether err is an upstream rejection of the query itself.
func IsBadRequest(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusBadRequest
}

func (c *Client) SearchByTitle(ctx context.Context, query string, page int) (*SearchResponse, error) {
	return c.Search(ctx, query, page, TargetTitle)
}

func (c *Client) SearchByAuthor(ctx context.Context, query string, page int) (*SearchResponse, error) {
	return c.Search(ctx, query, page, TargetPerson)
}

// Search fetches one page. Kakao only serves pages 1..50.
func (c *Client) Search(ctx context.Context, query string, page int, target Target) (*SearchResponse, error) {
	if page < 1 || page > maxPage {
		return nil, &StatusError{StatusCode: http.StatusBadRequest, Body: fmt.Sprintf("page %d out of range 1..%d", page, maxPage)}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(c.pageSize))
	params.Set("target", string(target))

	var res SearchResponse
	if err := c.get(ctx, c.baseURL+searchPath+"?"+params.Encode(), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) get(ctx context.Context, u string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 200ms, 400ms, 800ms...
			backoff := time.Duration(1<<uint(i-1)) * 200 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		retry, err := c.do(ctx, u, target)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("kakao: after %d retries: %w", c.maxRetries, lastErr)
}

// do performs one attempt and reports whether a failure is worth retrying.
func (c *Client) do(ctx context.Context, u string, target interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("kakao: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		statusErr := &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return retry, statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return false, fmt.Errorf("kakao: decode response: %w", err)
	}
	return false, nil
}
