package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spacesedan/sentiquery/internal/models"
)

// PullPushClient searches Reddit comments through the pullpush.io archive.
type PullPushClient struct {
	Client   *http.Client
	endpoint string
	timeout  time.Duration
}

func NewPullPushClient(endpoint string, timeout time.Duration) *PullPushClient {
	if endpoint == "" {
		endpoint = PULLPUSH_SEARCH_ENDPOINT
	}
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}

	slog.Info("[PullPushClient] Initializing Client",
		slog.String("endpoint", endpoint),
		slog.Duration("timeout", timeout))

	return &PullPushClient{
		Client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		timeout:  timeout,
	}
}

// FetchCorpus asks the archive for up to limit comments matching query and
// returns their bodies as snippets, in the order the archive sent them.
func (p *PullPushClient) FetchCorpus(ctx context.Context, query string, limit int) ([]models.Snippet, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	parsedUrl, err := url.Parse(p.endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint: %w", ErrSourceUnavailable, err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Set("size", strconv.Itoa(limit))
	queryParams.Set("q", query)
	parsedUrl.RawQuery = queryParams.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedUrl.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrSourceUnavailable, err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	start := time.Now()
	resp, err := p.Client.Do(req)
	if err != nil {
		slog.Error("[PullPushClient] Search request failed",
			slog.String("query", query),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("[PullPushClient] Search returned non-success status",
			slog.String("query", query),
			slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status code %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrSourceUnavailable, err)
	}

	var result models.PullPushResponse
	if err := json.Unmarshal(body, &result); err != nil {
		slog.Error("[PullPushClient] Failed to unmarshal response",
			slog.String("error", err.Error()),
			getPreview(body))
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if result.Data == nil {
		slog.Error("[PullPushClient] Response has no data field", getPreview(body))
		return nil, fmt.Errorf("%w: missing data field", ErrMalformedResponse)
	}

	bodies := make([]string, 0, len(*result.Data))
	for _, comment := range *result.Data {
		bodies = append(bodies, comment.Body)
	}
	snippets := snippetsFromBodies(bodies, limit)

	slog.Info("[PullPushClient] Search successful",
		slog.String("query", query),
		slog.Int("results", len(bodies)),
		slog.Int("snippets", len(snippets)),
		slog.Duration("elapsed", time.Since(start)))

	return snippets, nil
}

func getPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > 50 {
		raw = raw[:50]
	}
	return slog.String("raw_response", raw)
}
