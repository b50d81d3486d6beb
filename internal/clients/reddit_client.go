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

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/spacesedan/sentiquery/internal/models"
)

type RedditConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	APIURL       string
	Timeout      time.Duration
}

// RedditClient searches posts through the official API using an app-only
// OAuth token. It serves as an alternative corpus source to the archive.
type RedditClient struct {
	Config  *clientcredentials.Config
	Client  *http.Client
	apiURL  string
	timeout time.Duration
}

func NewRedditClient(cfg RedditConfig) *RedditClient {
	if cfg.TokenURL == "" {
		cfg.TokenURL = REDDIT_AUTH_URL
	}
	if cfg.APIURL == "" {
		cfg.APIURL = REDDIT_API_URL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DEFAULT_TIMEOUT
	}

	oauthConf := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	// token requests share the search timeout
	tokenClient := &http.Client{Timeout: cfg.Timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenClient)
	client := oauthConf.Client(ctx)
	client.Timeout = cfg.Timeout

	slog.Info("[RedditClient] Initializing Client",
		slog.String("api_url", cfg.APIURL),
		slog.Duration("timeout", cfg.Timeout))

	return &RedditClient{
		Config:  oauthConf,
		Client:  client,
		apiURL:  cfg.APIURL,
		timeout: cfg.Timeout,
	}
}

// FetchCorpus searches posts matching query and returns their self text as
// snippets. Link posts without text are skipped.
func (rc *RedditClient) FetchCorpus(ctx context.Context, query string, limit int) ([]models.Snippet, error) {
	ctx, cancel := context.WithTimeout(ctx, rc.timeout)
	defer cancel()

	parsedUrl, err := url.Parse(rc.apiURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endpoint: %w", ErrSourceUnavailable, err)
	}
	queryParams := parsedUrl.Query()
	queryParams.Set("q", query)
	queryParams.Set("limit", strconv.Itoa(limit))
	queryParams.Set("sort", "relevance")
	queryParams.Set("type", "link")
	parsedUrl.RawQuery = queryParams.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsedUrl.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrSourceUnavailable, err)
	}
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := rc.Client.Do(req)
	if err != nil {
		slog.Error("[RedditClient] Search request failed",
			slog.String("query", query),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("[RedditClient] Search returned non-success status",
			slog.String("query", query),
			slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status code %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrSourceUnavailable, err)
	}

	var listing models.RedditAPIResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if listing.Data == nil {
		return nil, fmt.Errorf("%w: missing data field", ErrMalformedResponse)
	}

	bodies := make([]string, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		text := child.Data.Selftext
		if text == "" {
			text = child.Data.Body
		}
		bodies = append(bodies, text)
	}

	snippets := snippetsFromBodies(bodies, limit)
	slog.Info("[RedditClient] Search successful",
		slog.String("query", query),
		slog.Int("results", len(bodies)),
		slog.Int("snippets", len(snippets)))

	return snippets, nil
}
