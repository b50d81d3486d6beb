package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/spacesedan/sentiquery/internal/models"
)

type HuggingFaceClient struct {
	Client   *http.Client
	endpoint string
	apiKey   string
	limiter  *rate.Limiter
}

type HuggingFaceOption func(*HuggingFaceClient)

// WithRateLimit paces outgoing classification requests to rps per second.
// A non-positive rps leaves the client unthrottled.
func WithRateLimit(rps float64, burst int) HuggingFaceOption {
	return func(h *HuggingFaceClient) {
		if rps <= 0 {
			return
		}
		if burst < 1 {
			burst = 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewHuggingFaceClient builds a classification client. An empty apiKey is
// accepted: requests then go out with an empty bearer and fail one by one.
func NewHuggingFaceClient(endpoint, apiKey string, timeout time.Duration, opts ...HuggingFaceOption) *HuggingFaceClient {
	if endpoint == "" {
		endpoint = HF_SENTIMENT_ANALYSIS_ENDPOINT
	}
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}
	if apiKey == "" {
		slog.Warn("[HuggingFaceClient] HUGGINGFACE_API_KEY is empty, scoring requests will be rejected")
	}

	slog.Info("[HuggingFaceClient] Initializing Client",
		slog.String("endpoint", endpoint),
		slog.Duration("timeout", timeout))

	h := &HuggingFaceClient{
		Client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		apiKey:   apiKey,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Score classifies a single snippet. Only the first label of the first result
// is used. Every failure is wrapped in ErrScoringFailed.
func (h *HuggingFaceClient) Score(ctx context.Context, snippet models.Snippet) (models.ScoredSnippet, error) {
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return models.ScoredSnippet{}, fmt.Errorf("%w: rate limiter: %w", ErrScoringFailed, err)
		}
	}

	var result models.InferenceResponse
	input := models.InferenceRequest{Inputs: []string{snippet.Text}}
	if err := h.postJSON(ctx, input, &result); err != nil {
		return models.ScoredSnippet{}, fmt.Errorf("%w: %w", ErrScoringFailed, err)
	}

	if len(result) == 0 || len(result[0]) == 0 {
		return models.ScoredSnippet{}, fmt.Errorf("%w: %w: empty classification", ErrScoringFailed, ErrMalformedResponse)
	}
	top := result[0][0]
	if top.Label == "" || top.Score < 0 || top.Score > 1 {
		return models.ScoredSnippet{}, fmt.Errorf("%w: %w: label %q score %v",
			ErrScoringFailed, ErrMalformedResponse, top.Label, top.Score)
	}

	return models.ScoredSnippet{
		Snippet: snippet,
		Label:   models.Label(top.Label),
		Score:   SignScore(top.Label, top.Score),
	}, nil
}

// SignScore negates the confidence of the negative class.
func SignScore(label string, score float64) float64 {
	if strings.EqualFold(label, string(models.LABEL_NEGATIVE)) {
		return -score
	}
	return score
}

// HealthCheck reports whether the inference endpoint answers at all. Client
// errors still count as reachable since a GET is not a valid classify call.
func (h *HuggingFaceClient) HealthCheck(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.endpoint, http.NoBody)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", USER_AGENT)
	h.authorize(req)

	resp, err := h.Client.Do(req)
	if err != nil {
		slog.Debug("[HuggingFaceClient] Health check failed",
			slog.String("error", err.Error()))
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode < http.StatusInternalServerError
}

func (h *HuggingFaceClient) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
}

func (h *HuggingFaceClient) postJSON(ctx context.Context, input any, output any) error {
	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", USER_AGENT)
	h.authorize(req)

	start := time.Now()
	resp, err := h.Client.Do(req)
	if err != nil {
		slog.Debug("[HuggingFaceClient] Request failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", time.Since(start)))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Debug("[HuggingFaceClient] Non-success status",
			slog.Int("status", resp.StatusCode),
			getPreview(respBody))
		return fmt.Errorf("status code %d", resp.StatusCode)
	}

	if err := json.Unmarshal(respBody, output); err != nil {
		slog.Debug("[HuggingFaceClient] Failed to unmarshal response",
			slog.String("error", err.Error()),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}
