package clients

import (
	"context"
	"errors"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentiquery/internal/models"
)

func newInferenceServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("write response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHuggingFaceClient_Score_Request(t *testing.T) {
	var gotAuth, gotContentType, gotMethod string
	var gotBody models.InferenceRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`[[{"label":"POSITIVE","score":0.9},{"label":"NEGATIVE","score":0.1}]]`))
	}))
	defer srv.Close()

	client := NewHuggingFaceClient(srv.URL, "hf_secret", time.Second)
	scored, err := client.Score(context.Background(), models.Snippet{Text: "loved it"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "Bearer hf_secret", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, []string{"loved it"}, gotBody.Inputs)

	assert.Equal(t, "loved it", scored.Text)
	assert.Equal(t, models.LABEL_POSITIVE, scored.Label)
	assert.InDelta(t, 0.9, scored.Score, 1e-9)
}

func TestHuggingFaceClient_Score_NegativeIsSigned(t *testing.T) {
	srv := newInferenceServer(t, http.StatusOK, `[[{"label":"NEGATIVE","score":0.8},{"label":"POSITIVE","score":0.2}]]`)

	scored, err := NewHuggingFaceClient(srv.URL, "k", time.Second).
		Score(context.Background(), models.Snippet{Text: "hated it"})

	require.NoError(t, err)
	assert.Equal(t, models.LABEL_NEGATIVE, scored.Label)
	assert.InDelta(t, -0.8, scored.Score, 1e-9)
}

func TestHuggingFaceClient_Score_UsesFirstPairOnly(t *testing.T) {
	srv := newInferenceServer(t, http.StatusOK, `[[{"label":"NEGATIVE","score":0.3},{"label":"POSITIVE","score":0.7}],[{"label":"POSITIVE","score":1}]]`)

	scored, err := NewHuggingFaceClient(srv.URL, "k", time.Second).
		Score(context.Background(), models.Snippet{Text: "meh"})

	require.NoError(t, err)
	assert.InDelta(t, -0.3, scored.Score, 1e-9)
}

func TestHuggingFaceClient_Score_Failures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantShape bool
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":"Invalid credentials"}`, false},
		{"model loading", http.StatusServiceUnavailable, `{"error":"loading"}`, false},
		{"not json", http.StatusOK, `nope`, true},
		{"object instead of array", http.StatusOK, `{"label":"POSITIVE","score":0.5}`, true},
		{"empty outer", http.StatusOK, `[]`, true},
		{"empty inner", http.StatusOK, `[[]]`, true},
		{"score out of range", http.StatusOK, `[[{"label":"POSITIVE","score":1.5}]]`, true},
		{"missing label", http.StatusOK, `[[{"score":0.5}]]`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newInferenceServer(t, tt.status, tt.body)

			_, err := NewHuggingFaceClient(srv.URL, "k", time.Second).
				Score(context.Background(), models.Snippet{Text: "x"})

			require.ErrorIs(t, err, ErrScoringFailed)
			assert.Equal(t, tt.wantShape, errors.Is(err, ErrMalformedResponse))
		})
	}
}

func TestHuggingFaceClient_Score_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewHuggingFaceClient(srv.URL, "k", time.Second).Score(ctx, models.Snippet{Text: "x"})

	require.ErrorIs(t, err, ErrScoringFailed)
}

func TestHuggingFaceClient_Score_EmptyKeyStillSends(t *testing.T) {
	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewHuggingFaceClient(srv.URL, "", time.Second).Score(context.Background(), models.Snippet{Text: "x"})

	require.ErrorIs(t, err, ErrScoringFailed)
	assert.Equal(t, "Bearer", strings.TrimSpace(gotAuth.Load().(string)))
}

func TestHuggingFaceClient_Score_RateLimited(t *testing.T) {
	srv := newInferenceServer(t, http.StatusOK, `[[{"label":"POSITIVE","score":0.5}]]`)
	client := NewHuggingFaceClient(srv.URL, "k", time.Second, WithRateLimit(0.001, 1))

	_, err := client.Score(context.Background(), models.Snippet{Text: "first"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Score(ctx, models.Snippet{Text: "second"})

	require.ErrorIs(t, err, ErrScoringFailed)
}

func TestSignScore(t *testing.T) {
	for _, s := range []float64{0, 0.25, 0.5, 1} {
		assert.InDelta(t, -s, SignScore("NEGATIVE", s), 1e-12)
		assert.InDelta(t, -s, SignScore("negative", s), 1e-12)
		assert.InDelta(t, s, SignScore("POSITIVE", s), 1e-12)
		assert.InDelta(t, s, SignScore("NEUTRAL", s), 1e-12)
	}
}

func TestHuggingFaceClient_HealthCheck(t *testing.T) {
	ok := newInferenceServer(t, http.StatusMethodNotAllowed, `{}`)
	down := newInferenceServer(t, http.StatusBadGateway, `{}`)

	assert.True(t, NewHuggingFaceClient(ok.URL, "k", time.Second).HealthCheck(context.Background()))
	assert.False(t, NewHuggingFaceClient(down.URL, "k", time.Second).HealthCheck(context.Background()))
}
