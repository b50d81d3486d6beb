package clients

import "time"

const (
	PULLPUSH_SEARCH_ENDPOINT       = "https://api.pullpush.io/reddit/search/comment/"
	HF_SENTIMENT_ANALYSIS_ENDPOINT = "https://router.huggingface.co/hf-inference/models/distilbert/distilbert-base-uncased-finetuned-sst-2-english"
	REDDIT_AUTH_URL                = "https://www.reddit.com/api/v1/access_token"
	REDDIT_API_URL                 = "https://oauth.reddit.com"

	DEFAULT_TIMEOUT = 10 * time.Second
	USER_AGENT      = "sentiquery-client/1.0 (+https://github.com/spacesedan/sentiquery)"
)
