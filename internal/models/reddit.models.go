package models

// PullPushResponse is the comment search payload. Data is a pointer so an
// absent field can be told apart from an empty result set.
type PullPushResponse struct {
	Data *[]PullPushComment `json:"data"`
}

type PullPushComment struct {
	ID        string  `json:"id"`
	Author    string  `json:"author"`
	Subreddit string  `json:"subreddit"`
	Body      string  `json:"body"`
	Score     int     `json:"score"`
	CreatedAt float64 `json:"created_utc"`
}

type RedditAPIResponse struct {
	Data *RedditAPIData `json:"data"`
}

type RedditAPIData struct {
	After    string           `json:"after"`
	Children []RedditAPIChild `json:"children"`
}

type RedditAPIChild struct {
	Data RedditAPIChildData `json:"data"`
}

type RedditAPIChildData struct {
	Subreddit      string  `json:"subreddit"`
	AuthorFullname string  `json:"author_fullname"`
	Title          string  `json:"title"`
	Selftext       string  `json:"selftext"`
	Body           string  `json:"body"`
	Ups            int     `json:"ups"`
	CreatedUTC     float64 `json:"created_utc"`
	ID             string  `json:"id"`
	Name           string  `json:"name"`
}
