package query

// FeedQuery carries validated pagination input for the feed aggregation.
type FeedQuery struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1,max=100"`
}

const (
	DefaultFeedPage  = 1
	DefaultFeedLimit = 20
)

func NewFeedQuery(page, limit int) *FeedQuery {
	return &FeedQuery{Page: page, Limit: limit}
}

func (q *FeedQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
