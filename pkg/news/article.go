package news

import "time"

// Article is one headline/snippet from the news provider. The batch is
// transient: it feeds the classifier prompt and is discarded.
type Article struct {
	Headline    string
	Summary     string
	URL         string
	Publisher   string
	PublishedAt time.Time
}
