package news

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// lookbackDays bounds the company-news query window. Finnhub requires an
// explicit from/to range.
const lookbackDays = 7

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

// FetchCompanyNews returns up to limit recent articles for a stock symbol,
// in whatever order the provider returns them. An empty result is not an
// error.
func (c *FinnhubClient) FetchCompanyNews(symbol string, limit int) ([]Article, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -lookbackDays)

	res, _, err := c.client.CompanyNews(context.Background()).
		Symbol(symbol).
		From(from.Format("2006-01-02")).
		To(to.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub company news: %w", err)
	}

	return fromCompanyNews(res, limit), nil
}

func fromCompanyNews(res []finnhub.CompanyNews, limit int) []Article {
	articles := make([]Article, 0, len(res))

	for _, item := range res {
		if limit > 0 && len(articles) >= limit {
			break
		}

		a := Article{}

		if item.Headline != nil {
			a.Headline = *item.Headline
		}

		if item.Summary != nil {
			a.Summary = *item.Summary
		}

		if item.Url != nil {
			a.URL = *item.Url
		}

		if item.Source != nil {
			a.Publisher = *item.Source
		}

		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0)
		}

		if a.Headline == "" {
			continue
		}

		articles = append(articles, a)
	}

	return articles
}
