package news

import (
	"testing"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"github.com/go-playground/assert/v2"
)

func strPtr(s string) *string { return &s }
func int64Ptr(i int64) *int64 { return &i }

func TestFromCompanyNewsMapsFields(t *testing.T) {
	published := time.Date(2026, time.August, 20, 14, 30, 0, 0, time.UTC).Unix()

	res := []finnhub.CompanyNews{
		{
			Headline: strPtr("Acme Corp Reports Q4 Earnings"),
			Summary:  strPtr("Acme Corp beat expectations with strong Q4 results."),
			Url:      strPtr("https://example.com/acme-q4"),
			Source:   strPtr("Reuters"),
			Datetime: int64Ptr(published),
		},
	}

	articles := fromCompanyNews(res, 5)

	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "Acme Corp Reports Q4 Earnings", a.Headline)
	assert.Equal(t, "Acme Corp beat expectations with strong Q4 results.", a.Summary)
	assert.Equal(t, "https://example.com/acme-q4", a.URL)
	assert.Equal(t, "Reuters", a.Publisher)
	assert.Equal(t, published, a.PublishedAt.Unix())
}

func TestFromCompanyNewsSkipsNilFields(t *testing.T) {
	res := []finnhub.CompanyNews{
		{
			Headline: strPtr("Headline only"),
		},
	}

	articles := fromCompanyNews(res, 5)

	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "Headline only", articles[0].Headline)
	assert.Equal(t, "", articles[0].Summary)
	assert.Equal(t, "", articles[0].URL)
	assert.Equal(t, time.Time{}, articles[0].PublishedAt)
}

func TestFromCompanyNewsDropsEmptyHeadlines(t *testing.T) {
	res := []finnhub.CompanyNews{
		{Summary: strPtr("no headline here")},
		{Headline: strPtr("Kept")},
	}

	articles := fromCompanyNews(res, 5)

	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "Kept", articles[0].Headline)
}

func TestFromCompanyNewsRespectsLimit(t *testing.T) {
	res := []finnhub.CompanyNews{
		{Headline: strPtr("one")},
		{Headline: strPtr("two")},
		{Headline: strPtr("three")},
	}

	articles := fromCompanyNews(res, 2)

	assert.Equal(t, 2, len(articles))
	assert.Equal(t, "one", articles[0].Headline)
	assert.Equal(t, "two", articles[1].Headline)
}

func TestFromCompanyNewsEmpty(t *testing.T) {
	articles := fromCompanyNews(nil, 5)

	assert.Equal(t, 0, len(articles))
}
